package custody_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lendery/lendery/internal/custody"
	"github.com/lendery/lendery/internal/repository"
)

func pending(t repository.TransferType) *repository.Transfer {
	return &repository.Transfer{Type: t, Status: repository.TransferStatusPendingAccept}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		current   repository.ItemStatus
		holderSet bool
		pending   []*repository.Transfer
		expected  repository.ItemStatus
	}{
		{
			name:     "no holder no pending is available",
			current:  repository.ItemStatusAvailable,
			expected: repository.ItemStatusAvailable,
		},
		{
			name:      "holder without pending is checked out",
			current:   repository.ItemStatusAvailable,
			holderSet: true,
			expected:  repository.ItemStatusCheckedOut,
		},
		{
			name:      "pending pass wins over holder",
			current:   repository.ItemStatusCheckedOut,
			holderSet: true,
			pending:   []*repository.Transfer{pending(repository.TransferTypePass)},
			expected:  repository.ItemStatusPassing,
		},
		{
			name:      "pending return wins over pending pass",
			current:   repository.ItemStatusCheckedOut,
			holderSet: true,
			pending: []*repository.Transfer{
				pending(repository.TransferTypePass),
				pending(repository.TransferTypeReturn),
			},
			expected: repository.ItemStatusReturning,
		},
		{
			name:     "pending checkout offers leave the item available",
			current:  repository.ItemStatusAvailable,
			pending:  []*repository.Transfer{pending(repository.TransferTypeCheckout)},
			expected: repository.ItemStatusAvailable,
		},
		{
			name:    "resolved transfers are ignored",
			current: repository.ItemStatusAvailable,
			pending: []*repository.Transfer{
				{Type: repository.TransferTypeReturn, Status: repository.TransferStatusCompleted},
				{Type: repository.TransferTypePass, Status: repository.TransferStatusExpired},
			},
			expected: repository.ItemStatusAvailable,
		},
		{
			name:      "inactive is sticky",
			current:   repository.ItemStatusInactive,
			holderSet: true,
			pending:   []*repository.Transfer{pending(repository.TransferTypeReturn)},
			expected:  repository.ItemStatusInactive,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := custody.Resolve(tc.current, tc.holderSet, tc.pending)
			assert.Equal(t, tc.expected, got)
		})
	}
}
