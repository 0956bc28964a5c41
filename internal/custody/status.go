// Package custody derives an item's status from persisted facts. Status is
// denormalized onto the item row for query convenience; the engine recomputes
// it through Resolve after every mutation so it never diverges.
package custody

import (
	"github.com/lendery/lendery/internal/repository"
)

// Resolve maps (current status, holder presence, pending transfers) to the
// item status. A pending return wins over a pending pass; pending checkout
// offers never change the status. Inactive is an owner-controlled state and
// is left untouched.
func Resolve(current repository.ItemStatus, holderSet bool, pending []*repository.Transfer) repository.ItemStatus {
	if current == repository.ItemStatusInactive {
		return repository.ItemStatusInactive
	}

	hasPass := false
	for _, t := range pending {
		if t.Status != repository.TransferStatusPendingAccept {
			continue
		}
		switch t.Type {
		case repository.TransferTypeReturn:
			return repository.ItemStatusReturning
		case repository.TransferTypePass:
			hasPass = true
		}
	}

	if hasPass {
		return repository.ItemStatusPassing
	}
	if holderSet {
		return repository.ItemStatusCheckedOut
	}
	return repository.ItemStatusAvailable
}
