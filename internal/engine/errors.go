package engine

import (
	"errors"

	"github.com/google/uuid"
)

// Kind buckets engine failures for transport mapping. Precondition and
// credential failures abort the transaction and are never retried internally.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindConflict
	KindInvalidCredential
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

var (
	ErrItemNotFound      = &Error{KindNotFound, "item not found"}
	ErrTransferNotFound  = &Error{KindNotFound, "transfer not found"}
	ErrRecipientNotFound = &Error{KindNotFound, "recipient not found"}

	ErrNotItemOwner         = &Error{KindForbidden, "only the item owner can perform this action"}
	ErrNotCurrentHolder     = &Error{KindForbidden, "only the current holder can perform this action"}
	ErrNotTransferRecipient = &Error{KindForbidden, "not the transfer recipient"}
	ErrNotTransferInitiator = &Error{KindForbidden, "only the initiator or the item owner can cancel"}
	ErrOutsideNeighborhood  = &Error{KindForbidden, "item is outside your neighborhood"}

	ErrDuplicatePendingOffer        = &Error{KindConflict, "offer already pending for this recipient"}
	ErrPendingTransferExists        = &Error{KindConflict, "a handoff is already pending for this item"}
	ErrTransferNotPending           = &Error{KindConflict, "transfer is no longer pending"}
	ErrTransferNotCancellable       = &Error{KindConflict, "only pending checkout or pass offers can be cancelled"}
	ErrNoEligibleRecipient          = &Error{KindConflict, "no eligible recipient found"}
	ErrRecipientOutsideNeighborhood = &Error{KindConflict, "recipient is not in this neighborhood"}
	ErrAlreadyCheckedOut            = &Error{KindConflict, "item is already checked out"}
	ErrAlreadyHolder                = &Error{KindConflict, "that user is already the current holder"}
	ErrOwnerCannotClaim             = &Error{KindConflict, "owner cannot claim their own item"}
	ErrItemInactive                 = &Error{KindConflict, "item is inactive"}
	ErrItemNotInactive              = &Error{KindConflict, "item is not inactive"}
	ErrItemNotCheckedOut            = &Error{KindConflict, "item is not currently checked out"}
	ErrItemInCustody                = &Error{KindConflict, "item cannot be deactivated while held or in transfer"}

	// Deliberately generic: token mismatch, expiry and reuse are
	// indistinguishable to the caller.
	ErrInvalidToken = &Error{KindInvalidCredential, "invalid or expired token"}
)

// OpError is what the public operations actually return for classified
// failures: the sentinel plus the ids the operation was working on. A zero id
// means the operation never got that far. errors.Is on the sentinels and
// KindOf both see through it.
type OpError struct {
	Err        *Error
	ItemID     uuid.UUID
	TransferID uuid.UUID
}

func (e *OpError) Error() string { return e.Err.Msg }

func (e *OpError) Unwrap() error { return e.Err }

// describe attaches the ids to a classified failure. Infrastructure errors
// pass through untouched.
func describe(err error, itemID, transferID uuid.UUID) error {
	var sentinel *Error
	if err == nil || !errors.As(err, &sentinel) {
		return err
	}
	return &OpError{Err: sentinel, ItemID: itemID, TransferID: transferID}
}

// KindOf classifies any error returned by an engine operation. Unrecognized
// errors are infrastructure failures and report as zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
