package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lendery/lendery/internal/custody"
	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/metrics"
	"github.com/lendery/lendery/internal/repository"
)

// AssignHolder records that the owner physically handed the item over,
// bypassing the token ceremony. The transfer is created already completed.
func (e *Engine) AssignHolder(ctx context.Context, actorID, itemID, recipientID uuid.UUID) (*AcceptResult, error) {
	recipient, err := e.users.GetByID(ctx, recipientID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, describe(ErrRecipientNotFound, itemID, uuid.Nil)
	}
	if err != nil {
		return nil, err
	}

	var result *AcceptResult
	err = e.inTx(ctx, func(tx db.Tx) error {
		item, err := e.lockItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != actorID {
			return ErrNotItemOwner
		}
		if item.Status == repository.ItemStatusInactive {
			return ErrItemInactive
		}
		if recipientID == item.OwnerID {
			return ErrOwnerCannotClaim
		}
		if item.CurrentHolderID != nil {
			if *item.CurrentHolderID == recipientID {
				return ErrAlreadyHolder
			}
			return ErrAlreadyCheckedOut
		}
		if !repository.UserInItemArea(recipient, item) {
			return ErrRecipientOutsideNeighborhood
		}

		now := time.Now().UTC()
		transfer := &repository.Transfer{
			ID:          uuid.New(),
			ItemID:      itemID,
			FromUserID:  &item.OwnerID,
			ToUserID:    &recipientID,
			Type:        repository.TransferTypeCheckout,
			Status:      repository.TransferStatusCompleted,
			InitiatedAt: now,
			AcceptedAt:  &now,
			Metadata:    checkoutMetadata(item.BorrowDurationDays),
		}
		if err := e.transfers.CreateTx(ctx, tx, transfer); err != nil {
			return err
		}
		if err := e.waitlist.MarkFulfilledTx(ctx, tx, itemID, recipientID); err != nil {
			return err
		}

		pending, err := e.transfers.ListPendingByItemTx(ctx, tx, itemID)
		if err != nil {
			return err
		}
		status := custody.Resolve(item.Status, true, pending)
		if err := e.items.UpdateCustodyTx(ctx, tx, itemID, &recipientID, status, false); err != nil {
			return err
		}

		updated := *item
		updated.CurrentHolderID = &recipientID
		updated.Status = status
		result = &AcceptResult{Transfer: transfer, Item: &updated}
		return nil
	})
	if err != nil {
		return nil, describe(err, itemID, uuid.Nil)
	}

	metrics.TransfersInitiatedTotal.WithLabelValues(string(repository.TransferTypeCheckout)).Inc()
	metrics.TransfersCompletedTotal.WithLabelValues(string(repository.TransferTypeCheckout)).Inc()
	return result, nil
}

// ClaimViaTag lets a neighbor who scanned the item's physical tag take an
// available item on the spot. Claiming an item you already hold is a no-op
// success with a nil transfer, so a double scan does nothing.
func (e *Engine) ClaimViaTag(ctx context.Context, actorID, itemID uuid.UUID, tag string) (*AcceptResult, error) {
	actor, err := e.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var result *AcceptResult
	err = e.inTx(ctx, func(tx db.Tx) error {
		item, err := e.lockItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if !e.tags.VerifyTagToken(tag, itemID, item.TagTokenVersion) {
			return ErrInvalidToken
		}
		if item.OwnerID == actorID {
			return ErrOwnerCannotClaim
		}
		if item.Status == repository.ItemStatusInactive {
			return ErrItemInactive
		}
		if item.CurrentHolderID != nil {
			if *item.CurrentHolderID == actorID {
				result = &AcceptResult{Item: item}
				return nil
			}
			return ErrAlreadyCheckedOut
		}
		pending, err := e.transfers.ListPendingByItemTx(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if len(pending) > 0 {
			return ErrPendingTransferExists
		}
		if !repository.UserInItemArea(actor, item) {
			return ErrOutsideNeighborhood
		}

		now := time.Now().UTC()
		transfer := &repository.Transfer{
			ID:          uuid.New(),
			ItemID:      itemID,
			FromUserID:  &item.OwnerID,
			ToUserID:    &actorID,
			Type:        repository.TransferTypeCheckout,
			Status:      repository.TransferStatusCompleted,
			InitiatedAt: now,
			AcceptedAt:  &now,
			Metadata:    checkoutMetadata(item.BorrowDurationDays),
		}
		if err := e.transfers.CreateTx(ctx, tx, transfer); err != nil {
			return err
		}
		if err := e.waitlist.MarkFulfilledTx(ctx, tx, itemID, actorID); err != nil {
			return err
		}

		status := custody.Resolve(item.Status, true, nil)
		if err := e.items.UpdateCustodyTx(ctx, tx, itemID, &actorID, status, false); err != nil {
			return err
		}

		updated := *item
		updated.CurrentHolderID = &actorID
		updated.Status = status
		result = &AcceptResult{Transfer: transfer, Item: &updated}
		return nil
	})
	if err != nil {
		return nil, describe(err, itemID, uuid.Nil)
	}

	if result.Transfer != nil {
		metrics.TransfersCompletedTotal.WithLabelValues(string(repository.TransferTypeCheckout)).Inc()
	}
	return result, nil
}

// CheckIn records the item back with its owner without the return ceremony.
// Only the owner may vouch for having the item in hand. A pending return
// offer is the same homecoming and completes; open pass offers describe a
// handoff that no longer makes sense, so they are cancelled. Checkout offers
// stay pending and waitlist entries stay waiting.
func (e *Engine) CheckIn(ctx context.Context, actorID, itemID uuid.UUID) (*AcceptResult, error) {
	var result *AcceptResult
	err := e.inTx(ctx, func(tx db.Tx) error {
		item, err := e.lockItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != actorID {
			return ErrNotItemOwner
		}
		if item.CurrentHolderID == nil {
			return ErrItemNotCheckedOut
		}
		holderID := *item.CurrentHolderID

		pending, err := e.transfers.ListPendingByItemTx(ctx, tx, item.ID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		var transfer *repository.Transfer
		var remaining []*repository.Transfer
		for _, t := range pending {
			switch t.Type {
			case repository.TransferTypeReturn:
				if err := e.transfers.SetStatusTx(ctx, tx, t.ID, repository.TransferStatusCompleted, &now); err != nil {
					return err
				}
				t.Status = repository.TransferStatusCompleted
				t.AcceptedAt = &now
				transfer = t
			case repository.TransferTypePass:
				if err := e.tokens.ConsumeByTransferTx(ctx, tx, t.ID); err != nil {
					return err
				}
				if err := e.transfers.SetStatusTx(ctx, tx, t.ID, repository.TransferStatusCancelled, nil); err != nil {
					return err
				}
			default:
				remaining = append(remaining, t)
			}
		}

		if transfer == nil {
			transfer = &repository.Transfer{
				ID:          uuid.New(),
				ItemID:      itemID,
				FromUserID:  &holderID,
				ToUserID:    &item.OwnerID,
				Type:        repository.TransferTypeReturn,
				Status:      repository.TransferStatusCompleted,
				InitiatedAt: now,
				AcceptedAt:  &now,
			}
			if err := e.transfers.CreateTx(ctx, tx, transfer); err != nil {
				return err
			}
		}

		status := custody.Resolve(item.Status, false, remaining)
		if err := e.items.UpdateCustodyTx(ctx, tx, itemID, nil, status, true); err != nil {
			return err
		}

		updated := *item
		updated.CurrentHolderID = nil
		updated.Status = status
		updated.OwnerRequestedReturnAt = nil
		result = &AcceptResult{Transfer: transfer, Item: &updated}
		return nil
	})
	if err != nil {
		return nil, describe(err, itemID, uuid.Nil)
	}

	metrics.TransfersCompletedTotal.WithLabelValues(string(repository.TransferTypeReturn)).Inc()
	return result, nil
}

// RequestReturn flags a loaned item as wanted back. The next recipientless
// pass then resolves to the owner, and the current holder gets a notice.
func (e *Engine) RequestReturn(ctx context.Context, actorID, itemID uuid.UUID) (*repository.Item, string, error) {
	var (
		item     *repository.Item
		holderID uuid.UUID
	)
	err := e.inTx(ctx, func(tx db.Tx) error {
		var err error
		item, err = e.lockItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != actorID {
			return ErrNotItemOwner
		}
		if item.CurrentHolderID == nil {
			return ErrItemNotCheckedOut
		}
		holderID = *item.CurrentHolderID

		now := time.Now().UTC()
		if err := e.items.SetReturnRequestedTx(ctx, tx, itemID, now); err != nil {
			return err
		}
		item.OwnerRequestedReturnAt = &now
		return nil
	})
	if err != nil {
		return nil, "", describe(err, itemID, uuid.Nil)
	}

	warning := ""
	holder, err := e.users.GetByID(ctx, holderID)
	if err == nil {
		owner, ownerErr := e.users.GetByID(ctx, item.OwnerID)
		ownerName := ""
		if ownerErr == nil {
			ownerName = displayName(owner)
		}
		err = e.notifier.ReturnRequested(ctx, notifyReturnRequest(item, ownerName, holder))
	}
	if err != nil {
		e.logger.Warn("Failed to queue return request notice",
			zap.String("item_id", itemID.String()), zap.Error(err))
		warning = "holder could not be notified"
	}
	return item, warning, nil
}

// Deactivate takes the item out of circulation. Only an idle item qualifies:
// no holder and nothing pending.
func (e *Engine) Deactivate(ctx context.Context, actorID, itemID uuid.UUID) (*repository.Item, error) {
	var item *repository.Item
	err := e.inTx(ctx, func(tx db.Tx) error {
		var err error
		item, err = e.lockItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != actorID {
			return ErrNotItemOwner
		}
		if item.Status == repository.ItemStatusInactive {
			return ErrItemInactive
		}
		if item.CurrentHolderID != nil {
			return ErrItemInCustody
		}
		pending, err := e.transfers.ListPendingByItemTx(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if len(pending) > 0 {
			return ErrItemInCustody
		}

		if err := e.items.SetStatusTx(ctx, tx, itemID, repository.ItemStatusInactive); err != nil {
			return err
		}
		item.Status = repository.ItemStatusInactive
		return nil
	})
	if err != nil {
		return nil, describe(err, itemID, uuid.Nil)
	}
	return item, nil
}

// Reactivate puts an inactive item back into circulation as available.
func (e *Engine) Reactivate(ctx context.Context, actorID, itemID uuid.UUID) (*repository.Item, error) {
	var item *repository.Item
	err := e.inTx(ctx, func(tx db.Tx) error {
		var err error
		item, err = e.lockItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != actorID {
			return ErrNotItemOwner
		}
		if item.Status != repository.ItemStatusInactive {
			return ErrItemNotInactive
		}

		if err := e.items.SetStatusTx(ctx, tx, itemID, repository.ItemStatusAvailable); err != nil {
			return err
		}
		item.Status = repository.ItemStatusAvailable
		return nil
	})
	if err != nil {
		return nil, describe(err, itemID, uuid.Nil)
	}
	return item, nil
}

// RotateTag bumps the item's tag version and returns a freshly signed tag
// token. Every previously printed tag stops verifying at once.
func (e *Engine) RotateTag(ctx context.Context, actorID, itemID uuid.UUID) (string, error) {
	var tag string
	err := e.inTx(ctx, func(tx db.Tx) error {
		item, err := e.lockItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != actorID {
			return ErrNotItemOwner
		}

		version, err := e.items.BumpTagVersionTx(ctx, tx, itemID)
		if err != nil {
			return err
		}
		tag = e.tags.IssueTagToken(itemID, version)
		return nil
	})
	if err != nil {
		return "", describe(err, itemID, uuid.Nil)
	}
	return tag, nil
}

// TagToken returns the currently valid tag token for printing.
func (e *Engine) TagToken(ctx context.Context, actorID, itemID uuid.UUID) (string, error) {
	item, err := e.items.GetByID(ctx, itemID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return "", describe(ErrItemNotFound, itemID, uuid.Nil)
	}
	if err != nil {
		return "", err
	}
	if item.OwnerID != actorID {
		return "", describe(ErrNotItemOwner, itemID, uuid.Nil)
	}
	return e.tags.IssueTagToken(itemID, item.TagTokenVersion), nil
}
