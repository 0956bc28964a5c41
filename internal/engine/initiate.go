package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lendery/lendery/internal/custody"
	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/metrics"
	"github.com/lendery/lendery/internal/repository"
	"github.com/lendery/lendery/internal/token"
)

// Checkout has the owner offer an available item to a chosen recipient. The
// offer stays pending until the recipient accepts with the returned secret or
// the secret expires. Several recipients may hold open offers at once; only a
// second offer to the same recipient is rejected.
func (e *Engine) Checkout(ctx context.Context, actorID, itemID, recipientID uuid.UUID) (*HandoffResult, error) {
	recipient, err := e.users.GetByID(ctx, recipientID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, describe(ErrRecipientNotFound, itemID, uuid.Nil)
	}
	if err != nil {
		return nil, err
	}
	actor, err := e.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	secret, hash, err := token.GenerateHandoffSecret()
	if err != nil {
		return nil, err
	}

	var (
		item     *repository.Item
		transfer *repository.Transfer
	)
	err = e.inTx(ctx, func(tx db.Tx) error {
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
		if recipientID == item.OwnerID {
			return ErrOwnerCannotClaim
		}
		if item.CurrentHolderID != nil {
			return ErrAlreadyCheckedOut
		}
		if !repository.UserInItemArea(recipient, item) {
			return ErrRecipientOutsideNeighborhood
		}

		duplicate, err := e.transfers.HasPendingCheckoutToTx(ctx, tx, itemID, recipientID)
		if err != nil {
			return err
		}
		if duplicate {
			return ErrDuplicatePendingOffer
		}

		now := time.Now().UTC()
		transfer = &repository.Transfer{
			ID:          uuid.New(),
			ItemID:      itemID,
			FromUserID:  &item.OwnerID,
			ToUserID:    &recipientID,
			Type:        repository.TransferTypeCheckout,
			Status:      repository.TransferStatusPendingAccept,
			InitiatedAt: now,
			Metadata:    checkoutMetadata(item.BorrowDurationDays),
		}
		if err := e.transfers.CreateTx(ctx, tx, transfer); err != nil {
			return err
		}

		expiry := now.Add(checkoutTokenTTL)
		return e.tokens.CreateTx(ctx, tx, &repository.Token{
			ID:         uuid.New(),
			ItemID:     itemID,
			TransferID: &transfer.ID,
			TokenHash:  hash,
			Purpose:    repository.TokenPurposeHandoffAccept,
			ExpiresAt:  &expiry,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, describe(err, itemID, uuid.Nil)
	}

	metrics.TransfersInitiatedTotal.WithLabelValues(string(repository.TransferTypeCheckout)).Inc()
	warning := e.notifyHandoff(ctx, item, transfer, actor, recipient, secret, checkoutTokenTTL)
	return &HandoffResult{Transfer: transfer, Item: item, Secret: secret, Warning: warning}, nil
}

// Pass has the current holder hand the item onward. With no explicit
// recipient the next one is resolved in order: the owner when a return was
// requested, then the head of the waitlist. A pass resolved to the owner
// becomes a return and needs no secret. Stale pending offers on the item are
// expired before the new offer is created.
func (e *Engine) Pass(ctx context.Context, actorID, itemID uuid.UUID, recipientID *uuid.UUID) (*HandoffResult, error) {
	actor, err := e.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	secret, hash, err := token.GenerateHandoffSecret()
	if err != nil {
		return nil, err
	}

	var (
		item      *repository.Item
		transfer  *repository.Transfer
		recipient *repository.User
		toOwner   bool
		swept     int
	)
	err = e.inTx(ctx, func(tx db.Tx) error {
		item, err = e.lockItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if item.Status == repository.ItemStatusInactive {
			return ErrItemInactive
		}
		if item.CurrentHolderID == nil {
			return ErrItemNotCheckedOut
		}
		if *item.CurrentHolderID != actorID {
			return ErrNotCurrentHolder
		}

		now := time.Now().UTC()
		remaining, expired, err := e.sweepPendingTx(ctx, tx, item, now)
		if err != nil {
			return err
		}
		swept = expired
		for _, t := range remaining {
			if t.Type == repository.TransferTypePass || t.Type == repository.TransferTypeReturn {
				return ErrPendingTransferExists
			}
		}

		recipient, toOwner, err = e.resolveRecipientTx(ctx, tx, item, actorID, recipientID)
		if err != nil {
			return err
		}

		transfer = &repository.Transfer{
			ID:          uuid.New(),
			ItemID:      itemID,
			FromUserID:  &actorID,
			ToUserID:    &recipient.ID,
			Status:      repository.TransferStatusPendingAccept,
			InitiatedAt: now,
		}
		if toOwner {
			transfer.Type = repository.TransferTypeReturn
		} else {
			transfer.Type = repository.TransferTypePass
		}
		if err := e.transfers.CreateTx(ctx, tx, transfer); err != nil {
			return err
		}

		if !toOwner {
			expiry := now.Add(passTokenTTL)
			err = e.tokens.CreateTx(ctx, tx, &repository.Token{
				ID:         uuid.New(),
				ItemID:     itemID,
				TransferID: &transfer.ID,
				TokenHash:  hash,
				Purpose:    repository.TokenPurposeHandoffAccept,
				ExpiresAt:  &expiry,
				CreatedAt:  now,
			})
			if err != nil {
				return err
			}
		}

		status := custody.Resolve(item.Status, true, append(remaining, transfer))
		if status != item.Status {
			if err := e.items.SetStatusTx(ctx, tx, item.ID, status); err != nil {
				return err
			}
			item.Status = status
		}
		return nil
	})
	if err != nil {
		return nil, describe(err, itemID, uuid.Nil)
	}

	if swept > 0 {
		metrics.TransfersExpiredTotal.Add(float64(swept))
	}
	metrics.TransfersInitiatedTotal.WithLabelValues(string(transfer.Type)).Inc()

	if toOwner {
		secret = ""
	}
	warning := e.notifyHandoff(ctx, item, transfer, actor, recipient, secret, passTokenTTL)
	return &HandoffResult{Transfer: transfer, Item: item, Secret: secret, Warning: warning}, nil
}

// Return has the holder offer the item back to its owner. No secret is
// involved: the owner confirms receipt themselves.
func (e *Engine) Return(ctx context.Context, actorID, itemID uuid.UUID) (*HandoffResult, error) {
	item, err := e.items.GetByID(ctx, itemID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, describe(ErrItemNotFound, itemID, uuid.Nil)
	}
	if err != nil {
		return nil, err
	}
	return e.Pass(ctx, actorID, itemID, &item.OwnerID)
}

// sweepPendingTx expires every pending offer on the item whose token already
// ran out and returns the offers that survive. Returns carry no token and are
// never swept.
func (e *Engine) sweepPendingTx(ctx context.Context, tx db.Tx, item *repository.Item, now time.Time) ([]*repository.Transfer, int, error) {
	pending, err := e.transfers.ListPendingByItemTx(ctx, tx, item.ID)
	if err != nil {
		return nil, 0, err
	}

	var remaining []*repository.Transfer
	swept := 0
	for _, t := range pending {
		if t.Type == repository.TransferTypeReturn {
			remaining = append(remaining, t)
			continue
		}

		tok, err := e.tokens.GetLiveByTransferTx(ctx, tx, t.ID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			remaining = append(remaining, t)
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		if tok.UsedAt == nil && tok.ExpiresAt != nil && !tok.ExpiresAt.After(now) {
			if err := e.expireTransferTx(ctx, tx, item, t, tok); err != nil {
				return nil, 0, err
			}
			swept++
			continue
		}
		remaining = append(remaining, t)
	}
	return remaining, swept, nil
}

// resolveRecipientTx picks who the pass goes to. Waitlist entries whose user
// is gone, out of area or currently holding the item are skipped over.
func (e *Engine) resolveRecipientTx(ctx context.Context, tx db.Tx, item *repository.Item, holderID uuid.UUID, recipientID *uuid.UUID) (*repository.User, bool, error) {
	if recipientID != nil {
		if *recipientID == holderID {
			return nil, false, ErrAlreadyHolder
		}
		recipient, err := e.users.GetByID(ctx, *recipientID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, false, ErrRecipientNotFound
		}
		if err != nil {
			return nil, false, err
		}
		if recipient.ID == item.OwnerID {
			return recipient, true, nil
		}
		if !repository.UserInItemArea(recipient, item) {
			return nil, false, ErrRecipientOutsideNeighborhood
		}
		return recipient, false, nil
	}

	if item.OwnerRequestedReturnAt != nil {
		owner, err := e.users.GetByID(ctx, item.OwnerID)
		if err != nil {
			return nil, false, err
		}
		return owner, true, nil
	}

	for {
		entry, err := e.waitlist.NextEligibleTx(ctx, tx, item.ID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, false, ErrNoEligibleRecipient
		}
		if err != nil {
			return nil, false, err
		}

		candidate, err := e.users.GetByID(ctx, entry.UserID)
		if errors.Is(err, repository.ErrObjectNotFound) ||
			(err == nil && (candidate.ID == holderID || !repository.UserInItemArea(candidate, item))) {
			if err := e.waitlist.MarkSkippedTx(ctx, tx, item.ID, entry.UserID); err != nil {
				return nil, false, err
			}
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return candidate, false, nil
	}
}
