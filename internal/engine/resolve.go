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

// Accept completes a pending transfer. Checkouts and passes require the
// one-time secret from the offer; returns are confirmed by the owner without
// one. An offer whose secret already expired is retired on the spot and the
// caller sees the same invalid-token error as for a wrong secret.
func (e *Engine) Accept(ctx context.Context, actorID, transferID uuid.UUID, secret string) (*AcceptResult, error) {
	probe, err := e.transfers.GetByID(ctx, transferID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, describe(ErrTransferNotFound, uuid.Nil, transferID)
	}
	if err != nil {
		return nil, describe(err, uuid.Nil, transferID)
	}

	var (
		result  *AcceptResult
		expired bool
	)
	err = e.inTx(ctx, func(tx db.Tx) error {
		item, err := e.lockItem(ctx, tx, probe.ItemID)
		if err != nil {
			return err
		}
		transfer, err := e.transfers.GetByIDTx(ctx, tx, transferID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrTransferNotFound
		}
		if err != nil {
			return err
		}
		if transfer.Status != repository.TransferStatusPendingAccept {
			return ErrTransferNotPending
		}
		if transfer.ToUserID == nil || *transfer.ToUserID != actorID {
			return ErrNotTransferRecipient
		}
		if item.Status == repository.ItemStatusInactive {
			return ErrItemInactive
		}

		now := time.Now().UTC()
		if transfer.Type != repository.TransferTypeReturn {
			tok, err := e.tokens.GetLiveByTransferTx(ctx, tx, transferID)
			if errors.Is(err, repository.ErrObjectNotFound) {
				return ErrInvalidToken
			}
			if err != nil {
				return err
			}
			if tok.UsedAt == nil && tok.ExpiresAt != nil && !tok.ExpiresAt.After(now) {
				if err := e.expireTransferTx(ctx, tx, item, transfer, tok); err != nil {
					return err
				}
				if _, err := e.refreshStatusTx(ctx, tx, item); err != nil {
					return err
				}
				expired = true
				return nil
			}
			if !token.VerifyHandoffSecret(tok.TokenHash, secret, tok.UsedAt, tok.ExpiresAt, now) {
				return ErrInvalidToken
			}
			if err := e.tokens.ConsumeTx(ctx, tx, tok.ID); err != nil {
				return err
			}
		}

		toOwner := transfer.Type == repository.TransferTypeReturn || *transfer.ToUserID == item.OwnerID

		var holderID *uuid.UUID
		if !toOwner {
			if transfer.Type == repository.TransferTypeCheckout && item.CurrentHolderID != nil {
				return ErrAlreadyCheckedOut
			}
			holderID = transfer.ToUserID
		}

		if err := e.transfers.SetStatusTx(ctx, tx, transferID, repository.TransferStatusCompleted, &now); err != nil {
			return err
		}
		if !toOwner {
			if err := e.waitlist.MarkFulfilledTx(ctx, tx, item.ID, *transfer.ToUserID); err != nil {
				return err
			}
		}

		pending, err := e.transfers.ListPendingByItemTx(ctx, tx, item.ID)
		if err != nil {
			return err
		}
		// Any completed handoff clears a standing return request; the owner
		// can re-request from the new holder.
		status := custody.Resolve(item.Status, holderID != nil, pending)
		if err := e.items.UpdateCustodyTx(ctx, tx, item.ID, holderID, status, true); err != nil {
			return err
		}

		updated := *item
		updated.CurrentHolderID = holderID
		updated.Status = status
		updated.OwnerRequestedReturnAt = nil
		transfer.Status = repository.TransferStatusCompleted
		transfer.AcceptedAt = &now
		result = &AcceptResult{Transfer: transfer, Item: &updated}
		return nil
	})
	if err != nil {
		return nil, describe(err, probe.ItemID, transferID)
	}
	if expired {
		metrics.TransfersExpiredTotal.Inc()
		return nil, describe(ErrInvalidToken, probe.ItemID, transferID)
	}

	metrics.TransfersCompletedTotal.WithLabelValues(string(result.Transfer.Type)).Inc()
	return result, nil
}

// Skip lets the recipient of a pending offer decline it with the same secret
// that would accept it. Their waitlist entry, if any, is marked skipped so
// the next pass moves on.
func (e *Engine) Skip(ctx context.Context, actorID, transferID uuid.UUID, secret string) (*repository.Transfer, error) {
	probe, err := e.transfers.GetByID(ctx, transferID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, describe(ErrTransferNotFound, uuid.Nil, transferID)
	}
	if err != nil {
		return nil, describe(err, uuid.Nil, transferID)
	}

	var (
		transfer *repository.Transfer
		expired  bool
	)
	err = e.inTx(ctx, func(tx db.Tx) error {
		item, err := e.lockItem(ctx, tx, probe.ItemID)
		if err != nil {
			return err
		}
		transfer, err = e.transfers.GetByIDTx(ctx, tx, transferID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrTransferNotFound
		}
		if err != nil {
			return err
		}
		if transfer.Status != repository.TransferStatusPendingAccept {
			return ErrTransferNotPending
		}
		if transfer.Type != repository.TransferTypeCheckout && transfer.Type != repository.TransferTypePass {
			return ErrTransferNotCancellable
		}
		if transfer.ToUserID == nil || *transfer.ToUserID != actorID {
			return ErrNotTransferRecipient
		}

		now := time.Now().UTC()
		tok, err := e.tokens.GetLiveByTransferTx(ctx, tx, transferID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrInvalidToken
		}
		if err != nil {
			return err
		}
		if tok.UsedAt == nil && tok.ExpiresAt != nil && !tok.ExpiresAt.After(now) {
			if err := e.expireTransferTx(ctx, tx, item, transfer, tok); err != nil {
				return err
			}
			if _, err := e.refreshStatusTx(ctx, tx, item); err != nil {
				return err
			}
			expired = true
			return nil
		}
		if !token.VerifyHandoffSecret(tok.TokenHash, secret, tok.UsedAt, tok.ExpiresAt, now) {
			return ErrInvalidToken
		}

		if err := e.tokens.ConsumeTx(ctx, tx, tok.ID); err != nil {
			return err
		}
		if err := e.transfers.SetStatusTx(ctx, tx, transferID, repository.TransferStatusCancelled, nil); err != nil {
			return err
		}
		if err := e.waitlist.MarkSkippedTx(ctx, tx, item.ID, actorID); err != nil {
			return err
		}
		if _, err := e.refreshStatusTx(ctx, tx, item); err != nil {
			return err
		}

		transfer.Status = repository.TransferStatusCancelled
		return nil
	})
	if err != nil {
		return nil, describe(err, probe.ItemID, transferID)
	}
	if expired {
		metrics.TransfersExpiredTotal.Inc()
		return nil, describe(ErrInvalidToken, probe.ItemID, transferID)
	}
	return transfer, nil
}

// Cancel withdraws a pending checkout or pass offer. Only the initiator or
// the item owner may cancel, and no secret is needed. The recipient keeps
// their waitlist spot.
func (e *Engine) Cancel(ctx context.Context, actorID, transferID uuid.UUID) (*repository.Transfer, error) {
	probe, err := e.transfers.GetByID(ctx, transferID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, describe(ErrTransferNotFound, uuid.Nil, transferID)
	}
	if err != nil {
		return nil, describe(err, uuid.Nil, transferID)
	}

	var transfer *repository.Transfer
	err = e.inTx(ctx, func(tx db.Tx) error {
		item, err := e.lockItem(ctx, tx, probe.ItemID)
		if err != nil {
			return err
		}
		transfer, err = e.transfers.GetByIDTx(ctx, tx, transferID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrTransferNotFound
		}
		if err != nil {
			return err
		}
		if transfer.Status != repository.TransferStatusPendingAccept {
			return ErrTransferNotPending
		}
		if transfer.Type != repository.TransferTypeCheckout && transfer.Type != repository.TransferTypePass {
			return ErrTransferNotCancellable
		}

		initiator := transfer.FromUserID != nil && *transfer.FromUserID == actorID
		if !initiator && item.OwnerID != actorID {
			return ErrNotTransferInitiator
		}

		if err := e.tokens.ConsumeByTransferTx(ctx, tx, transferID); err != nil {
			return err
		}
		if err := e.transfers.SetStatusTx(ctx, tx, transferID, repository.TransferStatusCancelled, nil); err != nil {
			return err
		}
		if _, err := e.refreshStatusTx(ctx, tx, item); err != nil {
			return err
		}

		transfer.Status = repository.TransferStatusCancelled
		return nil
	})
	if err != nil {
		return nil, describe(err, probe.ItemID, transferID)
	}
	return transfer, nil
}
