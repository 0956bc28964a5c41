package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/metrics"
	"github.com/lendery/lendery/internal/repository"
)

// ExpireStale retires every pending transfer whose handoff token has run out.
// Expiry is otherwise lazy, applied when an offer is touched; this sweep
// catches offers nobody touches. Each transfer is handled in its own
// transaction so one failure never blocks the rest.
func (e *Engine) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	ids, err := e.transfers.ListStalePendingIDs(ctx, now)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, id := range ids {
		ok, err := e.expireOne(ctx, id, now)
		if err != nil {
			e.logger.Warn("Failed to expire stale transfer",
				zap.String("transfer_id", id.String()), zap.Error(err))
			continue
		}
		if ok {
			expired++
			metrics.TransfersExpiredTotal.Inc()
		}
	}
	return expired, nil
}

// expireOne re-checks the candidate under the item lock; a transfer resolved
// between listing and locking is skipped without error.
func (e *Engine) expireOne(ctx context.Context, transferID uuid.UUID, now time.Time) (bool, error) {
	probe, err := e.transfers.GetByID(ctx, transferID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	expired := false
	err = e.inTx(ctx, func(tx db.Tx) error {
		item, err := e.lockItem(ctx, tx, probe.ItemID)
		if err != nil {
			return err
		}
		transfer, err := e.transfers.GetByIDTx(ctx, tx, transferID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if transfer.Status != repository.TransferStatusPendingAccept {
			return nil
		}

		tok, err := e.tokens.GetLiveByTransferTx(ctx, tx, transferID)
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if tok.UsedAt != nil || tok.ExpiresAt == nil || tok.ExpiresAt.After(now) {
			return nil
		}

		if err := e.expireTransferTx(ctx, tx, item, transfer, tok); err != nil {
			return err
		}
		if _, err := e.refreshStatusTx(ctx, tx, item); err != nil {
			return err
		}
		expired = true
		return nil
	})
	return expired, err
}
