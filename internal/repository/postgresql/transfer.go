package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/repository"
)

type TransferRepo struct {
	db db.DB
}

func NewTransferRepo(db db.DB) *TransferRepo {
	return &TransferRepo{db: db}
}

func (r *TransferRepo) CreateTx(ctx context.Context, tx db.Tx, transfer *repository.Transfer) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO transfers (
            id, item_id, from_user_id, to_user_id, type, status, initiated_at, accepted_at, metadata
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, transfer.ID, transfer.ItemID, transfer.FromUserID, transfer.ToUserID, transfer.Type,
		transfer.Status, transfer.InitiatedAt, transfer.AcceptedAt, transfer.Metadata)
	return err
}

func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Transfer, error) {
	var transfer repository.Transfer
	err := r.db.Get(ctx, &transfer, "SELECT * FROM transfers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &transfer, nil
}

func (r *TransferRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Transfer, error) {
	var transfer repository.Transfer
	err := tx.Get(ctx, &transfer, "SELECT * FROM transfers WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &transfer, nil
}

func (r *TransferRepo) ListPendingByItemTx(ctx context.Context, tx db.Tx, itemID uuid.UUID) ([]*repository.Transfer, error) {
	var transfers []*repository.Transfer
	err := tx.Select(ctx, &transfers, `
        SELECT * FROM transfers
        WHERE item_id = $1 AND status = 'pending_accept'
        ORDER BY initiated_at ASC
    `, itemID)
	return transfers, err
}

func (r *TransferRepo) HasPendingCheckoutToTx(ctx context.Context, tx db.Tx, itemID, userID uuid.UUID) (bool, error) {
	var count int
	err := tx.Get(ctx, &count, `
        SELECT COUNT(*) FROM transfers
        WHERE item_id = $1 AND to_user_id = $2 AND type = 'checkout' AND status = 'pending_accept'
    `, itemID, userID)
	return count > 0, err
}

func (r *TransferRepo) SetStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TransferStatus, acceptedAt *time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE transfers
        SET status = $1, accepted_at = COALESCE($2, accepted_at)
        WHERE id = $3
    `, status, acceptedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// ListStalePendingIDs returns pending transfers whose live handoff token has
// already expired. Read without locks; the sweep re-checks each transfer under
// its item lock before expiring it.
func (r *TransferRepo) ListStalePendingIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Select(ctx, &ids, `
        SELECT t.id
        FROM transfers t
        WHERE t.status = 'pending_accept'
          AND EXISTS (
            SELECT 1
            FROM tokens tok
            WHERE tok.transfer_id = t.id
              AND tok.purpose = 'handoff_accept'
              AND tok.expires_at IS NOT NULL
              AND tok.expires_at < $1
          )
    `, now)
	return ids, err
}

func (r *TransferRepo) GetByItemID(ctx context.Context, itemID uuid.UUID) ([]*repository.Transfer, error) {
	var transfers []*repository.Transfer
	err := r.db.Select(ctx, &transfers, `
        SELECT * FROM transfers
        WHERE item_id = $1
        ORDER BY initiated_at DESC
    `, itemID)
	return transfers, err
}
