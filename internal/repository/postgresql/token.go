package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/repository"
)

type TokenRepo struct {
	db db.DB
}

func NewTokenRepo(db db.DB) *TokenRepo {
	return &TokenRepo{db: db}
}

func (r *TokenRepo) CreateTx(ctx context.Context, tx db.Tx, token *repository.Token) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO tokens (
            id, item_id, transfer_id, token_hash, purpose, expires_at, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, token.ID, token.ItemID, token.TransferID, token.TokenHash, token.Purpose,
		token.ExpiresAt, token.CreatedAt)
	return err
}

// GetLiveByTransferTx returns the most recent handoff-accept token for a
// transfer, locked for update. At most one live token exists per transfer.
func (r *TokenRepo) GetLiveByTransferTx(ctx context.Context, tx db.Tx, transferID uuid.UUID) (*repository.Token, error) {
	var token repository.Token
	err := tx.Get(ctx, &token, `
        SELECT * FROM tokens
        WHERE transfer_id = $1 AND purpose = 'handoff_accept'
        ORDER BY created_at DESC
        LIMIT 1
        FOR UPDATE
    `, transferID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &token, nil
}

// ConsumeTx sets used_at exactly once; consuming an already-used token is a
// no-op.
func (r *TokenRepo) ConsumeTx(ctx context.Context, tx db.Tx, id uuid.UUID) error {
	_, err := tx.Exec(ctx, `
        UPDATE tokens
        SET used_at = COALESCE(used_at, now())
        WHERE id = $1
    `, id)
	return err
}

// ConsumeByTransferTx invalidates every handoff-accept token attached to a
// transfer. Used on cancellation, where the caller never presents a secret.
func (r *TokenRepo) ConsumeByTransferTx(ctx context.Context, tx db.Tx, transferID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
        UPDATE tokens
        SET used_at = COALESCE(used_at, now())
        WHERE transfer_id = $1 AND purpose = 'handoff_accept'
    `, transferID)
	return err
}
