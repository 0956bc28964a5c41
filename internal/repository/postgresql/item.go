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

type ItemRepo struct {
	db db.DB
}

func NewItemRepo(db db.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) Create(ctx context.Context, item *repository.Item) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO items (
            id, owner_id, title, description, category, pickup_area,
            borrow_duration_days, tag_token_version, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, item.ID, item.OwnerID, item.Title, item.Description, item.Category, item.PickupArea,
		item.BorrowDurationDays, item.TagTokenVersion, item.Status, item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *ItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Item, error) {
	var item repository.Item
	err := r.db.Get(ctx, &item, "SELECT * FROM items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetByIDTx locks the item row for the duration of the transaction. Every
// custody mutation acquires this lock first.
func (r *ItemRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Item, error) {
	var item repository.Item
	err := tx.Get(ctx, &item, "SELECT * FROM items WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) SetStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.ItemStatus) error {
	_, err := tx.Exec(ctx, `
        UPDATE items
        SET status = $1, updated_at = now()
        WHERE id = $2
    `, status, id)
	return err
}

func (r *ItemRepo) UpdateCustodyTx(ctx context.Context, tx db.Tx, id uuid.UUID, holderID *uuid.UUID, status repository.ItemStatus, clearReturnRequest bool) error {
	if clearReturnRequest {
		_, err := tx.Exec(ctx, `
            UPDATE items
            SET current_holder_id = $1, status = $2, owner_requested_return_at = NULL, updated_at = now()
            WHERE id = $3
        `, holderID, status, id)
		return err
	}
	_, err := tx.Exec(ctx, `
        UPDATE items
        SET current_holder_id = $1, status = $2, updated_at = now()
        WHERE id = $3
    `, holderID, status, id)
	return err
}

func (r *ItemRepo) SetReturnRequestedTx(ctx context.Context, tx db.Tx, id uuid.UUID, at time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE items
        SET owner_requested_return_at = $1, updated_at = now()
        WHERE id = $2
    `, at, id)
	return err
}

func (r *ItemRepo) BumpTagVersionTx(ctx context.Context, tx db.Tx, id uuid.UUID) (int, error) {
	var item repository.Item
	err := tx.Get(ctx, &item, `
        UPDATE items
        SET tag_token_version = tag_token_version + 1, updated_at = now()
        WHERE id = $1
        RETURNING *
    `, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrObjectNotFound
		}
		return 0, err
	}
	return item.TagTokenVersion, nil
}

func (r *ItemRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*repository.Item, error) {
	var items []*repository.Item
	err := r.db.Select(ctx, &items, `
        SELECT * FROM items
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `, ownerID)
	return items, err
}
