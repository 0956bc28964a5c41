package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/repository"
)

// Entries without an explicit position sort after all positioned entries,
// ties broken by join time.
const waitlistOrdering = "COALESCE(position, 2147483647), created_at ASC"

type WaitlistRepo struct {
	db db.DB
}

func NewWaitlistRepo(db db.DB) *WaitlistRepo {
	return &WaitlistRepo{db: db}
}

func (r *WaitlistRepo) Create(ctx context.Context, entry *repository.WaitlistEntry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO waitlist_entries (id, item_id, user_id, status, position, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, entry.ID, entry.ItemID, entry.UserID, entry.Status, entry.Position, entry.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}

func (r *WaitlistRepo) NextEligible(ctx context.Context, itemID uuid.UUID) (*repository.WaitlistEntry, error) {
	var entry repository.WaitlistEntry
	err := r.db.Get(ctx, &entry, `
        SELECT * FROM waitlist_entries
        WHERE item_id = $1 AND status = 'waiting'
        ORDER BY `+waitlistOrdering+`
        LIMIT 1
    `, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WaitlistRepo) NextEligibleTx(ctx context.Context, tx db.Tx, itemID uuid.UUID) (*repository.WaitlistEntry, error) {
	var entry repository.WaitlistEntry
	err := tx.Get(ctx, &entry, `
        SELECT * FROM waitlist_entries
        WHERE item_id = $1 AND status = 'waiting'
        ORDER BY `+waitlistOrdering+`
        LIMIT 1
    `, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WaitlistRepo) GetWaiting(ctx context.Context, itemID, userID uuid.UUID) (*repository.WaitlistEntry, error) {
	var entry repository.WaitlistEntry
	err := r.db.Get(ctx, &entry, `
        SELECT * FROM waitlist_entries
        WHERE item_id = $1 AND user_id = $2 AND status = 'waiting'
        LIMIT 1
    `, itemID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *WaitlistRepo) ListWaiting(ctx context.Context, itemID uuid.UUID) ([]*repository.WaitlistEntry, error) {
	var entries []*repository.WaitlistEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM waitlist_entries
        WHERE item_id = $1 AND status = 'waiting'
        ORDER BY `+waitlistOrdering+`
    `, itemID)
	return entries, err
}

// Remove transitions the caller's waiting entry to removed. Returns
// ErrObjectNotFound when no waiting entry exists.
func (r *WaitlistRepo) Remove(ctx context.Context, itemID, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE waitlist_entries
        SET status = 'removed'
        WHERE item_id = $1 AND user_id = $2 AND status = 'waiting'
    `, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// MarkFulfilledTx and MarkSkippedTx are idempotent: no waiting entry, no rows
// touched, no error.
func (r *WaitlistRepo) MarkFulfilledTx(ctx context.Context, tx db.Tx, itemID, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
        UPDATE waitlist_entries
        SET status = 'fulfilled'
        WHERE item_id = $1 AND user_id = $2 AND status = 'waiting'
    `, itemID, userID)
	return err
}

func (r *WaitlistRepo) MarkSkippedTx(ctx context.Context, tx db.Tx, itemID, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
        UPDATE waitlist_entries
        SET status = 'skipped'
        WHERE item_id = $1 AND user_id = $2 AND status = 'waiting'
    `, itemID, userID)
	return err
}

// CountAhead counts waiting entries that sort strictly before the given entry.
func (r *WaitlistRepo) CountAhead(ctx context.Context, entry *repository.WaitlistEntry) (int, error) {
	var count int
	err := r.db.Get(ctx, &count, `
        SELECT COUNT(*)
        FROM waitlist_entries
        WHERE item_id = $1
          AND status = 'waiting'
          AND (
            COALESCE(position, 2147483647) < COALESCE($2, 2147483647)
            OR (
              COALESCE(position, 2147483647) = COALESCE($2, 2147483647)
              AND created_at < $3
            )
          )
    `, entry.ItemID, entry.Position, entry.CreatedAt)
	return count, err
}
