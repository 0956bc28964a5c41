//go:generate mockgen -source ./engine.go -destination=./mocks/engine.go -package=mock_engine

// Package engine implements custody transfers for shared items: token-gated
// handoffs between neighbors, owner returns and the supporting item
// lifecycle. Every mutation runs in a single transaction that locks the item
// row first, then the transfer, then the token.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lendery/lendery/internal/custody"
	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/notify"
	"github.com/lendery/lendery/internal/repository"
	"github.com/lendery/lendery/internal/token"
)

const (
	checkoutTokenTTL = 72 * time.Hour
	passTokenTTL     = 48 * time.Hour
)

type ItemRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Item, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Item, error)
	SetStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.ItemStatus) error
	UpdateCustodyTx(ctx context.Context, tx db.Tx, id uuid.UUID, holderID *uuid.UUID, status repository.ItemStatus, clearReturnRequest bool) error
	SetReturnRequestedTx(ctx context.Context, tx db.Tx, id uuid.UUID, at time.Time) error
	BumpTagVersionTx(ctx context.Context, tx db.Tx, id uuid.UUID) (int, error)
}

type TransferRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, transfer *repository.Transfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Transfer, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Transfer, error)
	ListPendingByItemTx(ctx context.Context, tx db.Tx, itemID uuid.UUID) ([]*repository.Transfer, error)
	HasPendingCheckoutToTx(ctx context.Context, tx db.Tx, itemID, userID uuid.UUID) (bool, error)
	SetStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TransferStatus, acceptedAt *time.Time) error
	ListStalePendingIDs(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type TokenRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, token *repository.Token) error
	GetLiveByTransferTx(ctx context.Context, tx db.Tx, transferID uuid.UUID) (*repository.Token, error)
	ConsumeTx(ctx context.Context, tx db.Tx, id uuid.UUID) error
	ConsumeByTransferTx(ctx context.Context, tx db.Tx, transferID uuid.UUID) error
}

type WaitlistRepository interface {
	NextEligibleTx(ctx context.Context, tx db.Tx, itemID uuid.UUID) (*repository.WaitlistEntry, error)
	MarkFulfilledTx(ctx context.Context, tx db.Tx, itemID, userID uuid.UUID) error
	MarkSkippedTx(ctx context.Context, tx db.Tx, itemID, userID uuid.UUID) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error)
}

type Notifier interface {
	HandoffOffered(ctx context.Context, notice notify.HandoffNotice) error
	ReturnRequested(ctx context.Context, notice notify.ReturnRequestNotice) error
}

type Engine struct {
	db        db.DB
	items     ItemRepository
	transfers TransferRepository
	tokens    TokenRepository
	waitlist  WaitlistRepository
	users     UserRepository
	tags      *token.Service
	notifier  Notifier
	logger    *zap.Logger
}

func New(
	database db.DB,
	items ItemRepository,
	transfers TransferRepository,
	tokens TokenRepository,
	waitlist WaitlistRepository,
	users UserRepository,
	tags *token.Service,
	notifier Notifier,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		db:        database,
		items:     items,
		transfers: transfers,
		tokens:    tokens,
		waitlist:  waitlist,
		users:     users,
		tags:      tags,
		notifier:  notifier,
		logger:    logger,
	}
}

// HandoffResult is returned by the initiation operations. Secret is the
// one-time accept secret, empty for returns. Warning is set when the
// operation succeeded but the recipient notice could not be queued.
type HandoffResult struct {
	Transfer *repository.Transfer
	Item     *repository.Item
	Secret   string
	Warning  string
}

// AcceptResult carries the completed transfer and the item's post-handoff
// state. Transfer is nil when a tag claim found the caller already holding
// the item.
type AcceptResult struct {
	Transfer *repository.Transfer
	Item     *repository.Item
}

func (e *Engine) inTx(ctx context.Context, fn func(tx db.Tx) error) error {
	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (e *Engine) lockItem(ctx context.Context, tx db.Tx, itemID uuid.UUID) (*repository.Item, error) {
	item, err := e.items.GetByIDTx(ctx, tx, itemID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

// refreshStatusTx recomputes the item's status from its holder and remaining
// pending transfers and persists it when it changed. The caller must hold the
// item lock.
func (e *Engine) refreshStatusTx(ctx context.Context, tx db.Tx, item *repository.Item) (repository.ItemStatus, error) {
	pending, err := e.transfers.ListPendingByItemTx(ctx, tx, item.ID)
	if err != nil {
		return "", err
	}

	status := custody.Resolve(item.Status, item.CurrentHolderID != nil, pending)
	if status != item.Status {
		if err := e.items.SetStatusTx(ctx, tx, item.ID, status); err != nil {
			return "", err
		}
	}
	return status, nil
}

// expireTransferTx retires a pending transfer whose token ran out: the token
// is consumed, the transfer becomes expired and a passed-over recipient loses
// their waitlist spot. Status recomputation is the caller's job.
func (e *Engine) expireTransferTx(ctx context.Context, tx db.Tx, item *repository.Item, transfer *repository.Transfer, tok *repository.Token) error {
	if tok != nil {
		if err := e.tokens.ConsumeTx(ctx, tx, tok.ID); err != nil {
			return err
		}
	}
	if err := e.transfers.SetStatusTx(ctx, tx, transfer.ID, repository.TransferStatusExpired, nil); err != nil {
		return err
	}
	if transfer.Type == repository.TransferTypePass && transfer.ToUserID != nil {
		return e.waitlist.MarkSkippedTx(ctx, tx, item.ID, *transfer.ToUserID)
	}
	return nil
}

func (e *Engine) notifyHandoff(ctx context.Context, item *repository.Item, transfer *repository.Transfer, sender, recipient *repository.User, secret string, ttl time.Duration) string {
	notice := notify.HandoffNotice{
		TransferID:     transfer.ID,
		ItemID:         item.ID,
		ItemTitle:      item.Title,
		Type:           transfer.Type,
		SenderName:     displayName(sender),
		RecipientID:    recipient.ID,
		RecipientEmail: recipient.Email,
		Secret:         secret,
		TTLHours:       int(ttl / time.Hour),
	}
	if err := e.notifier.HandoffOffered(ctx, notice); err != nil {
		e.logger.Warn("Failed to queue handoff notice",
			zap.String("transfer_id", transfer.ID.String()), zap.Error(err))
		return "recipient could not be notified"
	}
	return ""
}

func notifyReturnRequest(item *repository.Item, ownerName string, holder *repository.User) notify.ReturnRequestNotice {
	return notify.ReturnRequestNotice{
		ItemID:      item.ID,
		ItemTitle:   item.Title,
		OwnerName:   ownerName,
		HolderID:    holder.ID,
		HolderEmail: holder.Email,
	}
}

func displayName(user *repository.User) string {
	if user.DisplayName != nil && *user.DisplayName != "" {
		return *user.DisplayName
	}
	return user.Email
}

type checkoutMeta struct {
	BorrowDurationDays int `json:"borrow_duration_days"`
}

func checkoutMetadata(days int) json.RawMessage {
	raw, _ := json.Marshal(checkoutMeta{BorrowDurationDays: days})
	return raw
}
