package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "github.com/lendery/lendery/internal/db/mocks"
	"github.com/lendery/lendery/internal/engine"
	mock_engine "github.com/lendery/lendery/internal/engine/mocks"
	"github.com/lendery/lendery/internal/notify"
	"github.com/lendery/lendery/internal/repository"
	"github.com/lendery/lendery/internal/token"
)

var ctx = context.Background()

type engineMocks struct {
	db        *mock_database.MockDB
	tx        *mock_database.MockTx
	items     *mock_engine.MockItemRepository
	transfers *mock_engine.MockTransferRepository
	tokens    *mock_engine.MockTokenRepository
	waitlist  *mock_engine.MockWaitlistRepository
	users     *mock_engine.MockUserRepository
	notifier  *mock_engine.MockNotifier
	tags      *token.Service
}

func newEngine(t *testing.T) (*engine.Engine, engineMocks) {
	ctrl := gomock.NewController(t)
	m := engineMocks{
		db:        mock_database.NewMockDB(ctrl),
		tx:        mock_database.NewMockTx(ctrl),
		items:     mock_engine.NewMockItemRepository(ctrl),
		transfers: mock_engine.NewMockTransferRepository(ctrl),
		tokens:    mock_engine.NewMockTokenRepository(ctrl),
		waitlist:  mock_engine.NewMockWaitlistRepository(ctrl),
		users:     mock_engine.NewMockUserRepository(ctrl),
		notifier:  mock_engine.NewMockNotifier(ctrl),
		tags:      token.NewService([]byte("test-tag-secret")),
	}
	eng := engine.New(m.db, m.items, m.transfers, m.tokens, m.waitlist, m.users, m.tags, m.notifier, zap.NewNop())
	return eng, m
}

// beginTx wires the transaction the operation is expected to open. Rollback
// runs unconditionally via defer, so it is always allowed.
func beginTx(m engineMocks) {
	m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func expectCommit(m engineMocks) {
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
}

func neighbor(name string) *repository.User {
	display := name
	return &repository.User{
		ID:           uuid.New(),
		Email:        name + "@example.com",
		DisplayName:  &display,
		Neighborhood: "Ladd Park",
	}
}

func availableItem(ownerID uuid.UUID) *repository.Item {
	return &repository.Item{
		ID:                 uuid.New(),
		OwnerID:            ownerID,
		Title:              "Cordless Drill",
		PickupArea:         "Ladd Park",
		BorrowDurationDays: 7,
		TagTokenVersion:    1,
		Status:             repository.ItemStatusAvailable,
	}
}

func heldItem(ownerID, holderID uuid.UUID) *repository.Item {
	item := availableItem(ownerID)
	item.CurrentHolderID = &holderID
	item.Status = repository.ItemStatusCheckedOut
	return item
}

func liveToken(t *testing.T, transferID uuid.UUID) (*repository.Token, string) {
	t.Helper()
	secret, hash, err := token.GenerateHandoffSecret()
	require.NoError(t, err)
	expiry := time.Now().UTC().Add(time.Hour)
	return &repository.Token{
		ID:         uuid.New(),
		TransferID: &transferID,
		TokenHash:  hash,
		Purpose:    repository.TokenPurposeHandoffAccept,
		ExpiresAt:  &expiry,
	}, secret
}

func staleToken(t *testing.T, transferID uuid.UUID) *repository.Token {
	t.Helper()
	tok, _ := liveToken(t, transferID)
	past := time.Now().UTC().Add(-time.Minute)
	tok.ExpiresAt = &past
	return tok
}

func TestCheckout(t *testing.T) {
	owner := neighbor("olive")
	recipient := neighbor("rae")

	t.Run("creates a pending offer with a one-time secret", func(t *testing.T) {
		eng, m := newEngine(t)
		item := availableItem(owner.ID)

		m.users.EXPECT().GetByID(ctx, recipient.ID).Return(recipient, nil)
		m.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().HasPendingCheckoutToTx(ctx, m.tx, item.ID, recipient.ID).Return(false, nil)
		m.transfers.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, transfer *repository.Transfer) error {
				assert.Equal(t, repository.TransferTypeCheckout, transfer.Type)
				assert.Equal(t, repository.TransferStatusPendingAccept, transfer.Status)
				assert.Equal(t, &recipient.ID, transfer.ToUserID)
				assert.JSONEq(t, `{"borrow_duration_days":7}`, string(transfer.Metadata))
				return nil
			})
		var storedHash string
		m.tokens.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, tok *repository.Token) error {
				storedHash = tok.TokenHash
				require.NotNil(t, tok.ExpiresAt)
				assert.WithinDuration(t, time.Now().UTC().Add(72*time.Hour), *tok.ExpiresAt, time.Minute)
				return nil
			})
		expectCommit(m)
		m.notifier.EXPECT().HandoffOffered(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, notice notify.HandoffNotice) error {
				assert.Equal(t, recipient.Email, notice.RecipientEmail)
				assert.Equal(t, "olive", notice.SenderName)
				assert.Equal(t, 72, notice.TTLHours)
				return nil
			})

		result, err := eng.Checkout(ctx, owner.ID, item.ID, recipient.ID)
		require.NoError(t, err)
		assert.Len(t, result.Secret, 64)
		assert.Equal(t, token.HashSecret(result.Secret), storedHash)
		assert.Empty(t, result.Warning)
	})

	t.Run("second offer to the same recipient is rejected", func(t *testing.T) {
		eng, m := newEngine(t)
		item := availableItem(owner.ID)

		m.users.EXPECT().GetByID(ctx, recipient.ID).Return(recipient, nil)
		m.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().HasPendingCheckoutToTx(ctx, m.tx, item.ID, recipient.ID).Return(true, nil)

		_, err := eng.Checkout(ctx, owner.ID, item.ID, recipient.ID)
		assert.ErrorIs(t, err, engine.ErrDuplicatePendingOffer)
	})

	t.Run("only the owner can offer", func(t *testing.T) {
		eng, m := newEngine(t)
		item := availableItem(owner.ID)
		stranger := neighbor("sal")

		m.users.EXPECT().GetByID(ctx, recipient.ID).Return(recipient, nil)
		m.users.EXPECT().GetByID(ctx, stranger.ID).Return(stranger, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)

		_, err := eng.Checkout(ctx, stranger.ID, item.ID, recipient.ID)
		assert.ErrorIs(t, err, engine.ErrNotItemOwner)

		var detail *engine.OpError
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, item.ID, detail.ItemID)
	})

	t.Run("recipient outside the pickup area", func(t *testing.T) {
		eng, m := newEngine(t)
		item := availableItem(owner.ID)
		far := neighbor("fern")
		far.Neighborhood = "Elsewhere"

		m.users.EXPECT().GetByID(ctx, far.ID).Return(far, nil)
		m.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)

		_, err := eng.Checkout(ctx, owner.ID, item.ID, far.ID)
		assert.ErrorIs(t, err, engine.ErrRecipientOutsideNeighborhood)
	})

	t.Run("item already with a holder", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, uuid.New())

		m.users.EXPECT().GetByID(ctx, recipient.ID).Return(recipient, nil)
		m.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)

		_, err := eng.Checkout(ctx, owner.ID, item.ID, recipient.ID)
		assert.ErrorIs(t, err, engine.ErrAlreadyCheckedOut)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		eng, m := newEngine(t)
		ghost := uuid.New()

		m.users.EXPECT().GetByID(ctx, ghost).Return(nil, repository.ErrObjectNotFound)

		_, err := eng.Checkout(ctx, owner.ID, uuid.New(), ghost)
		assert.ErrorIs(t, err, engine.ErrRecipientNotFound)
	})
}

func TestPass(t *testing.T) {
	owner := neighbor("olive")
	holder := neighbor("hank")

	t.Run("explicit recipient gets a pending pass", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		next := neighbor("nina")

		m.users.EXPECT().GetByID(ctx, holder.ID).Return(holder, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.users.EXPECT().GetByID(ctx, next.ID).Return(next, nil)
		m.transfers.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, transfer *repository.Transfer) error {
				assert.Equal(t, repository.TransferTypePass, transfer.Type)
				assert.Equal(t, &holder.ID, transfer.FromUserID)
				assert.Equal(t, &next.ID, transfer.ToUserID)
				return nil
			})
		m.tokens.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusPassing).Return(nil)
		expectCommit(m)
		m.notifier.EXPECT().HandoffOffered(ctx, gomock.Any()).Return(nil)

		result, err := eng.Pass(ctx, holder.ID, item.ID, &next.ID)
		require.NoError(t, err)
		assert.Len(t, result.Secret, 64)
		assert.Equal(t, repository.ItemStatusPassing, result.Item.Status)
	})

	t.Run("recipientless pass resolves the waitlist head", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		gone := uuid.New()
		next := neighbor("nina")

		m.users.EXPECT().GetByID(ctx, holder.ID).Return(holder, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		gomock.InOrder(
			m.waitlist.EXPECT().NextEligibleTx(ctx, m.tx, item.ID).
				Return(&repository.WaitlistEntry{ItemID: item.ID, UserID: gone}, nil),
			m.waitlist.EXPECT().NextEligibleTx(ctx, m.tx, item.ID).
				Return(&repository.WaitlistEntry{ItemID: item.ID, UserID: next.ID}, nil),
		)
		m.users.EXPECT().GetByID(ctx, gone).Return(nil, repository.ErrObjectNotFound)
		m.waitlist.EXPECT().MarkSkippedTx(ctx, m.tx, item.ID, gone).Return(nil)
		m.users.EXPECT().GetByID(ctx, next.ID).Return(next, nil)
		m.transfers.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tokens.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusPassing).Return(nil)
		expectCommit(m)
		m.notifier.EXPECT().HandoffOffered(ctx, gomock.Any()).Return(nil)

		result, err := eng.Pass(ctx, holder.ID, item.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, &next.ID, result.Transfer.ToUserID)
	})

	t.Run("requested return routes the pass to the owner", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		requested := time.Now().UTC().Add(-time.Hour)
		item.OwnerRequestedReturnAt = &requested

		m.users.EXPECT().GetByID(ctx, holder.ID).Return(holder, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
		m.transfers.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, transfer *repository.Transfer) error {
				assert.Equal(t, repository.TransferTypeReturn, transfer.Type)
				return nil
			})
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusReturning).Return(nil)
		expectCommit(m)
		m.notifier.EXPECT().HandoffOffered(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, notice notify.HandoffNotice) error {
				assert.Empty(t, notice.Secret)
				return nil
			})

		result, err := eng.Pass(ctx, holder.ID, item.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Secret)
		assert.Equal(t, repository.ItemStatusReturning, result.Item.Status)
	})

	t.Run("stale pending offer is swept before the new one", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		next := neighbor("nina")
		staleID := uuid.New()
		stale := &repository.Transfer{
			ID: staleID, ItemID: item.ID, ToUserID: &next.ID,
			Type: repository.TransferTypeCheckout, Status: repository.TransferStatusPendingAccept,
		}
		tok := staleToken(t, staleID)

		m.users.EXPECT().GetByID(ctx, holder.ID).Return(holder, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return([]*repository.Transfer{stale}, nil)
		m.tokens.EXPECT().GetLiveByTransferTx(ctx, m.tx, staleID).Return(tok, nil)
		m.tokens.EXPECT().ConsumeTx(ctx, m.tx, tok.ID).Return(nil)
		m.transfers.EXPECT().SetStatusTx(ctx, m.tx, staleID, repository.TransferStatusExpired, nil).Return(nil)
		m.users.EXPECT().GetByID(ctx, next.ID).Return(next, nil)
		m.transfers.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tokens.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusPassing).Return(nil)
		expectCommit(m)
		m.notifier.EXPECT().HandoffOffered(ctx, gomock.Any()).Return(nil)

		_, err := eng.Pass(ctx, holder.ID, item.ID, &next.ID)
		require.NoError(t, err)
	})

	t.Run("live pending pass blocks a second one", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusPassing
		next := neighbor("nina")
		openID := uuid.New()
		open := &repository.Transfer{
			ID: openID, ItemID: item.ID, ToUserID: &next.ID,
			Type: repository.TransferTypePass, Status: repository.TransferStatusPendingAccept,
		}
		tok, _ := liveToken(t, openID)

		m.users.EXPECT().GetByID(ctx, holder.ID).Return(holder, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return([]*repository.Transfer{open}, nil)
		m.tokens.EXPECT().GetLiveByTransferTx(ctx, m.tx, openID).Return(tok, nil)

		_, err := eng.Pass(ctx, holder.ID, item.ID, nil)
		assert.ErrorIs(t, err, engine.ErrPendingTransferExists)
	})

	t.Run("empty waitlist and no return request", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)

		m.users.EXPECT().GetByID(ctx, holder.ID).Return(holder, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.waitlist.EXPECT().NextEligibleTx(ctx, m.tx, item.ID).Return(nil, repository.ErrObjectNotFound)

		_, err := eng.Pass(ctx, holder.ID, item.ID, nil)
		assert.ErrorIs(t, err, engine.ErrNoEligibleRecipient)
	})

	t.Run("only the holder can pass", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)

		m.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)

		_, err := eng.Pass(ctx, owner.ID, item.ID, nil)
		assert.ErrorIs(t, err, engine.ErrNotCurrentHolder)
	})
}

func TestReturn(t *testing.T) {
	owner := neighbor("olive")
	holder := neighbor("hank")

	t.Run("offers the item back to the owner without a secret", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)

		m.items.EXPECT().GetByID(ctx, item.ID).Return(item, nil)
		m.users.EXPECT().GetByID(ctx, holder.ID).Return(holder, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
		m.transfers.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusReturning).Return(nil)
		expectCommit(m)
		m.notifier.EXPECT().HandoffOffered(ctx, gomock.Any()).Return(nil)

		result, err := eng.Return(ctx, holder.ID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, repository.TransferTypeReturn, result.Transfer.Type)
		assert.Empty(t, result.Secret)
	})

	t.Run("unknown item", func(t *testing.T) {
		eng, m := newEngine(t)
		m.items.EXPECT().GetByID(ctx, gomock.Any()).Return(nil, repository.ErrObjectNotFound)

		_, err := eng.Return(ctx, holder.ID, uuid.New())
		assert.ErrorIs(t, err, engine.ErrItemNotFound)
	})
}

func TestAccept(t *testing.T) {
	owner := neighbor("olive")
	holder := neighbor("hank")
	next := neighbor("nina")

	pendingPass := func(item *repository.Item) *repository.Transfer {
		return &repository.Transfer{
			ID: uuid.New(), ItemID: item.ID,
			FromUserID: &holder.ID, ToUserID: &next.ID,
			Type: repository.TransferTypePass, Status: repository.TransferStatusPendingAccept,
		}
	}

	t.Run("pass moves custody to the recipient", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusPassing
		transfer := pendingPass(item)
		tok, secret := liveToken(t, transfer.ID)

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		m.tokens.EXPECT().GetLiveByTransferTx(ctx, m.tx, transfer.ID).Return(tok, nil)
		m.tokens.EXPECT().ConsumeTx(ctx, m.tx, tok.ID).Return(nil)
		m.transfers.EXPECT().SetStatusTx(ctx, m.tx, transfer.ID, repository.TransferStatusCompleted, gomock.Any()).Return(nil)
		m.waitlist.EXPECT().MarkFulfilledTx(ctx, m.tx, item.ID, next.ID).Return(nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.items.EXPECT().UpdateCustodyTx(ctx, m.tx, item.ID, &next.ID, repository.ItemStatusCheckedOut, true).Return(nil)
		expectCommit(m)

		result, err := eng.Accept(ctx, next.ID, transfer.ID, secret)
		require.NoError(t, err)
		assert.Equal(t, &next.ID, result.Item.CurrentHolderID)
		assert.Equal(t, repository.ItemStatusCheckedOut, result.Item.Status)
		assert.Equal(t, repository.TransferStatusCompleted, result.Transfer.Status)
		assert.NotNil(t, result.Transfer.AcceptedAt)
	})

	t.Run("accepting a pass clears a standing return request", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusPassing
		requested := time.Now().UTC().Add(-time.Hour)
		item.OwnerRequestedReturnAt = &requested
		transfer := pendingPass(item)
		tok, secret := liveToken(t, transfer.ID)

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		m.tokens.EXPECT().GetLiveByTransferTx(ctx, m.tx, transfer.ID).Return(tok, nil)
		m.tokens.EXPECT().ConsumeTx(ctx, m.tx, tok.ID).Return(nil)
		m.transfers.EXPECT().SetStatusTx(ctx, m.tx, transfer.ID, repository.TransferStatusCompleted, gomock.Any()).Return(nil)
		m.waitlist.EXPECT().MarkFulfilledTx(ctx, m.tx, item.ID, next.ID).Return(nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.items.EXPECT().UpdateCustodyTx(ctx, m.tx, item.ID, &next.ID, repository.ItemStatusCheckedOut, true).Return(nil)
		expectCommit(m)

		result, err := eng.Accept(ctx, next.ID, transfer.ID, secret)
		require.NoError(t, err)
		assert.Nil(t, result.Item.OwnerRequestedReturnAt)
	})

	t.Run("wrong secret", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusPassing
		transfer := pendingPass(item)
		tok, _ := liveToken(t, transfer.ID)

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		m.tokens.EXPECT().GetLiveByTransferTx(ctx, m.tx, transfer.ID).Return(tok, nil)

		_, err := eng.Accept(ctx, next.ID, transfer.ID, "not-the-secret")
		assert.ErrorIs(t, err, engine.ErrInvalidToken)
		assert.Equal(t, engine.KindInvalidCredential, engine.KindOf(err))

		var detail *engine.OpError
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, item.ID, detail.ItemID)
		assert.Equal(t, transfer.ID, detail.TransferID)
	})

	t.Run("expired secret retires the offer on the spot", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusPassing
		transfer := pendingPass(item)
		tok := staleToken(t, transfer.ID)

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		m.tokens.EXPECT().GetLiveByTransferTx(ctx, m.tx, transfer.ID).Return(tok, nil)
		m.tokens.EXPECT().ConsumeTx(ctx, m.tx, tok.ID).Return(nil)
		m.transfers.EXPECT().SetStatusTx(ctx, m.tx, transfer.ID, repository.TransferStatusExpired, nil).Return(nil)
		m.waitlist.EXPECT().MarkSkippedTx(ctx, m.tx, item.ID, next.ID).Return(nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusCheckedOut).Return(nil)
		expectCommit(m)

		_, err := eng.Accept(ctx, next.ID, transfer.ID, "whatever")
		assert.ErrorIs(t, err, engine.ErrInvalidToken)
	})

	t.Run("owner confirms a return and custody clears", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusReturning
		requested := time.Now().UTC().Add(-time.Hour)
		item.OwnerRequestedReturnAt = &requested
		transfer := &repository.Transfer{
			ID: uuid.New(), ItemID: item.ID,
			FromUserID: &holder.ID, ToUserID: &owner.ID,
			Type: repository.TransferTypeReturn, Status: repository.TransferStatusPendingAccept,
		}

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		m.transfers.EXPECT().SetStatusTx(ctx, m.tx, transfer.ID, repository.TransferStatusCompleted, gomock.Any()).Return(nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.items.EXPECT().UpdateCustodyTx(ctx, m.tx, item.ID, gomock.Nil(), repository.ItemStatusAvailable, true).Return(nil)
		expectCommit(m)

		result, err := eng.Accept(ctx, owner.ID, transfer.ID, "")
		require.NoError(t, err)
		assert.Nil(t, result.Item.CurrentHolderID)
		assert.Nil(t, result.Item.OwnerRequestedReturnAt)
		assert.Equal(t, repository.ItemStatusAvailable, result.Item.Status)
	})

	t.Run("only the recipient can accept", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		transfer := pendingPass(item)

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)

		_, err := eng.Accept(ctx, owner.ID, transfer.ID, "secret")
		assert.ErrorIs(t, err, engine.ErrNotTransferRecipient)
	})

	t.Run("resolved transfer cannot be accepted again", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		transfer := pendingPass(item)
		transfer.Status = repository.TransferStatusCompleted

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)

		_, err := eng.Accept(ctx, next.ID, transfer.ID, "secret")
		assert.ErrorIs(t, err, engine.ErrTransferNotPending)
	})
}

func TestSkip(t *testing.T) {
	owner := neighbor("olive")
	holder := neighbor("hank")
	next := neighbor("nina")

	t.Run("recipient declines and loses their waitlist spot", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusPassing
		transfer := &repository.Transfer{
			ID: uuid.New(), ItemID: item.ID,
			FromUserID: &holder.ID, ToUserID: &next.ID,
			Type: repository.TransferTypePass, Status: repository.TransferStatusPendingAccept,
		}
		tok, secret := liveToken(t, transfer.ID)

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		m.tokens.EXPECT().GetLiveByTransferTx(ctx, m.tx, transfer.ID).Return(tok, nil)
		m.tokens.EXPECT().ConsumeTx(ctx, m.tx, tok.ID).Return(nil)
		m.transfers.EXPECT().SetStatusTx(ctx, m.tx, transfer.ID, repository.TransferStatusCancelled, nil).Return(nil)
		m.waitlist.EXPECT().MarkSkippedTx(ctx, m.tx, item.ID, next.ID).Return(nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusCheckedOut).Return(nil)
		expectCommit(m)

		result, err := eng.Skip(ctx, next.ID, transfer.ID, secret)
		require.NoError(t, err)
		assert.Equal(t, repository.TransferStatusCancelled, result.Status)
	})

	t.Run("returns cannot be skipped", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		transfer := &repository.Transfer{
			ID: uuid.New(), ItemID: item.ID,
			FromUserID: &holder.ID, ToUserID: &owner.ID,
			Type: repository.TransferTypeReturn, Status: repository.TransferStatusPendingAccept,
		}

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)

		_, err := eng.Skip(ctx, owner.ID, transfer.ID, "secret")
		assert.ErrorIs(t, err, engine.ErrTransferNotCancellable)
	})
}

func TestCancel(t *testing.T) {
	owner := neighbor("olive")
	holder := neighbor("hank")
	next := neighbor("nina")

	pendingOffer := func(item *repository.Item) *repository.Transfer {
		return &repository.Transfer{
			ID: uuid.New(), ItemID: item.ID,
			FromUserID: &holder.ID, ToUserID: &next.ID,
			Type: repository.TransferTypePass, Status: repository.TransferStatusPendingAccept,
		}
	}

	t.Run("initiator withdraws the offer", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusPassing
		transfer := pendingOffer(item)

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		m.tokens.EXPECT().ConsumeByTransferTx(ctx, m.tx, transfer.ID).Return(nil)
		m.transfers.EXPECT().SetStatusTx(ctx, m.tx, transfer.ID, repository.TransferStatusCancelled, nil).Return(nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusCheckedOut).Return(nil)
		expectCommit(m)

		result, err := eng.Cancel(ctx, holder.ID, transfer.ID)
		require.NoError(t, err)
		assert.Equal(t, repository.TransferStatusCancelled, result.Status)
	})

	t.Run("item owner may cancel any offer", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusPassing
		transfer := pendingOffer(item)

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		m.tokens.EXPECT().ConsumeByTransferTx(ctx, m.tx, transfer.ID).Return(nil)
		m.transfers.EXPECT().SetStatusTx(ctx, m.tx, transfer.ID, repository.TransferStatusCancelled, nil).Return(nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusCheckedOut).Return(nil)
		expectCommit(m)

		_, err := eng.Cancel(ctx, owner.ID, transfer.ID)
		require.NoError(t, err)
	})

	t.Run("a bystander cannot cancel", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		transfer := pendingOffer(item)

		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)

		_, err := eng.Cancel(ctx, next.ID, transfer.ID)
		assert.ErrorIs(t, err, engine.ErrNotTransferInitiator)
	})
}

func TestExpireStale(t *testing.T) {
	owner := neighbor("olive")
	holder := neighbor("hank")
	next := neighbor("nina")
	now := time.Now().UTC()

	t.Run("retires a stale pass and recomputes status", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		item.Status = repository.ItemStatusPassing
		transfer := &repository.Transfer{
			ID: uuid.New(), ItemID: item.ID,
			FromUserID: &holder.ID, ToUserID: &next.ID,
			Type: repository.TransferTypePass, Status: repository.TransferStatusPendingAccept,
		}
		tok := staleToken(t, transfer.ID)

		m.transfers.EXPECT().ListStalePendingIDs(ctx, now).Return([]uuid.UUID{transfer.ID}, nil)
		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		m.tokens.EXPECT().GetLiveByTransferTx(ctx, m.tx, transfer.ID).Return(tok, nil)
		m.tokens.EXPECT().ConsumeTx(ctx, m.tx, tok.ID).Return(nil)
		m.transfers.EXPECT().SetStatusTx(ctx, m.tx, transfer.ID, repository.TransferStatusExpired, nil).Return(nil)
		m.waitlist.EXPECT().MarkSkippedTx(ctx, m.tx, item.ID, next.ID).Return(nil)
		m.transfers.EXPECT().ListPendingByItemTx(ctx, m.tx, item.ID).Return(nil, nil)
		m.items.EXPECT().SetStatusTx(ctx, m.tx, item.ID, repository.ItemStatusCheckedOut).Return(nil)
		expectCommit(m)

		expired, err := eng.ExpireStale(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, expired)
	})

	t.Run("transfer resolved between listing and locking is skipped", func(t *testing.T) {
		eng, m := newEngine(t)
		item := heldItem(owner.ID, holder.ID)
		transfer := &repository.Transfer{
			ID: uuid.New(), ItemID: item.ID,
			Type: repository.TransferTypePass, Status: repository.TransferStatusCancelled,
		}

		m.transfers.EXPECT().ListStalePendingIDs(ctx, now).Return([]uuid.UUID{transfer.ID}, nil)
		m.transfers.EXPECT().GetByID(ctx, transfer.ID).Return(transfer, nil)
		beginTx(m)
		m.items.EXPECT().GetByIDTx(ctx, m.tx, item.ID).Return(item, nil)
		m.transfers.EXPECT().GetByIDTx(ctx, m.tx, transfer.ID).Return(transfer, nil)
		expectCommit(m)

		expired, err := eng.ExpireStale(ctx, now)
		require.NoError(t, err)
		assert.Zero(t, expired)
	})

	t.Run("nothing stale", func(t *testing.T) {
		eng, m := newEngine(t)
		m.transfers.EXPECT().ListStalePendingIDs(ctx, now).Return(nil, nil)

		expired, err := eng.ExpireStale(ctx, now)
		require.NoError(t, err)
		assert.Zero(t, expired)
	})
}
