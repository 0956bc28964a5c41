package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/lendery/lendery/internal/db/mocks"
	"github.com/lendery/lendery/internal/repository"
	"github.com/lendery/lendery/internal/repository/postgresql"
)

func TestTransferRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("transfer found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTransferRepo(mockDB)

		transferID := uuid.New()
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), transferID).DoAndReturn(
			func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				transfer := dest.(*repository.Transfer)
				transfer.ID = transferID
				transfer.Type = repository.TransferTypePass
				transfer.Status = repository.TransferStatusPendingAccept
				return nil
			})

		transfer, err := repo.GetByID(ctx, transferID)
		require.NoError(t, err)
		assert.Equal(t, transferID, transfer.ID)
		assert.Equal(t, repository.TransferStatusPendingAccept, transfer.Status)
	})

	t.Run("transfer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewTransferRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestTransferRepo_HasPendingCheckoutToTx(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()
	userID := uuid.New()

	t.Run("pending offer exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTransferRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), itemID, userID).DoAndReturn(
			func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*int) = 1
				return nil
			})

		exists, err := repo.HasPendingCheckoutToTx(ctx, mockTx, itemID, userID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("no pending offer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTransferRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), itemID, userID).DoAndReturn(
			func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*int) = 0
				return nil
			})

		exists, err := repo.HasPendingCheckoutToTx(ctx, mockTx, itemID, userID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestTransferRepo_SetStatusTx(t *testing.T) {
	ctx := context.Background()
	transferID := uuid.New()

	t.Run("status updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTransferRepo(mock_database.NewMockDB(ctrl))

		now := time.Now().UTC()
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), repository.TransferStatusCompleted, &now, transferID).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.SetStatusTx(ctx, mockTx, transferID, repository.TransferStatusCompleted, &now)
		assert.NoError(t, err)
	})

	t.Run("no row matched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTransferRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), repository.TransferStatusExpired, gomock.Nil(), transferID).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.SetStatusTx(ctx, mockTx, transferID, repository.TransferStatusExpired, nil)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestTransferRepo_ListStalePendingIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewTransferRepo(mockDB)

	now := time.Now().UTC()
	stale := uuid.New()
	mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), now).DoAndReturn(
		func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			*dest.(*[]uuid.UUID) = []uuid.UUID{stale}
			return nil
		})

	ids, err := repo.ListStalePendingIDs(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{stale}, ids)
}
