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

func TestTokenRepo_GetLiveByTransferTx(t *testing.T) {
	ctx := context.Background()
	transferID := uuid.New()

	t.Run("token found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTokenRepo(mock_database.NewMockDB(ctrl))

		tokenID := uuid.New()
		expiry := time.Now().UTC().Add(time.Hour)
		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), transferID).DoAndReturn(
			func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				token := dest.(*repository.Token)
				token.ID = tokenID
				token.TransferID = &transferID
				token.Purpose = repository.TokenPurposeHandoffAccept
				token.ExpiresAt = &expiry
				return nil
			})

		token, err := repo.GetLiveByTransferTx(ctx, mockTx, transferID)
		require.NoError(t, err)
		assert.Equal(t, tokenID, token.ID)
		assert.Nil(t, token.UsedAt)
	})

	t.Run("no token for the transfer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewTokenRepo(mock_database.NewMockDB(ctrl))

		mockTx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), transferID).Return(pgx.ErrNoRows)

		_, err := repo.GetLiveByTransferTx(ctx, mockTx, transferID)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestTokenRepo_ConsumeTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewTokenRepo(mock_database.NewMockDB(ctrl))

	tokenID := uuid.New()
	mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), tokenID).DoAndReturn(
		func(_ context.Context, query string, _ ...interface{}) (pgconn.CommandTag, error) {
			assert.Contains(t, query, "COALESCE(used_at, now())")
			return pgconn.CommandTag("UPDATE 1"), nil
		})

	assert.NoError(t, repo.ConsumeTx(context.Background(), mockTx, tokenID))
}
