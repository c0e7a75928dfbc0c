package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
)

func TestWalletRepository_CreateGetCreditDebit(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	w := &entities.Wallet{ID: uuid.New(), UserID: userID, Balance: 0, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, w))

	require.NoError(t, repo.Credit(ctx, userID, 500000))
	require.NoError(t, repo.Debit(ctx, userID, 125000))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.InDelta(t, 375000, got.Balance, 0.001)
}

func TestWalletRepository_UpsertByUserID(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	first := &entities.Wallet{ID: uuid.New(), UserID: userID, Balance: 500000, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	created, err := repo.UpsertByUserID(ctx, first)
	require.NoError(t, err)
	require.Equal(t, first.ID, created.ID)

	// second upsert keeps the original row and balance
	again, err := repo.UpsertByUserID(ctx, &entities.Wallet{ID: uuid.New(), UserID: userID, Balance: 0})
	require.NoError(t, err)
	require.Equal(t, first.ID, again.ID)
	require.InDelta(t, 500000, again.Balance, 0.001)
}

func TestWalletRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	_, err := repo.GetByUserID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.Credit(ctx, uuid.New(), 10), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Debit(ctx, uuid.New(), 10), domainerrors.ErrNotFound)
}
