package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"bizfundraiser.backend/internal/domain/entities"
)

func TestTransactionRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	for i, amount := range []float64{50000, 75000, 100000} {
		txn := &entities.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        entities.TransactionTypeDeposit,
			Status:      entities.TransactionStatusCompleted,
			Amount:      amount,
			Description: "Wallet deposit",
			Reference:   uuid.New().String(),
			CompletedAt: null.TimeFrom(time.Now()),
			CreatedAt:   time.Now().Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(ctx, txn))
	}

	txns, total, err := repo.ListByUserID(ctx, userID, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, txns, 3)
	// newest first
	require.InDelta(t, 100000, txns[0].Amount, 0.001)
	require.True(t, txns[0].CompletedAt.Valid)

	paged, total, err := repo.ListByUserID(ctx, userID, 2, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, paged, 2)
}

func TestTransactionRepository_UniqueReference(t *testing.T) {
	db := newTestDB(t)
	createTransactionTable(t, db)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	ref := "DEP-1700000000-abcd"
	base := entities.Transaction{
		UserID:    uuid.New(),
		Type:      entities.TransactionTypeDeposit,
		Status:    entities.TransactionStatusCompleted,
		Amount:    50000,
		Reference: ref,
		CreatedAt: time.Now(),
	}

	first := base
	first.ID = uuid.New()
	require.NoError(t, repo.Create(ctx, &first))

	dup := base
	dup.ID = uuid.New()
	require.Error(t, repo.Create(ctx, &dup))
}
