package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bizfundraiser.backend/internal/domain/entities"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	createTransactionTable(t, db)

	walletRepo := NewWalletRepository(db)
	txnRepo := NewTransactionRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	userID := uuid.New()
	w := &entities.Wallet{ID: uuid.New(), UserID: userID, Balance: 300000, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, walletRepo.Create(ctx, w))

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := walletRepo.Debit(txCtx, userID, 200000); err != nil {
			return err
		}
		return txnRepo.Create(txCtx, &entities.Transaction{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      entities.TransactionTypeInvestment,
			Amount:    200000,
			Status:    entities.TransactionStatusCompleted,
			Reference: "INV-test-commit",
			CreatedAt: time.Now(),
		})
	})
	require.NoError(t, err)

	got, err := walletRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.InDelta(t, 100000, got.Balance, 0.001)

	txns, total, err := txnRepo.ListByUserID(ctx, userID, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, txns, 1)
}

func TestUnitOfWork_RollsBackDebitOnLaterFailure(t *testing.T) {
	db := newTestDB(t)
	createWalletTable(t, db)
	createTransactionTable(t, db)

	walletRepo := NewWalletRepository(db)
	txnRepo := NewTransactionRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	userID := uuid.New()
	w := &entities.Wallet{ID: uuid.New(), UserID: userID, Balance: 300000, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, walletRepo.Create(ctx, w))

	boom := errors.New("record write failed")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := walletRepo.Debit(txCtx, userID, 200000); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// the debit must not survive the failed sequence
	got, err := walletRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.InDelta(t, 300000, got.Balance, 0.001)

	_, total, err := txnRepo.ListByUserID(ctx, userID, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
}
