package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/domain/repositories"
	"bizfundraiser.backend/pkg/crypto"
	"bizfundraiser.backend/pkg/utils"
)

// WalletUsecase handles wallet balances and the transaction log
type WalletUsecase struct {
	walletRepo      repositories.WalletRepository
	transactionRepo repositories.TransactionRepository
	uow             repositories.UnitOfWork
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(
	walletRepo repositories.WalletRepository,
	transactionRepo repositories.TransactionRepository,
	uow repositories.UnitOfWork,
) *WalletUsecase {
	return &WalletUsecase{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		uow:             uow,
	}
}

// GetWallet returns the caller's wallet
func (u *WalletUsecase) GetWallet(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	return u.walletRepo.GetByUserID(ctx, userID)
}

// Deposit credits the wallet and records a completed DEPOSIT transaction
func (u *WalletUsecase) Deposit(ctx context.Context, userID uuid.UUID, input *entities.DepositInput) (*entities.Transaction, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.BadRequest("Amount must be greater than zero")
	}

	reference, err := crypto.GenerateReference("DEP")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	txn := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        entities.TransactionTypeDeposit,
		Amount:      input.Amount,
		Status:      entities.TransactionStatusCompleted,
		Description: "Wallet deposit",
		Reference:   reference,
		CompletedAt: null.TimeFrom(now),
		CreatedAt:   now,
	}

	// Credit and transaction record commit or roll back together.
	if err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := u.walletRepo.GetByUserID(txCtx, userID); err != nil {
			return err
		}
		if err := u.walletRepo.Credit(txCtx, userID, input.Amount); err != nil {
			return err
		}
		return u.transactionRepo.Create(txCtx, txn)
	}); err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns the caller's transactions newest first
func (u *WalletUsecase) ListTransactions(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Transaction, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	txns, total, err := u.transactionRepo.ListByUserID(ctx, userID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return txns, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
