package repositories

import (
	"context"

	"github.com/google/uuid"
	"bizfundraiser.backend/internal/domain/entities"
)

// WalletRepository defines wallet data operations
type WalletRepository interface {
	Create(ctx context.Context, wallet *entities.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	// Credit adds amount to the wallet balance.
	Credit(ctx context.Context, userID uuid.UUID, amount float64) error
	// Debit subtracts amount from the wallet balance. Callers are
	// responsible for underflow checks; the seed bootstrap debits blindly.
	Debit(ctx context.Context, userID uuid.UUID, amount float64) error
	// UpsertByUserID creates the wallet or returns the existing row keyed
	// by user id. Used by the seed bootstrap.
	UpsertByUserID(ctx context.Context, wallet *entities.Wallet) (*entities.Wallet, error)
}
