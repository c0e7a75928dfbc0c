package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/infrastructure/models"
)

// WalletRepository implements wallet data operations
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create creates a new wallet
func (r *WalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	m := walletToModel(wallet)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	wallet.ID = m.ID
	wallet.CreatedAt = m.CreatedAt
	wallet.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets the wallet owned by a user
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	var m models.Wallet
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return walletToEntity(&m), nil
}

// Credit adds amount to the wallet balance
func (r *WalletRepository) Credit(ctx context.Context, userID uuid.UUID, amount float64) error {
	return r.adjustBalance(ctx, userID, amount)
}

// Debit subtracts amount from the wallet balance
func (r *WalletRepository) Debit(ctx context.Context, userID uuid.UUID, amount float64) error {
	return r.adjustBalance(ctx, userID, -amount)
}

func (r *WalletRepository) adjustBalance(ctx context.Context, userID uuid.UUID, delta float64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpsertByUserID creates the wallet, or returns the existing row keyed by
// user id. One wallet per user is the natural key.
func (r *WalletRepository) UpsertByUserID(ctx context.Context, wallet *entities.Wallet) (*entities.Wallet, error) {
	existing, err := r.GetByUserID(ctx, wallet.UserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if err := r.Create(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func walletToModel(w *entities.Wallet) *models.Wallet {
	return &models.Wallet{
		ID:        w.ID,
		UserID:    w.UserID,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func walletToEntity(m *models.Wallet) *entities.Wallet {
	return &entities.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
