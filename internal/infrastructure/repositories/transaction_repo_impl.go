package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bizfundraiser.backend/internal/domain/entities"
	"bizfundraiser.backend/internal/infrastructure/models"
)

// TransactionRepository implements the append-only transaction log
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create appends a transaction record
func (r *TransactionRepository) Create(ctx context.Context, txn *entities.Transaction) error {
	m := &models.Transaction{
		ID:          txn.ID,
		UserID:      txn.UserID,
		Type:        string(txn.Type),
		Status:      string(txn.Status),
		Amount:      txn.Amount,
		Description: txn.Description,
		Reference:   txn.Reference,
		CreatedAt:   txn.CreatedAt,
	}
	if txn.CompletedAt.Valid {
		m.CompletedAt = &txn.CompletedAt.Time
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	txn.ID = m.ID
	txn.CreatedAt = m.CreatedAt
	return nil
}

// ListByUserID lists a user's transactions newest first with the unpaged total
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var txnModels []models.Transaction
	if err := query.Find(&txnModels).Error; err != nil {
		return nil, 0, err
	}

	txns := make([]*entities.Transaction, 0, len(txnModels))
	for _, m := range txnModels {
		txns = append(txns, &entities.Transaction{
			ID:          m.ID,
			UserID:      m.UserID,
			Type:        entities.TransactionType(m.Type),
			Status:      entities.TransactionStatus(m.Status),
			Amount:      m.Amount,
			Description: m.Description,
			Reference:   m.Reference,
			CompletedAt: null.TimeFromPtr(m.CompletedAt),
			CreatedAt:   m.CreatedAt,
		})
	}
	return txns, total, nil
}
