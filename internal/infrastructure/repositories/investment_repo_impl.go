package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bizfundraiser.backend/internal/domain/entities"
	"bizfundraiser.backend/internal/infrastructure/models"
)

// InvestmentRepository implements investment data operations
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create creates a new investment
func (r *InvestmentRepository) Create(ctx context.Context, investment *entities.Investment) error {
	m := &models.Investment{
		ID:             investment.ID,
		InvestorID:     investment.InvestorID,
		ProjectID:      investment.ProjectID,
		Amount:         investment.Amount,
		ExpectedReturn: investment.ExpectedReturn,
		CreatedAt:      investment.CreatedAt,
		UpdatedAt:      investment.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	investment.ID = m.ID
	investment.CreatedAt = m.CreatedAt
	investment.UpdatedAt = m.UpdatedAt
	return nil
}

// ListByInvestorID lists an investor's investments, newest first
func (r *InvestmentRepository) ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error) {
	return r.list(ctx, "investor_id = ?", investorID)
}

// ListByProjectID lists all investments into a project, newest first
func (r *InvestmentRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.Investment, error) {
	return r.list(ctx, "project_id = ?", projectID)
}

func (r *InvestmentRepository) list(ctx context.Context, cond string, arg uuid.UUID) ([]*entities.Investment, error) {
	var investmentModels []models.Investment
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&investmentModels).Error
	if err != nil {
		return nil, err
	}

	investments := make([]*entities.Investment, 0, len(investmentModels))
	for _, m := range investmentModels {
		investments = append(investments, &entities.Investment{
			ID:             m.ID,
			InvestorID:     m.InvestorID,
			ProjectID:      m.ProjectID,
			Amount:         m.Amount,
			ExpectedReturn: m.ExpectedReturn,
			CreatedAt:      m.CreatedAt,
			UpdatedAt:      m.UpdatedAt,
		})
	}
	return investments, nil
}
