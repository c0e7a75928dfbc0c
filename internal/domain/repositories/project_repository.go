package repositories

import (
	"context"

	"github.com/google/uuid"
	"bizfundraiser.backend/internal/domain/entities"
)

// ProjectRepository defines project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProjectStatus) error
	// List returns projects newest first, optionally filtered by status.
	// An empty status matches all. Returns the unpaged total count.
	List(ctx context.Context, status entities.ProjectStatus, limit, offset int) ([]*entities.Project, int64, error)
	ListByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.Project, error)
}

// InvestmentRepository defines investment data operations
type InvestmentRepository interface {
	Create(ctx context.Context, investment *entities.Investment) error
	ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error)
	ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.Investment, error)
}

// TransactionRepository defines transaction log operations. Records are
// append-only; there is no update path.
type TransactionRepository interface {
	Create(ctx context.Context, txn *entities.Transaction) error
	// ListByUserID returns transactions newest first with the unpaged total.
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error)
}
