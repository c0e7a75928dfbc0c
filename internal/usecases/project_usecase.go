package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/domain/repositories"
	"bizfundraiser.backend/pkg/utils"
)

// ProjectUsecase handles the project funding lifecycle
type ProjectUsecase struct {
	projectRepo    repositories.ProjectRepository
	investmentRepo repositories.InvestmentRepository
	userRepo       repositories.UserRepository
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(
	projectRepo repositories.ProjectRepository,
	investmentRepo repositories.InvestmentRepository,
	userRepo repositories.UserRepository,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo:    projectRepo,
		investmentRepo: investmentRepo,
		userRepo:       userRepo,
	}
}

// CreateProject creates a PENDING project owned by a business user.
// Requires a completed KYC.
func (u *ProjectUsecase) CreateProject(ctx context.Context, businessID uuid.UUID, input *entities.CreateProjectInput) (*entities.Project, error) {
	user, err := u.userRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.UserRoleBusiness {
		return nil, domainerrors.Forbidden("Only business accounts can create projects")
	}
	if !user.KYCCompleted {
		return nil, domainerrors.Forbidden("Complete KYC before creating projects")
	}

	now := time.Now()
	project := &entities.Project{
		ID:              uuid.New(),
		BusinessID:      businessID,
		Title:           input.Title,
		Description:     input.Description,
		AmountRequested: input.AmountRequested,
		DurationMonths:  input.DurationMonths,
		ExpectedROI:     input.ExpectedROI,
		Status:          entities.ProjectStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.Documents != nil {
		docs, err := json.Marshal(input.Documents)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid documents payload")
		}
		project.Documents = null.JSONFrom(docs)
	}

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject gets a project by id
func (u *ProjectUsecase) GetProject(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	return u.projectRepo.GetByID(ctx, id)
}

// ListProjects lists projects newest first with optional status filter
func (u *ProjectUsecase) ListProjects(ctx context.Context, status entities.ProjectStatus, page, limit int) ([]*entities.Project, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	projects, total, err := u.projectRepo.List(ctx, status, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return projects, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// ListOwnProjects lists the projects owned by a business user
func (u *ProjectUsecase) ListOwnProjects(ctx context.Context, businessID uuid.UUID) ([]*entities.Project, error) {
	return u.projectRepo.ListByBusinessID(ctx, businessID)
}

// ApproveProject moves a PENDING project to APPROVED (admin route)
func (u *ProjectUsecase) ApproveProject(ctx context.Context, id uuid.UUID) error {
	return u.transitionPending(ctx, id, entities.ProjectStatusApproved)
}

// RejectProject moves a PENDING project to REJECTED (admin route)
func (u *ProjectUsecase) RejectProject(ctx context.Context, id uuid.UUID) error {
	return u.transitionPending(ctx, id, entities.ProjectStatusRejected)
}

func (u *ProjectUsecase) transitionPending(ctx context.Context, id uuid.UUID, next entities.ProjectStatus) error {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project.Status != entities.ProjectStatusPending {
		return domainerrors.BadRequest("Only pending projects can be reviewed")
	}
	return u.projectRepo.UpdateStatus(ctx, id, next)
}

// ListProjectInvestments lists the investments into a project. Only the
// owning business or an admin may see them.
func (u *ProjectUsecase) ListProjectInvestments(ctx context.Context, callerID, projectID uuid.UUID) ([]*entities.Investment, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	caller, err := u.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != entities.UserRoleAdmin && project.BusinessID != callerID {
		return nil, domainerrors.Forbidden("Not allowed to view this project's investments")
	}

	return u.investmentRepo.ListByProjectID(ctx, projectID)
}
