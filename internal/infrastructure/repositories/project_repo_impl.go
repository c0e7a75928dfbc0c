package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/infrastructure/models"
)

// ProjectRepository implements project data operations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	m := projectToModel(project)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	project.ID = m.ID
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return projectToEntity(&m), nil
}

// Update writes the mutable funding columns back to the store
func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	updates := map[string]interface{}{
		"amount_raised": project.AmountRaised,
		"status":        string(project.Status),
		"updated_at":    time.Now(),
	}
	if project.FundedAt.Valid {
		updates["funded_at"] = project.FundedAt.Time
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{}).Where("id = ?", project.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates a project's status
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProjectStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
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

// List lists projects newest first, optionally filtered by status
func (r *ProjectRepository) List(ctx context.Context, status entities.ProjectStatus, limit, offset int) ([]*entities.Project, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var projectModels []models.Project
	if err := query.Find(&projectModels).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*entities.Project, 0, len(projectModels))
	for i := range projectModels {
		projects = append(projects, projectToEntity(&projectModels[i]))
	}
	return projects, total, nil
}

// ListByBusinessID lists projects owned by a business, newest first
func (r *ProjectRepository) ListByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.Project, error) {
	var projectModels []models.Project
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&projectModels).Error
	if err != nil {
		return nil, err
	}

	projects := make([]*entities.Project, 0, len(projectModels))
	for i := range projectModels {
		projects = append(projects, projectToEntity(&projectModels[i]))
	}
	return projects, nil
}

func projectToModel(p *entities.Project) *models.Project {
	m := &models.Project{
		ID:              p.ID,
		BusinessID:      p.BusinessID,
		Title:           p.Title,
		Description:     p.Description,
		AmountRequested: p.AmountRequested,
		AmountRaised:    p.AmountRaised,
		DurationMonths:  p.DurationMonths,
		ExpectedROI:     p.ExpectedROI,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Documents.Valid {
		m.Documents = p.Documents.JSON
	}
	if p.FundedAt.Valid {
		m.FundedAt = &p.FundedAt.Time
	}
	return m
}

func projectToEntity(m *models.Project) *entities.Project {
	p := &entities.Project{
		ID:              m.ID,
		BusinessID:      m.BusinessID,
		Title:           m.Title,
		Description:     m.Description,
		AmountRequested: m.AmountRequested,
		AmountRaised:    m.AmountRaised,
		DurationMonths:  m.DurationMonths,
		ExpectedROI:     m.ExpectedROI,
		Status:          entities.ProjectStatus(m.Status),
		FundedAt:        null.TimeFromPtr(m.FundedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if len(m.Documents) > 0 {
		p.Documents = null.JSONFrom(m.Documents)
	}
	return p
}
