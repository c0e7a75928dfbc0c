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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := userToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// UpdateFields applies a partial column update
func (r *UserRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		updates = map[string]interface{}{}
	}
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpsertByEmail creates the user, or returns the existing row with the
// same email. The natural key makes repeated seed runs idempotent.
func (r *UserRepository) UpsertByEmail(ctx context.Context, user *entities.User) (*entities.User, error) {
	existing, err := r.GetByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if err := r.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List lists all users ordered by creation time descending
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// SoftDelete soft deletes a user
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func userToModel(u *entities.User) *models.User {
	m := &models.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Address:      u.Address,
		IDNumber:     u.IDNumber,
		IDDocument:   u.IDDocument,
		KYCCompleted: u.KYCCompleted,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.DateOfBirth.Valid {
		m.DateOfBirth = &u.DateOfBirth.Time
	}
	m.BusinessName = u.BusinessName.Ptr()
	m.CACNumber = u.CACNumber.Ptr()
	m.TaxID = u.TaxID.Ptr()
	m.BusinessAddress = u.BusinessAddress.Ptr()
	if u.BusinessDocuments.Valid {
		m.BusinessDocuments = u.BusinessDocuments.JSON
	}
	return m
}

func userToEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Role:            entities.UserRole(m.Role),
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Phone:           m.Phone,
		Address:         m.Address,
		DateOfBirth:     null.TimeFromPtr(m.DateOfBirth),
		IDNumber:        m.IDNumber,
		IDDocument:      m.IDDocument,
		BusinessName:    null.StringFromPtr(m.BusinessName),
		CACNumber:       null.StringFromPtr(m.CACNumber),
		TaxID:           null.StringFromPtr(m.TaxID),
		BusinessAddress: null.StringFromPtr(m.BusinessAddress),
		KYCCompleted:    m.KYCCompleted,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if len(m.BusinessDocuments) > 0 {
		u.BusinessDocuments = null.JSONFrom(m.BusinessDocuments)
	}
	return u
}
