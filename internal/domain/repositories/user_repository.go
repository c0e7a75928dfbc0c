package repositories

import (
	"context"

	"github.com/google/uuid"
	"bizfundraiser.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// UpdateFields applies a partial column update. Returns ErrNotFound
	// when the id does not resolve.
	UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	// UpsertByEmail creates the user or returns the existing row keyed by
	// email. Used by the seed bootstrap.
	UpsertByEmail(ctx context.Context, user *entities.User) (*entities.User, error)
	// List returns all users ordered by creation time descending.
	List(ctx context.Context) ([]*entities.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
