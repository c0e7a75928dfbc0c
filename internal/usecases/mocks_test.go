package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"bizfundraiser.backend/internal/domain/entities"
)

// mockUnitOfWork records the Do call and runs the callback inline, so
// the write sequence executes without a real transaction.
type mockUnitOfWork struct {
	mock.Mock
}

func (m *mockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

func stubUnitOfWork() *mockUnitOfWork {
	uow := new(mockUnitOfWork)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	return uow
}

// mockUserRepository is a testify mock of repositories.UserRepository
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *mockUserRepository) UpsertByEmail(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *mockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockWalletRepository is a testify mock of repositories.WalletRepository
type mockWalletRepository struct {
	mock.Mock
}

func (m *mockWalletRepository) Create(ctx context.Context, wallet *entities.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *mockWalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

func (m *mockWalletRepository) Credit(ctx context.Context, userID uuid.UUID, amount float64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *mockWalletRepository) Debit(ctx context.Context, userID uuid.UUID, amount float64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *mockWalletRepository) UpsertByUserID(ctx context.Context, wallet *entities.Wallet) (*entities.Wallet, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wallet), args.Error(1)
}

// mockProjectRepository is a testify mock of repositories.ProjectRepository
type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *mockProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ProjectStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockProjectRepository) List(ctx context.Context, status entities.ProjectStatus, limit, offset int) ([]*entities.Project, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Project), args.Get(1).(int64), args.Error(2)
}

func (m *mockProjectRepository) ListByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entities.Project, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

// mockInvestmentRepository is a testify mock of repositories.InvestmentRepository
type mockInvestmentRepository struct {
	mock.Mock
}

func (m *mockInvestmentRepository) Create(ctx context.Context, investment *entities.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *mockInvestmentRepository) ListByInvestorID(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Investment), args.Error(1)
}

func (m *mockInvestmentRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entities.Investment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Investment), args.Error(1)
}

// mockTransactionRepository is a testify mock of repositories.TransactionRepository
type mockTransactionRepository struct {
	mock.Mock
}

func (m *mockTransactionRepository) Create(ctx context.Context, txn *entities.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *mockTransactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Transaction, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Transaction), args.Get(1).(int64), args.Error(2)
}
