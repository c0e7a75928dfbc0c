package usecases_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/usecases"
)

type investFixture struct {
	uc              *usecases.InvestmentUsecase
	investmentRepo  *mockInvestmentRepository
	projectRepo     *mockProjectRepository
	walletRepo      *mockWalletRepository
	transactionRepo *mockTransactionRepository
	userRepo        *mockUserRepository
	uow             *mockUnitOfWork
}

func newInvestFixture() *investFixture {
	f := &investFixture{
		investmentRepo:  new(mockInvestmentRepository),
		projectRepo:     new(mockProjectRepository),
		walletRepo:      new(mockWalletRepository),
		transactionRepo: new(mockTransactionRepository),
		userRepo:        new(mockUserRepository),
		uow:             new(mockUnitOfWork),
	}
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	f.uc = usecases.NewInvestmentUsecase(
		f.investmentRepo, f.projectRepo, f.walletRepo, f.transactionRepo, f.userRepo, f.uow,
	)
	return f
}

func TestInvest(t *testing.T) {
	f := newInvestFixture()

	investor := completeInvestor(uuid.New())
	investor.KYCCompleted = true
	project := approvedProject(uuid.New())
	project.AmountRaised = 100000

	f.userRepo.On("GetByID", mock.Anything, investor.ID).Return(investor, nil)
	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.walletRepo.On("GetByUserID", mock.Anything, investor.ID).
		Return(&entities.Wallet{UserID: investor.ID, Balance: 300000}, nil)
	f.walletRepo.On("Debit", mock.Anything, investor.ID, float64(200000)).Return(nil)
	f.investmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(inv *entities.Investment) bool {
		// 200000 at 15% ROI
		return inv.Amount == 200000 && inv.ExpectedReturn == 30000 && inv.ProjectID == project.ID
	})).Return(nil)
	f.transactionRepo.On("Create", mock.Anything, mock.MatchedBy(func(txn *entities.Transaction) bool {
		return txn.Type == entities.TransactionTypeInvestment &&
			txn.Status == entities.TransactionStatusCompleted &&
			strings.HasPrefix(txn.Reference, "INV-")
	})).Return(nil)
	f.projectRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entities.Project) bool {
		// 100000 + 200000 < 500000 requested, stays APPROVED
		return p.AmountRaised == 300000 && p.Status == entities.ProjectStatusApproved
	})).Return(nil)

	inv, err := f.uc.Invest(context.Background(), investor.ID, &entities.InvestInput{
		ProjectID: project.ID,
		Amount:    200000,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(30000), inv.ExpectedReturn)
	f.projectRepo.AssertExpectations(t)
	f.transactionRepo.AssertExpectations(t)
}

func TestInvest_FundsProjectAtTarget(t *testing.T) {
	f := newInvestFixture()

	investor := completeInvestor(uuid.New())
	investor.KYCCompleted = true
	project := approvedProject(uuid.New())
	project.AmountRaised = 450000

	f.userRepo.On("GetByID", mock.Anything, investor.ID).Return(investor, nil)
	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.walletRepo.On("GetByUserID", mock.Anything, investor.ID).
		Return(&entities.Wallet{UserID: investor.ID, Balance: 100000}, nil)
	f.walletRepo.On("Debit", mock.Anything, investor.ID, float64(50000)).Return(nil)
	f.investmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.transactionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.projectRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entities.Project) bool {
		return p.Status == entities.ProjectStatusFunded &&
			p.AmountRaised == 500000 &&
			p.FundedAt.Valid
	})).Return(nil)

	_, err := f.uc.Invest(context.Background(), investor.ID, &entities.InvestInput{
		ProjectID: project.ID,
		Amount:    50000,
	})
	require.NoError(t, err)
	f.projectRepo.AssertExpectations(t)
}

func TestInvest_InsufficientFunds(t *testing.T) {
	f := newInvestFixture()

	investor := completeInvestor(uuid.New())
	investor.KYCCompleted = true
	project := approvedProject(uuid.New())

	f.userRepo.On("GetByID", mock.Anything, investor.ID).Return(investor, nil)
	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.walletRepo.On("GetByUserID", mock.Anything, investor.ID).
		Return(&entities.Wallet{UserID: investor.ID, Balance: 100}, nil)

	_, err := f.uc.Invest(context.Background(), investor.ID, &entities.InvestInput{
		ProjectID: project.ID,
		Amount:    200000,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)
	f.walletRepo.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvest_DebitAndRecordsShareTransaction(t *testing.T) {
	f := newInvestFixture()

	investor := completeInvestor(uuid.New())
	investor.KYCCompleted = true
	project := approvedProject(uuid.New())

	f.userRepo.On("GetByID", mock.Anything, investor.ID).Return(investor, nil)
	f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	f.walletRepo.On("GetByUserID", mock.Anything, investor.ID).
		Return(&entities.Wallet{UserID: investor.ID, Balance: 300000}, nil)
	f.walletRepo.On("Debit", mock.Anything, investor.ID, float64(200000)).Return(nil)
	f.investmentRepo.On("Create", mock.Anything, mock.Anything).
		Return(assert.AnError)

	_, err := f.uc.Invest(context.Background(), investor.ID, &entities.InvestInput{
		ProjectID: project.ID,
		Amount:    200000,
	})
	require.ErrorIs(t, err, assert.AnError)

	// the debit ran inside the Do scope, so the failure rolls it back
	f.uow.AssertCalled(t, "Do", mock.Anything, mock.Anything)
	f.walletRepo.AssertCalled(t, "Debit", mock.Anything, investor.ID, float64(200000))
	f.transactionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.projectRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestInvest_Guards(t *testing.T) {
	t.Run("business role rejected", func(t *testing.T) {
		f := newInvestFixture()
		business := completeBusiness(uuid.New())
		business.KYCCompleted = true
		f.userRepo.On("GetByID", mock.Anything, business.ID).Return(business, nil)

		_, err := f.uc.Invest(context.Background(), business.ID, &entities.InvestInput{
			ProjectID: uuid.New(), Amount: 1000,
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("kyc incomplete rejected", func(t *testing.T) {
		f := newInvestFixture()
		investor := completeInvestor(uuid.New())
		f.userRepo.On("GetByID", mock.Anything, investor.ID).Return(investor, nil)

		_, err := f.uc.Invest(context.Background(), investor.ID, &entities.InvestInput{
			ProjectID: uuid.New(), Amount: 1000,
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("pending project rejected", func(t *testing.T) {
		f := newInvestFixture()
		investor := completeInvestor(uuid.New())
		investor.KYCCompleted = true
		project := approvedProject(uuid.New())
		project.Status = entities.ProjectStatusPending

		f.userRepo.On("GetByID", mock.Anything, investor.ID).Return(investor, nil)
		f.projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)

		_, err := f.uc.Invest(context.Background(), investor.ID, &entities.InvestInput{
			ProjectID: project.ID, Amount: 1000,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		f := newInvestFixture()
		_, err := f.uc.Invest(context.Background(), uuid.New(), &entities.InvestInput{
			ProjectID: uuid.New(), Amount: 0,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}
