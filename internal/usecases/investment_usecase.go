package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"bizfundraiser.backend/internal/domain/entities"
	domainerrors "bizfundraiser.backend/internal/domain/errors"
	"bizfundraiser.backend/internal/domain/repositories"
	"bizfundraiser.backend/pkg/crypto"
)

// InvestmentUsecase handles investor contributions into projects
type InvestmentUsecase struct {
	investmentRepo  repositories.InvestmentRepository
	projectRepo     repositories.ProjectRepository
	walletRepo      repositories.WalletRepository
	transactionRepo repositories.TransactionRepository
	userRepo        repositories.UserRepository
	uow             repositories.UnitOfWork
}

// NewInvestmentUsecase creates a new investment usecase
func NewInvestmentUsecase(
	investmentRepo repositories.InvestmentRepository,
	projectRepo repositories.ProjectRepository,
	walletRepo repositories.WalletRepository,
	transactionRepo repositories.TransactionRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *InvestmentUsecase {
	return &InvestmentUsecase{
		investmentRepo:  investmentRepo,
		projectRepo:     projectRepo,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		uow:             uow,
	}
}

// Invest debits the investor's wallet and records a contribution into
// an approved project, updating the project's raised total.
func (u *InvestmentUsecase) Invest(ctx context.Context, investorID uuid.UUID, input *entities.InvestInput) (*entities.Investment, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.BadRequest("Amount must be greater than zero")
	}

	user, err := u.userRepo.GetByID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.UserRoleInvestor {
		return nil, domainerrors.Forbidden("Only investor accounts can invest")
	}
	if !user.KYCCompleted {
		return nil, domainerrors.Forbidden("Complete KYC before investing")
	}

	project, err := u.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Status != entities.ProjectStatusApproved {
		return nil, domainerrors.BadRequest("Project is not open for investment")
	}

	reference, err := crypto.GenerateReference("INV")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	investment := &entities.Investment{
		ID:             uuid.New(),
		InvestorID:     investorID,
		ProjectID:      project.ID,
		Amount:         input.Amount,
		ExpectedReturn: entities.ExpectedReturn(input.Amount, project.ExpectedROI),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// The balance check, debit and all record writes share one
	// transaction so a failure leaves no partial money movement.
	if err := u.uow.Do(ctx, func(txCtx context.Context) error {
		wallet, err := u.walletRepo.GetByUserID(txCtx, investorID)
		if err != nil {
			return err
		}
		if wallet.Balance < input.Amount {
			return domainerrors.InsufficientFunds("Insufficient wallet balance")
		}

		if err := u.walletRepo.Debit(txCtx, investorID, input.Amount); err != nil {
			return err
		}

		if err := u.investmentRepo.Create(txCtx, investment); err != nil {
			return err
		}

		txn := &entities.Transaction{
			ID:          uuid.New(),
			UserID:      investorID,
			Type:        entities.TransactionTypeInvestment,
			Amount:      input.Amount,
			Status:      entities.TransactionStatusCompleted,
			Description: "Investment in " + project.Title,
			Reference:   reference,
			CompletedAt: null.TimeFrom(now),
			CreatedAt:   now,
		}
		if err := u.transactionRepo.Create(txCtx, txn); err != nil {
			return err
		}

		project.AmountRaised += input.Amount
		if project.AmountRaised >= project.AmountRequested {
			project.Status = entities.ProjectStatusFunded
			project.FundedAt = null.TimeFrom(now)
		}
		return u.projectRepo.Update(txCtx, project)
	}); err != nil {
		return nil, err
	}

	return investment, nil
}

// ListMyInvestments lists an investor's contributions newest first
func (u *InvestmentUsecase) ListMyInvestments(ctx context.Context, investorID uuid.UUID) ([]*entities.Investment, error) {
	return u.investmentRepo.ListByInvestorID(ctx, investorID)
}
