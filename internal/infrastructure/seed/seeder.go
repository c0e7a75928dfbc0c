package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"bizfundraiser.backend/internal/domain/entities"
	"bizfundraiser.backend/internal/domain/repositories"
	"bizfundraiser.backend/pkg/crypto"
	"bizfundraiser.backend/pkg/logger"
)

const (
	investorStartingBalance = 500000
	approvalProbability     = 0.7
	poolShare               = 0.8
	contributionBase        = 100000
	defaultPassword         = "Password123!"
)

var depositAmounts = []float64{50000, 75000, 100000}

// userSpec is one fixed roster entry.
type userSpec struct {
	email     string
	role      entities.UserRole
	firstName string
	lastName  string
	phone     string

	businessName    string
	cacNumber       string
	taxID           string
	businessAddress string
}

// projectSpec is one fixed demo project, owned by businesses round-robin.
type projectSpec struct {
	title           string
	description     string
	amountRequested float64
	durationMonths  int
	expectedROI     float64
}

var adminSpec = userSpec{
	email: "admin@bizfundraiser.com", role: entities.UserRoleAdmin,
	firstName: "Platform", lastName: "Admin", phone: "+2348010000000",
}

var investorSpecs = []userSpec{
	{email: "investor1@bizfundraiser.com", role: entities.UserRoleInvestor, firstName: "Ada", lastName: "Okafor", phone: "+2348010000001"},
	{email: "investor2@bizfundraiser.com", role: entities.UserRoleInvestor, firstName: "Bola", lastName: "Adeyemi", phone: "+2348010000002"},
	{email: "investor3@bizfundraiser.com", role: entities.UserRoleInvestor, firstName: "Chike", lastName: "Eze", phone: "+2348010000003"},
	{email: "investor4@bizfundraiser.com", role: entities.UserRoleInvestor, firstName: "Dami", lastName: "Balogun", phone: "+2348010000004"},
	{email: "investor5@bizfundraiser.com", role: entities.UserRoleInvestor, firstName: "Efe", lastName: "Oghenekaro", phone: "+2348010000005"},
}

var businessSpecs = []userSpec{
	{
		email: "business1@bizfundraiser.com", role: entities.UserRoleBusiness,
		firstName: "Funke", lastName: "Akindele", phone: "+2348010000006",
		businessName: "GreenHarvest Farms Ltd", cacNumber: "RC-100001",
		taxID: "TIN-500001", businessAddress: "Plot 4 Agric Road, Ibadan",
	},
	{
		email: "business2@bizfundraiser.com", role: entities.UserRoleBusiness,
		firstName: "Gozie", lastName: "Nwosu", phone: "+2348010000007",
		businessName: "SolarGrid Energy Ltd", cacNumber: "RC-100002",
		taxID: "TIN-500002", businessAddress: "15 Power Lane, Abuja",
	},
	{
		email: "business3@bizfundraiser.com", role: entities.UserRoleBusiness,
		firstName: "Hauwa", lastName: "Bello", phone: "+2348010000008",
		businessName: "SwiftLogistics Co", cacNumber: "RC-100003",
		taxID: "TIN-500003", businessAddress: "2 Wharf Road, Apapa",
	},
}

var projectSpecs = []projectSpec{
	{title: "Cassava Processing Line", description: "Add a second cassava processing line to double output.", amountRequested: 2000000, durationMonths: 12, expectedROI: 15},
	{title: "Solar Mini-Grid Phase 2", description: "Extend the mini-grid to 300 additional households.", amountRequested: 5000000, durationMonths: 24, expectedROI: 20},
	{title: "Cold Chain Fleet", description: "Three refrigerated trucks for perishable goods delivery.", amountRequested: 3500000, durationMonths: 18, expectedROI: 18},
	{title: "Poultry Feed Mill", description: "On-site feed mill to cut input costs by a third.", amountRequested: 1500000, durationMonths: 9, expectedROI: 12},
	{title: "Warehouse Automation", description: "Conveyor and sorting systems for the Apapa depot.", amountRequested: 4000000, durationMonths: 15, expectedROI: 25},
}

// Seeder populates the store with a fixed demo roster and randomized
// investment activity. Users and wallets upsert on their natural keys, so
// reruns do not duplicate the roster; projects, investments and
// transactions are created unconditionally and will duplicate on reruns.
type Seeder struct {
	userRepo        repositories.UserRepository
	walletRepo      repositories.WalletRepository
	projectRepo     repositories.ProjectRepository
	investmentRepo  repositories.InvestmentRepository
	transactionRepo repositories.TransactionRepository

	rng *rand.Rand
	now func() time.Time
}

// NewSeeder creates a seeder. The rand source is injectable so tests can
// fix the seed and assert exact allocations.
func NewSeeder(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	projectRepo repositories.ProjectRepository,
	investmentRepo repositories.InvestmentRepository,
	transactionRepo repositories.TransactionRepository,
	rng *rand.Rand,
) *Seeder {
	return &Seeder{
		userRepo:        userRepo,
		walletRepo:      walletRepo,
		projectRepo:     projectRepo,
		investmentRepo:  investmentRepo,
		transactionRepo: transactionRepo,
		rng:             rng,
		now:             time.Now,
	}
}

// Run executes the full bootstrap sequentially. Any failure aborts.
func (s *Seeder) Run(ctx context.Context) error {
	// one hash for the whole roster; they share the demo password
	passwordHash, err := crypto.HashPassword(defaultPassword)
	if err != nil {
		return err
	}

	admin, err := s.seedUser(ctx, adminSpec, passwordHash, 0)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	logger.Info(ctx, "seeded admin", zap.String("email", admin.Email))

	investors := make([]*entities.User, 0, len(investorSpecs))
	for _, spec := range investorSpecs {
		user, err := s.seedUser(ctx, spec, passwordHash, investorStartingBalance)
		if err != nil {
			return fmt.Errorf("seed investor %s: %w", spec.email, err)
		}
		investors = append(investors, user)
	}
	logger.Info(ctx, "seeded investors", zap.Int("count", len(investors)))

	businesses := make([]*entities.User, 0, len(businessSpecs))
	for _, spec := range businessSpecs {
		user, err := s.seedUser(ctx, spec, passwordHash, 0)
		if err != nil {
			return fmt.Errorf("seed business %s: %w", spec.email, err)
		}
		businesses = append(businesses, user)
	}
	logger.Info(ctx, "seeded businesses", zap.Int("count", len(businesses)))

	projects, err := s.seedProjects(ctx, businesses)
	if err != nil {
		return err
	}

	for _, project := range projects {
		if project.Status != entities.ProjectStatusApproved {
			continue
		}
		if err := s.simulateInvestments(ctx, project, investors); err != nil {
			return fmt.Errorf("simulate investments for %s: %w", project.Title, err)
		}
	}

	for _, investor := range investors {
		if err := s.seedDeposits(ctx, investor); err != nil {
			return fmt.Errorf("seed deposits for %s: %w", investor.Email, err)
		}
	}

	logger.Info(ctx, "seed complete", zap.Int("projects", len(projects)))
	return nil
}

// seedUser upserts one roster user by email with a fully KYC-complete
// profile, plus their wallet keyed by user id.
func (s *Seeder) seedUser(ctx context.Context, spec userSpec, passwordHash string, balance float64) (*entities.User, error) {
	now := s.now()
	user := &entities.User{
		ID:           uuid.New(),
		Email:        spec.email,
		PasswordHash: passwordHash,
		Role:         spec.role,
		FirstName:    spec.firstName,
		LastName:     spec.lastName,
		Phone:        spec.phone,
		Address:      "1 Demo Street, Lagos",
		IDNumber:     "NIN-" + spec.phone[4:],
		IDDocument:   "https://cdn.bizfundraiser.com/docs/" + spec.firstName + ".pdf",
		KYCCompleted: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if spec.role == entities.UserRoleBusiness {
		user.BusinessName = null.StringFrom(spec.businessName)
		user.CACNumber = null.StringFrom(spec.cacNumber)
		user.TaxID = null.StringFrom(spec.taxID)
		user.BusinessAddress = null.StringFrom(spec.businessAddress)
	}

	user, err := s.userRepo.UpsertByEmail(ctx, user)
	if err != nil {
		return nil, err
	}

	wallet := &entities.Wallet{
		ID:        uuid.New(),
		UserID:    user.ID,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.walletRepo.UpsertByUserID(ctx, wallet); err != nil {
		return nil, err
	}
	return user, nil
}

// seedProjects creates the five demo projects round-robin across the
// businesses. Each is independently approved with probability 0.7.
func (s *Seeder) seedProjects(ctx context.Context, businesses []*entities.User) ([]*entities.Project, error) {
	now := s.now()
	projects := make([]*entities.Project, 0, len(projectSpecs))
	for i, spec := range projectSpecs {
		status := entities.ProjectStatusPending
		if s.rng.Float64() < approvalProbability {
			status = entities.ProjectStatusApproved
		}

		project := &entities.Project{
			ID:              uuid.New(),
			BusinessID:      businesses[i%len(businesses)].ID,
			Title:           spec.title,
			Description:     spec.description,
			AmountRequested: spec.amountRequested,
			DurationMonths:  spec.durationMonths,
			ExpectedROI:     spec.expectedROI,
			Status:          status,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.projectRepo.Create(ctx, project); err != nil {
			return nil, fmt.Errorf("seed project %s: %w", spec.title, err)
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// simulateInvestments picks the first N investors (N uniform in {2,3,4})
// and lets each contribute 100000 plus a random share of the 80% pool.
// Contributions are independent and not normalized; the project funds
// when the sum reaches the requested amount.
func (s *Seeder) simulateInvestments(ctx context.Context, project *entities.Project, investors []*entities.User) error {
	n := 2 + s.rng.Intn(3)
	selected := investors[:n]
	maxPool := poolShare * project.AmountRequested

	now := s.now()
	var raised float64
	for _, investor := range selected {
		amount := float64(contributionBase + s.rng.Intn(int(maxPool/float64(n))))

		// no underflow check; the roster starts with enough balance
		if err := s.walletRepo.Debit(ctx, investor.ID, amount); err != nil {
			return err
		}

		investment := &entities.Investment{
			ID:             uuid.New(),
			InvestorID:     investor.ID,
			ProjectID:      project.ID,
			Amount:         amount,
			ExpectedReturn: entities.ExpectedReturn(amount, project.ExpectedROI),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.investmentRepo.Create(ctx, investment); err != nil {
			return err
		}
		raised += amount
	}

	project.AmountRaised = raised
	if raised >= project.AmountRequested {
		project.Status = entities.ProjectStatusFunded
		project.FundedAt = null.TimeFrom(now)
	}
	return s.projectRepo.Update(ctx, project)
}

// seedDeposits records three completed demo deposits per investor.
func (s *Seeder) seedDeposits(ctx context.Context, investor *entities.User) error {
	now := s.now()
	for _, amount := range depositAmounts {
		reference, err := crypto.GenerateReference("DEP")
		if err != nil {
			return err
		}
		txn := &entities.Transaction{
			ID:          uuid.New(),
			UserID:      investor.ID,
			Type:        entities.TransactionTypeDeposit,
			Status:      entities.TransactionStatusCompleted,
			Amount:      amount,
			Description: "Demo deposit",
			Reference:   reference,
			CompletedAt: null.TimeFrom(now),
			CreatedAt:   now,
		}
		if err := s.transactionRepo.Create(ctx, txn); err != nil {
			return err
		}
	}
	return nil
}
