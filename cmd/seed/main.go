package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bizfundraiser.backend/internal/config"
	"bizfundraiser.backend/internal/infrastructure/repositories"
	"bizfundraiser.backend/internal/infrastructure/seed"
	"bizfundraiser.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	getStdDB = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	runSeed  = func(ctx context.Context, s *seed.Seeder) error { return s.Run(ctx) }
)

func main() {
	if err := runSeedProcess(); err != nil {
		log.Fatal(err)
	}
}

func runSeedProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	logger.Init(cfg.Server.Env)

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database not available: %w", err)
	}

	seeder := seed.NewSeeder(
		repositories.NewUserRepository(db),
		repositories.NewWalletRepository(db),
		repositories.NewProjectRepository(db),
		repositories.NewInvestmentRepository(db),
		repositories.NewTransactionRepository(db),
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	if err := runSeed(context.Background(), seeder); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	log.Println("seed complete")
	return nil
}
