package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bizfundraiser.backend/internal/config"
	"bizfundraiser.backend/internal/infrastructure/repositories"
	"bizfundraiser.backend/internal/interfaces/http/handlers"
	"bizfundraiser.backend/internal/interfaces/http/middleware"
	"bizfundraiser.backend/internal/usecases"
	"bizfundraiser.backend/pkg/jwt"
	"bizfundraiser.backend/pkg/logger"
	"bizfundraiser.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

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
		log.Printf("database not available: %v (endpoints will return errors)", err)
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	authUsecase := usecases.NewAuthUsecase(userRepo, walletRepo, jwtService)
	profileUsecase := usecases.NewProfileUsecase(userRepo)
	projectUsecase := usecases.NewProjectUsecase(projectRepo, investmentRepo, userRepo)
	investmentUsecase := usecases.NewInvestmentUsecase(investmentRepo, projectRepo, walletRepo, transactionRepo, userRepo, uow)
	walletUsecase := usecases.NewWalletUsecase(walletRepo, transactionRepo, uow)

	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	userHandler := handlers.NewUserHandler(profileUsecase)
	projectHandler := handlers.NewProjectHandler(projectUsecase)
	investmentHandler := handlers.NewInvestmentHandler(investmentUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		userHandler:       userHandler,
		projectHandler:    projectHandler,
		investmentHandler: investmentHandler,
		walletHandler:     walletHandler,
		authMiddleware:    middleware.AuthMiddleware(jwtService),
	})

	log.Printf("server starting on port %s", cfg.Server.Port)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
