package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"studenthub-backend/internal/config"
	"studenthub-backend/internal/infrastructure/cache"
	"studenthub-backend/internal/infrastructure/database"
	"studenthub-backend/internal/sequence"
	"studenthub-backend/pkg/logger"

	apikeyHandler "studenthub-backend/internal/domains/apikey/handler"
	apikeyRepo "studenthub-backend/internal/domains/apikey/repository"
	apikeyService "studenthub-backend/internal/domains/apikey/service"
	studentHandler "studenthub-backend/internal/domains/student/handler"
	studentRepo "studenthub-backend/internal/domains/student/repository"
	studentService "studenthub-backend/internal/domains/student/service"
)

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config    *config.Config
	DB        *database.PostgresDB
	Redis     *cache.RedisClient
	Sequences sequence.Generator

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	StudentRepo studentRepo.RepositoryInterface
	APIKeyRepo  apikeyRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	StudentService studentService.ServiceInterface
	APIKeyService  apikeyService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	StudentHandler *studentHandler.StudentHandler
	APIKeyHandler  *apikeyHandler.APIKeyHandler
}

// NewContainer initializes mọi dependency theo thứ tự:
// config -> logger -> postgres -> schema -> redis -> repos -> services -> handlers
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(&database.DBConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.InitSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	// Redis only backs the rate limiter, which fails open, so a missing
	// Redis degrades the service instead of stopping it.
	redisClient := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, rate limiting disabled")
	}

	c := &Container{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		Sequences: sequence.NewPostgresGenerator(db.Pool),
	}

	c.StudentRepo = studentRepo.NewPostgresRepository(db.Pool)
	c.APIKeyRepo = apikeyRepo.NewPostgresRepository(db.Pool)

	c.StudentService = studentService.NewStudentService(c.StudentRepo, c.Sequences, cfg.App.OperationTimeout)
	c.APIKeyService = apikeyService.NewAPIKeyService(c.APIKeyRepo, cfg.App.OperationTimeout)

	c.StudentHandler = studentHandler.NewStudentHandler(c.StudentService)
	c.APIKeyHandler = apikeyHandler.NewAPIKeyHandler(c.APIKeyService)

	return c, nil
}

// Cleanup đóng mọi external connection khi shutdown
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database pool")
		}
	}
}
