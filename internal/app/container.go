package app

import (
	"context"
	"fmt"

	"github.com/dheerendra45/news-analyzer/domain"
	"github.com/dheerendra45/news-analyzer/internal/config"
	"github.com/dheerendra45/news-analyzer/internal/infrastructure/auth"
	"github.com/dheerendra45/news-analyzer/internal/infrastructure/database"
	"github.com/dheerendra45/news-analyzer/internal/infrastructure/notifications"
	"github.com/dheerendra45/news-analyzer/internal/infrastructure/repositories"
	"github.com/dheerendra45/news-analyzer/internal/services"
)

// Container holds all dependencies.
type Container struct {
	Config *config.Config

	// Infrastructure
	Mongo *database.Mongo
	Redis *database.Redis

	// Repositories
	UserRepo       domain.UserRepository
	ChallengeStore domain.ChallengeStore
	NewsRepo       domain.NewsRepository
	ReportRepo     domain.ReportRepository
	CardRepo       domain.CardRepository
	SubRepo        domain.SubscriptionRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	UploadSvc       *services.UploadService
}

// NewContainer creates and initializes all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initMongo(ctx); err != nil {
		return nil, err
	}
	if err := container.initRedis(ctx); err != nil {
		return nil, err
	}
	container.initRepositories()
	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initMongo(ctx context.Context) error {
	m, err := database.Connect(ctx, c.Config.MongoURI, c.Config.MongoDatabase)
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := m.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}
	c.Mongo = m
	return nil
}

// initRedis only dials when the challenge store is configured as "redis".
// The default memory store needs no external service.
func (c *Container) initRedis(ctx context.Context) error {
	if c.Config.OTPStore != "redis" {
		return nil
	}
	c.Redis = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := c.Redis.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.Mongo.DB)
	c.NewsRepo = repositories.NewNewsRepository(c.Mongo.DB)
	c.ReportRepo = repositories.NewReportRepository(c.Mongo.DB)
	c.CardRepo = repositories.NewCardRepository(c.Mongo.DB)
	c.SubRepo = repositories.NewSubscriptionRepository(c.Mongo.DB)

	if c.Redis != nil {
		c.ChallengeStore = repositories.NewRedisChallengeStore(c.Redis.Client, c.Config.OTPTTL)
	} else {
		c.ChallengeStore = repositories.NewMemoryChallengeStore()
	}
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	c.NotificationSvc = notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFromEmail,
		c.Config.SMTPFromName,
	)

	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.ChallengeStore, services.OTPConfig{
		Length:      c.Config.OTPLength,
		TTL:         c.Config.OTPTTL,
		MaxAttempts: c.Config.OTPMaxAttempts,
	})

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.Config.AdminDomains,
	)

	uploadSvc, err := services.NewUploadService(c.Config.UploadDir, c.Config.MaxFileSize)
	if err != nil {
		return fmt.Errorf("upload dir: %w", err)
	}
	c.UploadSvc = uploadSvc

	return nil
}

// Close closes all connections.
func (c *Container) Close(ctx context.Context) error {
	if c.Redis != nil {
		c.Redis.Client.Close()
	}
	if c.Mongo != nil {
		return c.Mongo.Close(ctx)
	}
	return nil
}
