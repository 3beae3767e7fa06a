package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-token-api/config"
	appuser "github.com/oksasatya/go-user-token-api/internal/application"
	pginfra "github.com/oksasatya/go-user-token-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-user-token-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	// Sessions and tokens are not needed to create a user.
	svc := appuser.NewService(pginfra.NewUserRepository(pool), nil, nil, logger)
	u, err := svc.CreateUser(ctx, appuser.CreateUserInput{
		Email:    cfg.SeedEmail,
		Password: cfg.SeedPassword,
		Name:     cfg.SeedName,
	})
	if errors.Is(err, appuser.ErrEmailTaken) {
		logger.WithField("email", cfg.SeedEmail).Info("seed user already exists")
		return
	}
	if err != nil {
		logger.Fatalf("failed to seed user: %v", err)
	}
	logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email, "name": u.Name}).Info("seeded user")
}
