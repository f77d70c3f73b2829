// Command seed creates the demo accounts used for local development and
// manual testing. Existing accounts are left untouched, so the command is
// safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pruthvirajtarode/backendProject/internal/core/domain"
	"github.com/pruthvirajtarode/backendProject/internal/infrastructure/config"
	mongoinfra "github.com/pruthvirajtarode/backendProject/internal/infrastructure/db/mongo"
	"github.com/pruthvirajtarode/backendProject/pkg/logger"
)

type seedUser struct {
	name     string
	email    string
	password string
	role     domain.Role
}

var seedUsers = []seedUser{
	{name: "Admin User", email: "admin@taskmanager.com", password: "password123", role: domain.RoleAdmin},
	{name: "Demo User", email: "user@taskmanager.com", password: "password123", role: domain.RoleUser},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	users := mongoinfra.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	for _, s := range seedUsers {
		if _, err := users.FindByEmail(ctx, s.email); err == nil {
			log.Info().Str("email", s.email).Msg("already exists, skipping")
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			log.Fatal().Err(err).Str("email", s.email).Msg("lookup failed")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash password")
		}

		now := time.Now().UTC()
		user := &domain.User{
			Name:         s.name,
			Email:        s.email,
			PasswordHash: string(hash),
			Role:         s.role,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := users.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Str("email", s.email).Msg("failed to create user")
		}
		log.Info().Str("email", s.email).Str("role", string(s.role)).Msg("created")
	}

	log.Info().Msg("demo users ready")
}
