// Package main seeds the database with demo users and mood entries.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mood-tracker/backend/config"
	"github.com/mood-tracker/backend/internal/application/adapter"
	"github.com/mood-tracker/backend/internal/domain/entity"
	domainerror "github.com/mood-tracker/backend/internal/domain/error"
	"github.com/mood-tracker/backend/internal/infra/db"
	"github.com/mood-tracker/backend/internal/integration/adapters"
	"github.com/mood-tracker/backend/internal/integration/persistence"
	"github.com/mood-tracker/backend/internal/integration/persistence/model"
	"github.com/mood-tracker/backend/internal/seed"
)

// demoUser describes one account created by the seeder.
type demoUser struct {
	email   string
	name    string
	isAdmin bool
}

var demoUsers = []demoUser{
	{email: "admin@moodtracker.local", name: "Admin", isAdmin: true},
	{email: "alice@moodtracker.local", name: "Alice Martins"},
	{email: "bruno@moodtracker.local", name: "Bruno Costa"},
	{email: "carla@moodtracker.local", name: "Carla Dias"},
}

const demoPassword = "Password123"

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.MoodEntryModel{},
		&model.RefreshTokenModel{},
		&model.PasswordResetTokenModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	userRepo := persistence.NewUserRepository(database.DB())
	moodRepo := persistence.NewMoodEntryRepository(database.DB())
	passwordService := adapters.NewPasswordService()
	seeder := seed.NewSeeder(moodRepo)

	hash, err := passwordService.HashPassword(demoPassword)
	if err != nil {
		slog.Error("Failed to hash demo password", "error", err)
		os.Exit(1)
	}

	total := 0
	for _, demo := range demoUsers {
		user, err := ensureUser(ctx, userRepo, demo, hash)
		if err != nil {
			slog.Error("Failed to ensure demo user", "email", demo.email, "error", err)
			os.Exit(1)
		}

		if user.IsAdmin {
			continue
		}

		created, err := seeder.SeedUserMoods(ctx, user)
		if err != nil {
			slog.Error("Failed to seed mood entries", "email", demo.email, "error", err)
			os.Exit(1)
		}
		total += created
	}

	slog.Info("Seeding completed", "users", len(demoUsers), "mood_entries", total)
}

// ensureUser fetches the demo user by email, creating it on first run.
func ensureUser(ctx context.Context, userRepo adapter.UserRepository, demo demoUser, passwordHash string) (*entity.User, error) {
	existing, err := userRepo.FindByEmail(ctx, demo.email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, err
	}

	user := entity.NewUser(demo.email, demo.name, passwordHash)
	user.IsAdmin = demo.isAdmin

	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("Created demo user", "email", user.Email, "is_admin", user.IsAdmin)
	return user, nil
}
