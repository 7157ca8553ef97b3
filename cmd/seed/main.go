// Package main provides data seeding for PlantOps.
//
// Seeds are idempotent: existing rows are skipped, never overwritten.
// The fixture file defaults to seed.yaml in the working directory and
// can be overridden with the SEED_FILE environment variable; when no
// fixture exists, only the default admin is seeded.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mayurpawar7875/plantops/ent"
	"github.com/mayurpawar7875/plantops/internal/api/handlers"
	"github.com/mayurpawar7875/plantops/internal/config"
	"github.com/mayurpawar7875/plantops/internal/infrastructure"
	"github.com/mayurpawar7875/plantops/internal/pkg/logger"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

const defaultSeedFile = "seed.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

// seedFixture is the YAML fixture document shape.
type seedFixture struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	ID       string `yaml:"id"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	IsActive *bool  `yaml:"isActive"`
	Role     string `yaml:"role"`
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	if err := seedDefaultAdmin(ctx, client); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	fixture, err := loadFixture()
	if err != nil {
		return fmt.Errorf("load fixture: %w", err)
	}
	for _, u := range fixture.Users {
		if err := seedUserRecord(ctx, client, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func loadFixture() (*seedFixture, error) {
	path := os.Getenv("SEED_FILE")
	if path == "" {
		path = defaultSeedFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("No seed fixture found, skipping", zap.String("path", path))
			return &seedFixture{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var fixture seedFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &fixture, nil
}

// seedDefaultAdmin creates the bootstrap admin (admin@localhost/admin)
// with an active profile and the admin role assignment.
func seedDefaultAdmin(ctx context.Context, client *ent.Client) error {
	return seedUserRecord(ctx, client, seedUser{
		ID:       "user-default-admin",
		Email:    "admin@localhost",
		Password: "admin",
		Name:     "Default Administrator",
		Role:     rbac.RoleAdmin.String(),
	})
}

func seedUserRecord(ctx context.Context, client *ent.Client, u seedUser) error {
	if u.Email == "" || u.Password == "" {
		return fmt.Errorf("email and password are required")
	}
	if u.Role != "" {
		if _, ok := rbac.ParseRole(u.Role); !ok {
			return fmt.Errorf("role %q is not one of: %s", u.Role, rbac.RoleList())
		}
	}

	userID := u.ID
	if userID == "" {
		userID = newID()
	}

	hash, err := handlers.HashPassword(u.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	created, err := client.User.Create().
		SetID(userID).
		SetEmail(u.Email).
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("User already exists, skipping", zap.String("email", u.Email))
			return nil
		}
		return fmt.Errorf("create user: %w", err)
	}

	isActive := true
	if u.IsActive != nil {
		isActive = *u.IsActive
	}
	name := u.Name
	if name == "" {
		name = u.Email
	}

	_, err = client.Profile.Create().
		SetID(newID()).
		SetUserID(created.ID).
		SetName(name).
		SetIsActive(isActive).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("create profile: %w", err)
	}

	if u.Role != "" {
		_, err = client.RoleAssignment.Create().
			SetID(newID()).
			SetUserID(created.ID).
			SetRole(u.Role).
			Save(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("create role assignment: %w", err)
		}
	}

	logger.Info("Seeded user",
		zap.String("email", u.Email),
		zap.String("role", u.Role),
		zap.Bool("is_active", isActive),
	)
	return nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
