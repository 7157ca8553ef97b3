// Package handlers implements the HTTP API handlers.
//
// Route registration lives in internal/app/router.go; handlers do NOT
// register their own routes.
package handlers

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"golang.org/x/crypto/bcrypt"

	"github.com/mayurpawar7875/plantops/ent"
	"github.com/mayurpawar7875/plantops/internal/api/middleware"
	"github.com/mayurpawar7875/plantops/internal/governance/audit"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

const passwordHashCost = 12

// Server implements all API handlers.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	jwtCfg      middleware.JWTConfig
	audit       *audit.Logger
	roleService *rbac.Service
	roles       rbac.RoleStore
	profiles    rbac.ProfileStore
	riverClient *river.Client[pgx.Tx]
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	JWTCfg      middleware.JWTConfig
	Audit       *audit.Logger
	RoleService *rbac.Service
	Roles       rbac.RoleStore
	Profiles    rbac.ProfileStore
	RiverClient *river.Client[pgx.Tx]
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		pool:        deps.Pool,
		jwtCfg:      deps.JWTCfg,
		audit:       deps.Audit,
		roleService: deps.RoleService,
		roles:       deps.Roles,
		profiles:    deps.Profiles,
		riverClient: deps.RiverClient,
	}
}

// HashPassword hashes a password using bcrypt (used by seed command).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
