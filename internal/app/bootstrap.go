// Package app is the composition root. Bootstrap stays
// orchestration-only: it wires dependencies and owns no business logic.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"github.com/mayurpawar7875/plantops/internal/api/handlers"
	"github.com/mayurpawar7875/plantops/internal/api/middleware"
	"github.com/mayurpawar7875/plantops/internal/config"
	"github.com/mayurpawar7875/plantops/internal/governance/audit"
	"github.com/mayurpawar7875/plantops/internal/infrastructure"
	"github.com/mayurpawar7875/plantops/internal/jobs"
	"github.com/mayurpawar7875/plantops/internal/pkg/worker"
	"github.com/mayurpawar7875/plantops/internal/rbac"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database clients: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		AuditPoolSize:   cfg.Worker.AuditPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	auditLogger := audit.NewLogger(db.EntClient, pools)

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Security.JWTSecret),
		Issuer:     cfg.Security.JWTIssuer,
		ExpiresIn:  cfg.Security.JWTLifetime,
	}

	profiles := rbac.NewEntProfileStore(db.EntClient)
	roles := rbac.NewEntRoleStore(db.EntClient)
	roleService := rbac.NewService(
		middleware.TokenVerifier{SigningKey: jwtCfg.SigningKey},
		profiles,
		roles,
		auditLogger,
	)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewLeaveExpireWorker(db.EntClient, cfg.Leave.PendingTTL))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	// Leave-request expiry sweep: hourly, plus once on startup so stale
	// pending rows do not survive long restarts.
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.LeaveExpireArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:   db.EntClient,
		Pool:        db.Pool,
		JWTCfg:      jwtCfg,
		Audit:       auditLogger,
		RoleService: roleService,
		Roles:       roles,
		Profiles:    profiles,
		RiverClient: db.RiverClient,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(server, jwtCfg.SigningKey, roles),
		DB:     db,
		Pools:  pools,
	}, nil
}
