package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/ulule/limiter/v3"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/audit"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/config"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/crypto"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/db"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/metrics"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/storage"
	audithandler "github.com/oleeahmmed/UniworldHrm/internal/transport/http/handlers/audit"
	authhandler "github.com/oleeahmmed/UniworldHrm/internal/transport/http/handlers/auth"
	hrmhandler "github.com/oleeahmmed/UniworldHrm/internal/transport/http/handlers/hrm"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/middleware"
)

const APIPrefix = "/api/v1"

// Deps are the collaborators behind the router. New fills them from
// Postgres; tests pass in-memory versions.
type Deps struct {
	Config  config.Config
	Auth    authhandler.Authenticator
	Perms   middleware.PermissionStore
	Audit   audithandler.EventLister
	Repos   hrmhandler.Repositories
	Files   hrmhandler.FileStore
	Limiter limiter.Store
	Metrics *metrics.Collector
	// Ready reports whether backing services answer. Nil means always ready.
	Ready func(ctx context.Context) error
}

type Server struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler

	closers []func() error
}

// New connects to the database, applies migrations and seed data as
// configured, and builds the router.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cipher, err := crypto.New(cfg.DataEncryptionKey)
	if err != nil {
		return nil, err
	}
	if !cipher.Configured() {
		slog.Warn("DATA_ENCRYPTION_KEY is empty; sensitive employee fields are stored unencrypted")
	}

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	s := &Server{Config: cfg, DB: pool}
	s.closers = append(s.closers, func() error { pool.Close(); return nil })

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			s.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		opts := db.SeedOptions{AdminEmail: cfg.SeedAdminEmail, AdminPassword: cfg.SeedAdminPassword}
		if err := db.Seed(ctx, pool, opts); err != nil {
			s.Close()
			return nil, errors.Wrap(err, "seed")
		}
	}

	files, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		s.Close()
		return nil, err
	}
	limiterStore, closeLimiter, err := middleware.NewLimiterStore(ctx, cfg.RateLimitRedisURL)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.closers = append(s.closers, closeLimiter)

	authStore := auth.NewStore(pool)
	deps := Deps{
		Config:  cfg,
		Auth:    auth.NewService(authStore, cfg.JWTSecret, cfg.TokenTTL),
		Perms:   authStore,
		Audit:   audit.New(pool),
		Repos:   hrmhandler.FromStore(hrm.NewStore(pool, cipher)),
		Files:   files,
		Limiter: limiterStore,
		Ready:   pool.Ping,
	}
	if cfg.MetricsEnabled {
		deps.Metrics = metrics.New()
	}
	s.Router = NewRouter(deps)
	return s, nil
}

// NewRouter mounts the API, probes and metrics.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config

	var recorder middleware.RequestRecorder
	if deps.Metrics != nil {
		recorder = deps.Metrics
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.SecureHeaders(cfg.Production()))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.Logger(recorder))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if deps.Ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Ready(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	if deps.Metrics != nil {
		router.Handle(cfg.MetricsPath, deps.Metrics.Handler())
	}

	router.Route(APIPrefix, func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(middleware.RateLimit(deps.Limiter, cfg.RateLimitPerMinute))
		}

		authHandler := authhandler.NewHandler(deps.Auth)
		authHandler.RegisterPublic(r)
		authHandler.RegisterRoutes(r)

		audithandler.NewHandler(deps.Audit, deps.Perms).RegisterRoutes(r)
		hrmhandler.NewHandler(deps.Repos, deps.Perms, deps.Files, APIPrefix).RegisterRoutes(r)
	})

	return router
}

// Close releases the pool and the limiter backend.
func (s *Server) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}
