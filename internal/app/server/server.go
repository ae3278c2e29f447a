package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hris/internal/apperr"
	"hris/internal/auth"
	"hris/internal/domain/analytics"
	"hris/internal/domain/assets"
	"hris/internal/domain/attendance"
	"hris/internal/domain/core"
	"hris/internal/domain/leave"
	"hris/internal/domain/notifications"
	"hris/internal/domain/payroll"
	"hris/internal/platform/config"
	"hris/internal/store"
	analyticshandler "hris/internal/transport/http/handlers/analytics"
	assetshandler "hris/internal/transport/http/handlers/assets"
	attendancehandler "hris/internal/transport/http/handlers/attendance"
	authhandler "hris/internal/transport/http/handlers/auth"
	corehandler "hris/internal/transport/http/handlers/core"
	leavehandler "hris/internal/transport/http/handlers/leave"
	notificationshandler "hris/internal/transport/http/handlers/notifications"
	payrollhandler "hris/internal/transport/http/handlers/payroll"
	"hris/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Store  *store.Store
	Router http.Handler
}

// New wires the storage backend, domain services, and the HTTP router.
// The caller owns the store lifecycle via Close.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage backend: %w", err)
	}

	st := store.New(backend)
	if err := st.Connect(ctx); err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	coreService := core.NewService(st)
	attendanceService := attendance.NewService(st)
	leaveService := leave.NewService(st)
	payrollService := payroll.NewService(st, cfg.PayslipDir)
	assetsService := assets.NewService(st)
	notificationsService := notifications.NewService(st)
	analyticsService := analytics.NewService(st)
	authService := auth.NewService(st, cfg.JWTSecret)

	if err := seedAdmin(ctx, cfg, coreService, authService); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(maxBody(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			http.Error(w, "storage not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authService).RegisterRoutes(r)
		corehandler.NewHandler(coreService).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceService).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService).RegisterRoutes(r)
		assetshandler.NewHandler(assetsService).RegisterRoutes(r)
		notificationshandler.NewHandler(notificationsService).RegisterRoutes(r)
		analyticshandler.NewHandler(analyticsService).RegisterRoutes(r)
	})

	return &App{Config: cfg, Store: st, Router: router}, nil
}

func (a *App) Close(ctx context.Context) error {
	return a.Store.Disconnect(ctx)
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	app, err := New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer func() { _ = app.Close(ctx) }()

	log.Printf("HRIS server listening on %s (driver=%s)", cfg.Addr, cfg.StorageDriver)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func newBackend(ctx context.Context, cfg config.Config) (store.Backend, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return store.NewMemoryBackend(), nil
	case config.DriverFile:
		return store.NewFileBackend(cfg.DataDir)
	case config.DriverPostgres:
		return store.NewPostgresBackend(ctx, cfg.DatabaseURL)
	case config.DriverSQLite:
		return store.NewSQLiteBackend(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// seedAdmin bootstraps a first admin account so a fresh deployment is
// reachable. Re-running against an existing account is a no-op.
func seedAdmin(ctx context.Context, cfg config.Config, coreService *core.Service, authService *auth.Service) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	emp, err := coreService.CreateEmployee(ctx, core.Employee{
		EmployeeCode: "ADMIN-001",
		Name:         "Administrator",
		Email:        cfg.SeedAdminEmail,
		Role:         core.RoleAdmin,
		Status:       core.StatusActive,
	})
	if err != nil {
		if apperr.IsConflict(err) {
			return nil
		}
		return err
	}
	return authService.SetPassword(ctx, emp.ID, cfg.SeedAdminPassword)
}

func maxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
