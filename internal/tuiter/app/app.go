package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tuiterhttp "github.com/tuiterhq/tuiter/internal/tuiter/http"
	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/internal/tuiter/store/drivers/sqlite"
	"github.com/tuiterhq/tuiter/pkg/cryptox"
	"github.com/tuiterhq/tuiter/pkg/slogx"
)

// Application owns the composition root: store, services, router, server.
// Everything is constructed explicitly here; nothing is package-global.
type Application struct {
	Config Config
	Logger *slog.Logger

	store  store.Store
	server *http.Server

	housekeeping *service.HousekeepingService
}

func New(version string) (*Application, error) {
	cfg := LoadConfig()

	logger := slogx.New(slogx.Config{
		Service: "tuiter",
		Version: version,
		Env:     cfg.Environment,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	cryptox.SetPepperPath(cfg.PepperFile)

	st, err := initStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	authService := &service.AuthService{Store: st, SessionTTL: cfg.SessionTTL}
	userService := &service.UserService{Store: st}
	tuitService := &service.TuitService{Store: st}
	followService := &service.FollowService{Store: st}
	bookmarkService := &service.BookmarkService{Store: st}
	messageService := &service.MessageService{Store: st}

	router := tuiterhttp.NewRouter(version, st, logger)
	router.AuthService = authService
	router.UserService = userService
	router.TuitService = tuitService
	router.FollowService = followService
	router.BookmarkService = bookmarkService
	router.MessageService = messageService
	router.ApplyRoutes()

	return &Application{
		Config: cfg,
		Logger: logger,
		store:  st,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		housekeeping: service.NewHousekeepingService(st, logger, cfg.HousekeepingInterval),
	}, nil
}

func initStore(cfg Config) (store.Store, error) {
	dsn := cfg.DatabaseFile
	if dsn != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DatabaseFile)
	}

	st, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, err
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, err
	}

	return st, nil
}

// Run starts the background workers and the HTTP server, blocking until the
// server stops. http.ErrServerClosed is swallowed; everything else reports.
func (a *Application) Run() error {
	a.housekeeping.Start()

	a.Logger.Info("http server listening", slog.String("addr", a.server.Addr))

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured grace period, then
// stops background workers and closes the store.
func (a *Application) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.Config.ShutdownGrace)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Error("http server shutdown", slog.Any("error", err))
	}

	a.housekeeping.Stop()

	return a.store.Close()
}
