package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dobaksandor13-ship-it/George-swimm-web/config"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/db"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/db/sqlite"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/live"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/metrics"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/rest"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/rpc"
)

const (
	rpcPath     = "/rpc/"
	metricsPath = "/metrics"
)

type Store interface {
	newsportal.Store
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	Store   Store
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  *config.Config
	Hub     *live.Hub
	Metrics *metrics.Metrics

	dbConnect *pg.DB

	bgCtx     context.Context
	cancel    context.CancelFunc
	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// New wires the service. dbConnect is used for the postgres driver and may be nil for sqlite.
func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	store, err := newStore(cfg, dbConnect)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	gate := auth.NewGate(cfg.Admin.Emails)
	if len(cfg.Admin.Emails) == 0 {
		logger.Warn("admin allow-list is empty, nobody can change news")
	}

	// the hub reads through its own manager so it can be the change notifier of the one below
	hub := live.NewHub(newsportal.NewNewsManager(store, gate, newsportal.WithLogger(logger)), logger, m)
	manager := newsportal.NewNewsManager(store, gate,
		newsportal.WithNotifier(hub),
		newsportal.WithObserver(m),
		newsportal.WithLogger(logger),
	)

	handler := rest.NewNewsHandler(manager, hub, gate, rest.Config{
		Identifier: auth.HeaderIdentifier{
			EmailHeader:   cfg.Auth.EmailHeader,
			SubjectHeader: cfg.Auth.SubjectHeader,
		},
		SignInURL:    cfg.Auth.SignInURL,
		SignOutURL:   cfg.Auth.SignOutURL,
		PingInterval: cfg.PingInterval(),
	}, logger)

	e := handler.RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager, gate)))
	e.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	bgCtx, cancel := context.WithCancel(context.Background())

	return &App{
		Store:     store,
		Logger:    logger,
		Echo:      e,
		Config:    cfg,
		Hub:       hub,
		Metrics:   m,
		dbConnect: dbConnect,
		bgCtx:     bgCtx,
		cancel:    cancel,
	}, nil
}

func newStore(cfg *config.Config, dbConnect *pg.DB) (Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.Storage.Path)
	case config.DriverPostgres:
		if dbConnect == nil {
			return nil, errors.New("postgres driver requires a database connection")
		}
		return db.New(dbConnect), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Start launches the live hub and, for postgres, the change listener.
// It must be called before Run and GracefulShutdown; repeated calls do nothing.
func (a *App) Start() {
	a.startOnce.Do(func() {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			_ = a.Hub.Run(a.bgCtx)
		}()

		if a.dbConnect == nil {
			return
		}

		listener := db.NewListener(a.dbConnect, a.Logger)
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			err := listener.Listen(a.bgCtx, func(op string) {
				a.Logger.Debug("news changed", "op", op)
				a.Hub.Notify()
			})
			if err != nil {
				a.Logger.Error("news change listener stopped", "error", err)
			}
		}()
	})
}

// Run serves HTTP until the server is shut down.
func (a *App) Run() error {
	a.Logger.Info("service started", "addr", a.Config.Addr(), "storage", a.Config.Storage.Driver)
	return a.Echo.Start(a.Config.Addr())
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	a.stopOnce.Do(a.cancel)

	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	a.wg.Wait()

	if cerr := a.Store.Close(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}
