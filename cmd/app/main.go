package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/dobaksandor13-ship-it/George-swimm-web/config"
	_ "github.com/dobaksandor13-ship-it/George-swimm-web/docs"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/app"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML or YAML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply database migrations before start")
	lg        *slog.Logger
)

// @title News Board API
// @version 1.0
// @description Public news list and admin mutations
// @host localhost:3000
// @BasePath /

func main() {
	// .env is optional
	_ = godotenv.Load()
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig)
	exitOnError(err)

	ctx := context.Background()

	var dbConnect *pg.DB
	if cfg.Storage.Driver == config.DriverPostgres {
		if *flMigrate {
			exitOnError(db.Migrate(ctx, cfg.Database.URL))
			lg.Info("migrations applied")
		}

		opt, err := cfg.PGOptions()
		exitOnError(err)

		dbConnect = pg.Connect(opt)
		if cfg.Database.LogQueries {
			dbConnect.AddQueryHook(db.NewQueryHook(lg))
		}
		if err := dbConnect.Ping(ctx); err != nil {
			dbConnect.Close()
			exitOnError(err)
		}
	}

	service, err := app.New(cfg, dbConnect, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	service.Start()
	go func() {
		err := service.Run()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
