// Command cleanup removes part deletion requests whose part no longer
// exists. It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/deletionreq"
	"github.com/heartmarshall/partsdb-backend/internal/app"
	"github.com/heartmarshall/partsdb-backend/internal/config"
)

func main() {
	configPath := pflag.String("config", "", "path to the YAML config (default: $CONFIG_PATH or ./config.yaml)")
	timeout := pflag.Duration("timeout", 5*time.Minute, "overall deadline")
	pflag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := deletionreq.New(pool).DeleteOrphans(ctx)
	if err != nil {
		logger.Error("purge stale deletion requests", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("stale deletion requests purged", slog.Int64("deleted", deleted))
}
