package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"quillhub/database"
	"quillhub/internal/config"
	"quillhub/internal/reconcile"
)

func main() {
	workers := flag.Int("workers", 4, "concurrent reconciliation passes")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	if err := reconcile.NewReconciler(db, *workers, logger).Run(ctx); err != nil {
		logger.Error("reconciliation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("reconciliation complete", "elapsed", time.Since(start))
}
