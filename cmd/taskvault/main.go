package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/akarpov/taskvault/internal/api"
	"github.com/akarpov/taskvault/internal/cli"
	"github.com/akarpov/taskvault/internal/config"
	"github.com/akarpov/taskvault/internal/iocli"
	"github.com/akarpov/taskvault/internal/storage/boltdb"
	"github.com/akarpov/taskvault/internal/storage/sqlite"
	"github.com/akarpov/taskvault/internal/sync"
	"github.com/akarpov/taskvault/internal/task"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", config.DefaultBaseURL, "Server URL")
	dbPath := flag.String("db", "taskvault.db", "Path to local task database")
	statePath := flag.String("state", "taskvault-state.db", "Path to local sync state database")
	batchSize := flag.Int("batch-size", config.DefaultBatchSize, "Entries per sync request")
	maxRetries := flag.Int("max-retries", config.DefaultMaxRetries, "Send attempts per entry before giving up")
	resolver := flag.String("resolver", config.ResolverPeer, "Conflict resolution strategy (peer or local-lww)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		stdio := iocli.NewStdio()
		cli.New(stdio, nil, nil).PrintUsage()
		os.Exit(1)
	}

	cfg := config.Default()
	cfg.BaseURL = *serverURL
	cfg.BatchSize = *batchSize
	cfg.MaxRetries = *maxRetries
	cfg.Resolver = *resolver

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	ctx := context.Background()

	// Задачи и очередь синхронизации живут в SQLite
	taskStorage, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open task database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := taskStorage.Close(); err != nil {
			logger.Error("failed to close task database", "error", err)
		}
	}()

	// Метаданные синхронизации живут в BoltDB
	stateStorage, err := boltdb.New(ctx, *statePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open state database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := stateStorage.Close(); err != nil {
			logger.Error("failed to close state database", "error", err)
		}
	}()

	clientID, err := stateStorage.GetClientID(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get client ID: %v\n", err)
		os.Exit(1)
	}

	apiClient := api.NewClient(cfg.BaseURL, clientID, cfg.RequestTimeout)

	taskService := task.NewService(taskStorage)
	syncService := sync.NewService(cfg, apiClient, taskStorage, taskStorage, stateStorage, logger)

	app := cli.New(iocli.NewStdio(), taskService, syncService)
	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("TaskVault Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
