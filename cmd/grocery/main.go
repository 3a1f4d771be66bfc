package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/grocery-tracker/internal/auth"
	corecfg "github.com/aevon-lab/grocery-tracker/internal/core/config"
	"github.com/aevon-lab/grocery-tracker/internal/core/logging"
	"github.com/aevon-lab/grocery-tracker/internal/core/storage"
	"github.com/aevon-lab/grocery-tracker/internal/core/storage/memory"
	"github.com/aevon-lab/grocery-tracker/internal/core/storage/postgres"
	"github.com/aevon-lab/grocery-tracker/internal/core/units"
	"github.com/aevon-lab/grocery-tracker/internal/history"
	"github.com/aevon-lab/grocery-tracker/internal/migrations"
	"github.com/aevon-lab/grocery-tracker/internal/purchases"
	"github.com/aevon-lab/grocery-tracker/internal/receipt"
	"github.com/aevon-lab/grocery-tracker/internal/server"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "grocery.yaml", "Path to configuration file")
	issueToken := flag.String("issue-token", "", "Print a bearer token for the given user ID and exit")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	slog.SetDefault(logging.New(cfg.Log, os.Stdout))
	slog.Info("Loaded config",
		"server", cfg.Server,
		"database_type", cfg.Database.Type,
		"receipts_enabled", cfg.Receipts.Enabled,
		"log", cfg.Log,
	)

	authenticator := auth.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTLDuration())
	if *issueToken != "" {
		if err := printToken(os.Stdout, authenticator, *issueToken); err != nil {
			slog.Error("Failed to issue token", "error", err)
			os.Exit(1)
		}
		return
	}

	// 3. Initialize Storage
	store, closeStore, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	unitTable, err := units.LoadTable(cfg.Units.AliasFile)
	if err != nil {
		slog.Error("Failed to load unit aliases", "error", err)
		os.Exit(1)
	}
	slog.Info("Unit aliases loaded", "count", unitTable.Len(), "file", cfg.Units.AliasFile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 4. Initialize Services
	purchasesSvc := purchases.NewService(store, cfg.Server.MaxBodySizeMB)
	historySvc := history.NewService(store)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode, cfg.Server.MaxBodySizeMB)
	srv.Mount([]gin.HandlerFunc{authenticator.Middleware()}, purchasesSvc, historySvc)

	if cfg.Receipts.Enabled {
		receiptSvc, err := newReceiptService(ctx, cfg.Receipts, store, unitTable)
		if err != nil {
			slog.Error("Failed to initialize receipt scanning", "error", err)
			os.Exit(1)
		}
		limiter := server.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		srv.Mount([]gin.HandlerFunc{authenticator.Middleware(), limiter.Middleware()}, receiptSvc)
	} else {
		slog.Info("Receipt scanning disabled by config")
	}

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openStore returns the configured PurchaseStore and its close function.
func openStore(cfg corecfg.DatabaseConfig) (storage.PurchaseStore, func(), error) {
	if cfg.Type == "memory" {
		slog.Warn("[Storage] Using in-memory store, data is lost on restart")
		return memory.NewStore(), func() {}, nil
	}

	dbAdapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := dbAdapter.Close(); err != nil {
			slog.Error("[Postgres] Failed to close adapter", "error", err)
		}
	}

	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.AutoMigrate); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	if err := dbAdapter.Prepare(); err != nil {
		closeFn()
		return nil, nil, err
	}

	return dbAdapter, closeFn, nil
}

func newReceiptService(ctx context.Context, cfg corecfg.ReceiptsConfig, store storage.PurchaseStore, table *units.Table) (*receipt.Service, error) {
	analyzer, err := receipt.NewDocumentAIAnalyzer(ctx, receipt.DocumentAIConfig{
		ProjectID:       cfg.ProjectID,
		Location:        cfg.Location,
		ProcessorID:     cfg.ProcessorID,
		CredentialsFile: cfg.CredentialsFile,
	})
	if err != nil {
		return nil, err
	}

	return receipt.NewService(analyzer, store, table, receipt.Options{
		CacheTTL:      cfg.CacheTTLDuration(),
		Concurrency:   cfg.Concurrency,
		Timeout:       cfg.TimeoutDuration(),
		MaxImages:     cfg.MaxImages,
		MaxImageBytes: cfg.MaxImageBytes(),
	}), nil
}

func printToken(w io.Writer, a *auth.Authenticator, userID string) error {
	token, err := a.Issue(userID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
