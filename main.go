package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/migrant-roadmap/cliparse"
	"github.com/danielhkuo/migrant-roadmap/db"
	"github.com/danielhkuo/migrant-roadmap/middleware"
	"github.com/danielhkuo/migrant-roadmap/router"
	"github.com/danielhkuo/migrant-roadmap/rules"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal
const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg cliparse.Config

	cmd := &cobra.Command{
		Use:   "fms-roadmap",
		Short: "Migrant survey and roadmap backend",
		Long: `Collects a migrant's entry survey, keeps draft and confirmed versions,
and turns the latest confirmed survey into a dated checklist of required
actions that can be downloaded as an HTML document.

Without a subcommand the HTTP server is started.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), cfg)
		},
	}

	cliparse.RegisterFlags(cmd.PersistentFlags(), &cfg)

	cmd.AddCommand(newServeCommand(&cfg))
	cmd.AddCommand(newExportCommand(&cfg))

	return cmd
}

func newServeCommand(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:           "serve",
		Short:         "Start the HTTP server (default)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *cfg)
		},
	}
}

// setupLogger installs the default logger: text on a terminal, JSON otherwise.
func setupLogger(level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// setup resolves configuration, configures logging, opens the database with
// its schema and loads the rules.
func setup(flags cliparse.Config) (cliparse.Config, *sql.DB, *rules.Engine, error) {
	cfg, err := cliparse.Resolve(flags)
	if err != nil {
		return cliparse.Config{}, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	setupLogger(cfg.SlogLevel())

	rulesCfg, err := rules.LoadConfig(cfg.RulesFile)
	if err != nil {
		return cliparse.Config{}, nil, nil, err
	}

	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return cliparse.Config{}, nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		dbConn.Close()
		return cliparse.Config{}, nil, nil, fmt.Errorf("schema creation failed: %w", err)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	return cfg, dbConn, rules.NewEngine(rulesCfg), nil
}

func runServer(ctx context.Context, flags cliparse.Config) error {
	cfg, dbConn, engine, err := setup(flags)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Create router
	mux := router.NewRouter(dbConn, engine)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		// Wait for Ctrl-C signal
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	slog.Info("Server closed")
	return nil
}
