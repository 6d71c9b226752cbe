package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamtrack/tracker/internal/config"
	"github.com/teamtrack/tracker/internal/handler"
	"github.com/teamtrack/tracker/internal/repository/sqlite"
	"github.com/teamtrack/tracker/internal/service"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Team project and problem tracker",
	Long:  "Tracker coordinates claims on shared problems, enforces the status lifecycle, and serves a points leaderboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		slog.Info("database migrations applied", "path", cfg.DatabasePath)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default categories (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		categories := service.NewCategoryService(db.Categories())
		if err := categories.SeedDefaults(cmd.Context()); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		slog.Info("default categories seeded")
		return nil
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the current leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		scores := service.NewScoreService(db.Scores())
		entries, err := scores.Rankings(cmd.Context())
		if err != nil {
			return fmt.Errorf("compute rankings: %w", err)
		}

		for _, e := range entries {
			fmt.Printf("%3d. %-24s %6d\n", e.Rank, e.Username, e.Points)
		}
		return nil
	},
}

func serve() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied")

	users := db.Users()
	problems := db.Problems()
	projects := db.Projects()

	svc := handler.Services{
		Auth:       service.NewAuthService(users, cfg.JWTSecret, cfg.BcryptCost),
		Claims:     service.NewClaimService(problems, users),
		Lifecycle:  service.NewLifecycleService(problems, projects),
		Scores:     service.NewScoreService(db.Scores()),
		Problems:   service.NewProblemService(problems, projects, db.Categories()),
		Projects:   service.NewProjectService(projects, users),
		Categories: service.NewCategoryService(db.Categories()),
		Users:      users,
	}

	// Seed default categories (idempotent).
	if err := svc.Categories.SeedDefaults(context.Background()); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	slog.Info("default categories seeded")

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, svc, cfg.CookieSecure)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	report := service.NewReportService(db.Scores(), problems, time.Duration(cfg.StaleClaimAfter))
	if err := report.Start(time.Duration(cfg.ReportInterval)); err != nil {
		return fmt.Errorf("start report scheduler: %w", err)
	}
	defer report.Stop()

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, leaderboardCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
