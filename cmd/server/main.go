package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chokokon/config"
	"chokokon/internal/costing"
	"chokokon/internal/handler"
	"chokokon/internal/metrics"
	"chokokon/internal/planner"
	"chokokon/internal/sales"
	"chokokon/internal/session"
	"chokokon/internal/store"
	"chokokon/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	envFile  string
	siteFile string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chokokon",
		Short: "Confectionery management dashboard",
		RunE:  runServe,
	}
	root.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the .env file")
	root.PersistentFlags().StringVar(&siteFile, "site", "config/config.toml", "path to the site info TOML file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	})

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print the overview, production plan and recipe costs as JSON",
		RunE:  runReport,
	}
	reportCmd.Flags().String("month", "", "reference month (YYYY-MM), defaults to the current month")
	root.AddCommand(reportCmd)
	return root
}

// openStore connects to the database and loads the fixtures when enabled.
func openStore(cfg config.DatabaseConfig) (*store.Store, *gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.SeedFixture {
		if err := database.Seed(db, database.FixtureData()); err != nil {
			return nil, nil, err
		}
	}
	return store.New(db), db, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg := config.LoadConfig(envFile, siteFile)
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Connect to Database and seed
	st, db, err := openStore(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// 3. Sessions and metrics
	sessions := session.NewManager(
		cfg.Session.Secret,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
		session.Credentials{Username: cfg.Session.Username, PasswordHash: cfg.Session.PasswordHash},
	)
	if cfg.Session.Secret == "" {
		log.Println("Warning: SESSION_SECRET not set, sessions will not survive a restart")
	}

	// 4. Routes
	r := handler.NewRouter(handler.Deps{
		Config:   cfg,
		Store:    st,
		Sessions: sessions,
		Metrics:  metrics.New(st.Counts),
	})

	// 5. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("run server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

type report struct {
	Overview    sales.Overview       `json:"overview"`
	Production  planner.Plan         `json:"production"`
	RecipeCosts []costing.RecipeCost `json:"recipe_costs"`
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig(envFile, siteFile)
	cfg.Database.DSN = database.MemoryDSN("report")
	cfg.Database.SeedFixture = true

	month := sales.MonthOf(time.Now())
	if raw, _ := cmd.Flags().GetString("month"); raw != "" {
		m, err := sales.ParseMonth(raw)
		if err != nil {
			return fmt.Errorf("invalid --month %q: %w", raw, err)
		}
		month = m
	}

	st, _, err := openStore(cfg.Database)
	if err != nil {
		return err
	}
	snap, err := st.Snapshot(cmd.Context())
	if err != nil {
		return err
	}
	costs, err := costing.AllRecipes(snap.Recipes, snap.Ingredients)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report{
		Overview:    sales.NewOverview(snap.Orders, snap.Products, month),
		Production:  planner.Build(snap.Orders, snap.Products),
		RecipeCosts: costs,
	})
}
