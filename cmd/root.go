package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"portfolio-cms/config"
	"portfolio-cms/database"
	"portfolio-cms/logger"
	"portfolio-cms/repositories"
	"portfolio-cms/services"
)

var rootCmd = &cobra.Command{
	Use:           "portfolio-cms",
	Short:         "Portfolio site and blog backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, sitemapCmd, migrateCmd, grantAdminCmd)
}

// Execute runs the command named on the command line. Without a subcommand
// the server starts.
func Execute() {
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app is everything a command needs after startup.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	db    *database.DB
	repos *repositories.Repositories
	svcs  *services.Services
}

// bootstrap loads .env and configuration, connects and migrates the database,
// and builds the service graph.
func bootstrap() (*app, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.New(cfg.Log)

	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	publicBaseURL := cfg.Storage.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = cfg.Site.BaseURL
	}
	repos := repositories.New(db.DB, publicBaseURL)

	return &app{
		cfg:   cfg,
		log:   log,
		db:    db,
		repos: repos,
		svcs:  services.NewServices(repos, cfg, log),
	}, nil
}
