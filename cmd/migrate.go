package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"portfolio-cms/config"
	"portfolio-cms/database"
	"portfolio-cms/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations, or roll back the last one with --down",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		log := logger.New(cfg.Log)

		db, err := database.Open(&cfg.Database, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if down, _ := cmd.Flags().GetBool("down"); down {
			return db.MigrateDown()
		}
		return db.RunMigrations()
	},
}

func init() {
	migrateCmd.Flags().Bool("down", false, "roll back the last migration")
}
