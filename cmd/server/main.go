package main

import (
	"fmt"
	"log"

	"go-blog/pkg/config"
	"go-blog/pkg/db"
	"go-blog/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "go-blog [command]",
	Short:         "Social blogging server: posts, groups, comments and follows",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := db.Close(); err != nil {
			logger.L.Warn("Failed to close database", zap.Error(err))
		}
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default config/config.yaml)")
}

// setup loads the configuration, then the logger and the database.
func setup() error {
	var err error
	if configPath != "" {
		err = config.InitFile(configPath)
	} else {
		err = config.Init()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg := config.GlobalConfig
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.ProductionMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := db.InitDB(cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
