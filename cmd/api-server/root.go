package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"homeservices/db"
	"homeservices/internal/config"
	"homeservices/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "homeservices",
	Short:         "Home services catalog, lead capture and content API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
}

// setup loads the configuration, initializes logging and connects to
// Postgres. Every subcommand needs all three.
func setup(ctx context.Context) (config.Config, *sqlx.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, err
	}
	logger.Init(cfg.IsDevelopment(), cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	conn, err := db.Connect(ctx, cfg.Database.DSN, db.PoolOptions{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return cfg, nil, fmt.Errorf("cannot connect to DB: %w", err)
	}
	return cfg, conn, nil
}
