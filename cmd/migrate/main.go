package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"business-catalog-api/internal/config"
	"business-catalog-api/internal/database"
)

func main() {
	var (
		dbPath  = flag.String("db", config.GetEnv("SNAPSHOT_DB_PATH", "./data/catalog.db"), "Snapshot database file path")
		action  = flag.String("action", "up", "Migration action: up, down, status, validate")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.WithFields(logrus.Fields{
		"db_path": *dbPath,
		"action":  *action,
	}).Info("Starting migration tool")

	cfg := database.DefaultConnectionConfig()
	cfg.DatabasePath = *dbPath
	cfg.AutoMigrate = false
	cfg.Logger = logger

	cm := database.NewConnectionManager(cfg)
	if err := cm.Connect(); err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer cm.Close()

	if err := run(cm.GetMigrationManager(), *action); err != nil {
		logger.WithError(err).WithField("action", *action).Fatal("Migration failed")
	}

	logger.Info("Migration tool completed successfully")
}

func run(mm *database.MigrationManager, action string) error {
	switch action {
	case "up":
		return mm.RunMigrations()
	case "down":
		return mm.RollbackMigration()
	case "status":
		status, err := mm.GetMigrationStatus()
		if err != nil {
			return err
		}
		fmt.Printf("Migration Status:\n")
		fmt.Printf("  Version: %d\n", status.Version)
		fmt.Printf("  Applied: %t\n", status.Applied)
		fmt.Printf("  Dirty: %t\n", status.Dirty)
		return nil
	case "validate":
		if err := mm.ValidateSchema(); err != nil {
			return fmt.Errorf("schema validation failed: %w", err)
		}
		fmt.Println("Schema validation passed successfully")
		return nil
	default:
		return fmt.Errorf("unknown action %q, use: up, down, status, validate", action)
	}
}
