package main

import (
	"database/sql"
	"log"
	"os"

	clientdb "essay-assess/database"
	"essay-assess/internal/config"
	"essay-assess/internal/database"
	"essay-assess/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, "database/migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

// connect picks the Oracle driver. The pure-Go go-ora path is the
// default; DB_DRIVER=godror switches to the client-library driver for
// deployments that have the Oracle instant client installed.
func connect(cfg *config.Config) (*sql.DB, error) {
	if os.Getenv("DB_DRIVER") == "godror" {
		db, err := clientdb.InitDB()
		if err != nil {
			return nil, err
		}
		return db.DB, nil
	}
	return database.NewMigrateOracleDB(cfg.GetDSN())
}
