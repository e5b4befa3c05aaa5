package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/vncsmyrnk/barvote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/barvote/internal/config"
)

// Usage: migrations <name>|all
// <name> matches one embedded file, e.g. "create_votes.up" or "000003_create_votes.down".
func main() {
	if len(os.Args) < 2 {
		log.Fatal("a migration name (or \"all\") is required.")
	}
	migrationName := os.Args[1]

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, dbCfg.DSN(), postgres.PoolOptions{MaxOpenConns: 1})
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if migrationName == "all" {
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Fatal(err)
		}
		log.Println("All up migrations executed successfully.")
		return
	}

	applied, err := postgres.ApplyMigration(ctx, db, migrationName)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Migration file %s executed successfully.", applied)
}
