package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vncsmyrnk/barvote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/barvote/internal/config"
	"github.com/vncsmyrnk/barvote/internal/core/domain"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
	"github.com/vncsmyrnk/barvote/internal/core/services"
	"github.com/vncsmyrnk/barvote/internal/logger"
)

// tally prints the vote board for today (per the database clock) or for -date as JSON.
func main() {
	var date, logLevel string
	flag.StringVar(&date, "date", "", "Day to tally as YYYY-MM-DD (default: today per the database)")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level")
	flag.Parse()

	log, err := logger.New(config.Log{Level: logLevel})
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer log.Sync()

	if err := run(date, log); err != nil {
		log.Error("tally failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(date string, log *zap.Logger) error {
	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, dbCfg.DSN(), postgres.PoolOptions{MaxOpenConns: 2})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer db.Close()

	var clock ports.Clock = postgres.NewDatabaseClock(db)
	if date != "" {
		day, err := domain.ParseDate(date)
		if err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
		clock = services.FixedClock{Day: day}
	}

	day, err := clock.Today(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve day: %w", err)
	}

	tally, err := services.NewVoteService(services.FixedClock{Day: day}, postgres.NewVoteRepository(db)).Tally(ctx)
	if err != nil {
		return fmt.Errorf("failed to tally votes: %w", err)
	}
	log.Info("tally computed", zap.Stringer("day", day), zap.Int("bars", len(tally)))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{"date": day, "votes": tally}); err != nil {
		return fmt.Errorf("failed to write tally: %w", err)
	}
	return nil
}
