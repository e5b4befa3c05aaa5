package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vncsmyrnk/barvote/internal/adapters/handler/http"
	"github.com/vncsmyrnk/barvote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/barvote/internal/adapters/security"
	"github.com/vncsmyrnk/barvote/internal/config"
	"github.com/vncsmyrnk/barvote/internal/core/ports"
	"github.com/vncsmyrnk/barvote/internal/core/services"
	"github.com/vncsmyrnk/barvote/internal/logger"
)

func main() {
	cfg, foundDotenv, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer log.Sync()

	if !foundDotenv {
		log.Debug("no .env file found, using process environment")
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgres.Open(connectCtx, cfg.DSN(), postgres.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := postgres.Migrate(connectCtx, db); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	var clock ports.Clock
	switch cfg.DaySource {
	case config.DaySourceLocal:
		clock = services.NewLocalClock(cfg.Location(), time.Now)
	default:
		clock = postgres.NewDatabaseClock(db)
	}

	userRepo := postgres.NewUserRepository(db)
	barRepo := postgres.NewBarRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	visitRepo := postgres.NewVisitRepository(db)

	jwtManager := security.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	authService := services.NewAuthService(userRepo, security.NewBcryptHasher(0), jwtManager)

	handler := http.NewHandler(http.Handlers{
		Auth:  http.NewAuthHandler(authService, cfg.JWTTTL, log),
		User:  http.NewUserHandler(services.NewUserService(userRepo), log),
		Bar:   http.NewBarHandler(services.NewBarService(clock, barRepo), log),
		Vote:  http.NewVoteHandler(services.NewVoteService(clock, voteRepo), log),
		Visit: http.NewVisitHandler(services.NewVisitService(visitRepo), log),
	}, http.RouterOptions{
		AllowedOrigins:    cfg.AllowedOrigins(),
		AuthRatePerMinute: cfg.AuthRatePerMinute,
		RequestTimeout:    cfg.RequestTimeout,
		Tokens:            jwtManager,
		Logger:            log,
	})

	server := &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.HTTPAddr), zap.String("day_source", cfg.DaySource))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
