package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/lucasmarqs/gym-checkin-api/internal/clock"
	"github.com/lucasmarqs/gym-checkin-api/internal/config"
	"github.com/lucasmarqs/gym-checkin-api/internal/database"
	"github.com/lucasmarqs/gym-checkin-api/internal/handler"
	"github.com/lucasmarqs/gym-checkin-api/internal/logger"
	"github.com/lucasmarqs/gym-checkin-api/internal/queue"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
	"github.com/lucasmarqs/gym-checkin-api/internal/router"
	"github.com/lucasmarqs/gym-checkin-api/internal/usecase"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	zl, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zlog := zl.Sugar()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		zlog.Fatalw("open database", "err", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		zlog.Fatalw("ensure schema", "err", err)
	}
	cancel()

	// Redis is optional: a nil client disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		zlog.Warn("redis unavailable; rate limiting and caching disabled")
	}

	clk := clock.System{}
	users := repository.NewUserRepo(db)
	gyms := repository.NewGymRepo(db)
	checkIns := repository.NewCheckInRepo(db)
	tokens := repository.NewTokenRepo(db)

	authHandler := handler.NewAuthHandler(cfg,
		usecase.NewRegisterUseCase(users, cfg.BcryptCost, clk),
		usecase.NewAuthenticateUseCase(users),
		usecase.NewGetUserProfileUseCase(users),
		tokens,
	)
	gymHandler := handler.NewGymHandler(
		usecase.NewCreateGymUseCase(gyms, clk),
		usecase.NewSearchGymsUseCase(gyms),
		usecase.NewFetchNearbyGymsUseCase(gyms),
	)
	checkInHandler := handler.NewCheckInHandler(
		usecase.NewCheckInUseCase(checkIns, gyms, clk, cfg.MaxDistanceKm),
		usecase.NewFetchUserCheckInsHistoryUseCase(checkIns),
		usecase.NewGetUserMetricsUseCase(checkIns),
		usecase.NewValidateCheckInUseCase(checkIns, clk),
		zlog,
	)

	// Background consumer mirrors check-in events into logs/check-in.log.
	go func() {
		if err := queue.StartCheckInConsumer(zlog); err != nil {
			zlog.Warnw("check-in consumer stopped", "err", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true

	rlCfg := config.LoadRateLimitConfig()
	cacheCfg := config.LoadCacheConfig()

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, rdb, rlCfg)
	router.RegisterGyms(e, gymHandler, cfg.JWTSecret, rdb, cacheCfg)
	router.RegisterCheckIns(e, checkInHandler, cfg.JWTSecret, rdb, rlCfg)

	addr := ":" + cfg.Port
	zlog.Infow("listening", "addr", addr, "env", cfg.Env)

	if err := e.Start(addr); err != nil {
		zlog.Fatalw("server stopped", "err", err)
	}
}
