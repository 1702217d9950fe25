package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"sentinance/cache"
	"sentinance/config"
	"sentinance/database"
	"sentinance/routes"
	"sentinance/scheduler"
	"sentinance/tracing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	cfg := sysConfigs.Config

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tracing.Init(cfg.Tracing); err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
	}

	var store cache.Store = cache.NewLocalStore(5*time.Minute, 10*time.Minute)
	if cfg.RedisUrl != "" {
		redisStore, err := database.InitRedis(ctx, cfg.RedisUrl)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, using in-process cache")
		} else {
			defer redisStore.Close()
			store = redisStore
		}
	}

	svcs := routes.NewServices(cfg, store)
	router := routes.SetupRouter(config.NewConfigManager(cfg), svcs)

	jobs := scheduler.NewScheduler(ctx, svcs.Movers)
	if err := jobs.RegisterWarmup(cfg.WarmupCron); err != nil {
		log.Fatal().Err(err).Msg("Invalid warm-up schedule")
	}
	jobs.Start()

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("marketProvider", cfg.MarketProvider).Str("newsProvider", cfg.NewsProvider).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jobs.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Tracer shutdown failed")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
