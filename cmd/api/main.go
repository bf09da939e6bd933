package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"solar-optimizer/internal/api"
	"solar-optimizer/internal/config"
	"solar-optimizer/internal/data"
	"solar-optimizer/internal/pipeline"
	"solar-optimizer/internal/store"
	"solar-optimizer/pkg/logger"
)

func main() {
	cfg := config.LoadServer()
	log := logger.NewWithWriter(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var cache data.Cache
	if cfg.WeatherCache.Enabled {
		if cfg.Redis.Addr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()
			if err := rdb.Ping(ctx).Err(); err != nil {
				log.Warn("redis unreachable; cache lookups will miss", "addr", cfg.Redis.Addr, "error", err)
			}
			cache = data.NewRedisCache(rdb, cfg.WeatherCache.TTL, log)
			log.Info("weather cache: redis", "addr", cfg.Redis.Addr, "ttl", cfg.WeatherCache.TTL)
		} else {
			mem := data.NewResponseCache(cfg.WeatherCache.TTL, 5*time.Minute)
			defer mem.Close()
			cache = mem
			log.Info("weather cache: memory", "ttl", cfg.WeatherCache.TTL)
		}
	}

	var st store.Store = store.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres unavailable", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		if err := pg.Migrate(ctx); err != nil {
			log.Error("postgres migration failed", "error", err)
			os.Exit(1)
		}
		st = pg
		log.Info("analysis store: postgres")
	} else {
		log.Info("analysis store: memory")
	}

	client := data.NewClient(cfg.OpenMeteoBaseURL, cache, log)
	analyzer := pipeline.New(client, cfg.SimWorkers, log)

	router := api.NewRouter(api.Deps{
		Analyzer:  analyzer,
		Store:     st,
		SitesFile: cfg.SitesFile,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("starting API server", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
	log.Info("server stopped")
}
