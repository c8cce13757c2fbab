// Command api is the entry point for the artmarket HTTP server. No business
// logic lives here; all wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/aquarelle/artmarket/internal/api"
	"github.com/aquarelle/artmarket/internal/core/ports"
	"github.com/aquarelle/artmarket/internal/core/service"
	"github.com/aquarelle/artmarket/internal/infrastructure/config"
	"github.com/aquarelle/artmarket/internal/infrastructure/db/memory"
	"github.com/aquarelle/artmarket/internal/infrastructure/db/mongo"
	"github.com/aquarelle/artmarket/internal/infrastructure/db/redis"
	"github.com/aquarelle/artmarket/pkg/logger"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// --- Stores ---
	var (
		catalogRepo  ports.CatalogRepository
		userRepo     ports.UserRepository
		sessionStore ports.SessionStore
		mongoDB      *gomongo.Database
		redisClient  *goredis.Client
	)

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := mongo.Connect(startupCtx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			logg.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		mongoDB = db

		catalog := mongo.NewCatalogRepository(db)
		users := mongo.NewUserRepository(db)
		if err := catalog.EnsureIndexes(startupCtx); err != nil {
			logg.Fatal().Err(err).Msg("failed to create artwork indexes")
		}
		if err := users.EnsureIndexes(startupCtx); err != nil {
			logg.Fatal().Err(err).Msg("failed to create user indexes")
		}
		catalogRepo, userRepo = catalog, users

		rdb, err := redis.Connect(startupCtx, redis.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			logg.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() { _ = rdb.Close() }()
		redisClient = rdb
		sessionStore = redis.NewSessionStore(rdb)

	default: // config.DriverMemory
		store := memory.NewStore()
		if cfg.SeedData {
			store.Seed()
			logg.Info().Msg("in-memory store seeded with sample catalog")
		}
		catalogRepo, userRepo = store, store
		sessionStore = memory.NewSessionStore()
	}

	// --- Services ---
	catalogService := service.NewCatalogService(catalogRepo, userRepo, logg)
	sessionService := service.NewSessionService(userRepo, sessionStore, cfg.JWTSecret, tokenTTL, logg)

	// Restore the durable session slot before serving traffic.
	sessionService.Restore(startupCtx)

	// --- HTTP server ---
	e := api.NewRouter(catalogService, sessionService, mongoDB, redisClient, cfg.JWTSecret, logg)

	go func() {
		addr := ":" + cfg.Port
		logg.Info().Str("addr", addr).Str("store", cfg.StoreDriver).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
	logg.Info().Msg("server stopped")
}
