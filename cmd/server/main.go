package main

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/getaroag/getaroag-api/internal/auth"
	"github.com/getaroag/getaroag-api/internal/booking"
	"github.com/getaroag/getaroag-api/internal/catalog"
	"github.com/getaroag/getaroag-api/internal/config"
	"github.com/getaroag/getaroag-api/internal/database"
	"github.com/getaroag/getaroag-api/internal/handler"
	"github.com/getaroag/getaroag-api/internal/listing"
	"github.com/getaroag/getaroag-api/internal/middleware"
	"github.com/getaroag/getaroag-api/internal/queue"
	"github.com/getaroag/getaroag-api/internal/repository"
	"github.com/getaroag/getaroag-api/internal/router"
	"github.com/getaroag/getaroag-api/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// Key-value backend: a bolt file when a data dir is configured,
	// otherwise in-memory (submitted listings won't survive a restart).
	var kv storage.Store
	if cfg.DataDir != "" {
		bs, err := storage.OpenBolt(filepath.Join(cfg.DataDir, "getaroag.db"))
		if err != nil {
			log.Fatalf("open storage: %v", err)
		}
		defer bs.Close()
		kv = bs
	} else {
		log.Printf("DATA_DIR not set, using in-memory storage")
		kv = storage.NewMemoryStore()
	}

	store := catalog.NewStore(kv)
	query := catalog.NewQuery(store, cfg.SearchDelay, cfg.LookupDelay)
	listings := listing.NewService(store)
	requests := booking.NewBook()
	sessions := auth.NewSessionStore(kv)

	// Credential verification is pluggable: MySQL-backed when a host is
	// configured, otherwise the demo mock. Nothing downstream depends
	// on which one is active.
	var verifier auth.Verifier = auth.NewMockVerifier(cfg.LoginDelay, cfg.VerificationCode)
	var tokens auth.TokenStore = auth.NewMemoryTokenStore()
	if cfg.DBHost != "" {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Printf("mysql unavailable, falling back to mock verifier: %v", err)
		} else {
			verifier = auth.NewDBVerifier(repository.NewAccountRepo(db), cfg.BcryptCost, cfg.VerificationCode)
			tokens = auth.NewDBTokenStore(repository.NewTokenRepo(db))
		}
	}

	e := echo.New()

	// Redis-backed rate limiting and response caching; both no-ops when
	// Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(query))
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, verifier, tokens, sessions), cfg.JWTSecret)
	router.RegisterProtected(e,
		handler.NewListingHandler(listings, sessions),
		handler.NewProfileHandler(store, query, requests, sessions),
		cfg.JWTSecret)

	// Background consumer recording published listings; reconnects on
	// its own and never takes the server down.
	go func() {
		if err := queue.StartListingConsumer(); err != nil {
			log.Printf("listing consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
