package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/apperrors"
	"github.com/MK-1512/gadget-galaxy/catalog"
	"github.com/MK-1512/gadget-galaxy/config"
	"github.com/MK-1512/gadget-galaxy/logger"
	"github.com/MK-1512/gadget-galaxy/routes"
	"github.com/MK-1512/gadget-galaxy/services"
	"github.com/MK-1512/gadget-galaxy/storage"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()
	log := logger.Log

	store, err := newStore(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize store", zap.Error(err))
	}

	deps := routes.Deps{
		Cart:     services.NewCartService(store, log),
		Wishlist: services.NewWishlistService(store, log),
		Compare:  services.NewCompareService(store, log),
		Auth:     services.NewAuthService(store, log),
		Tokens:   services.NewTokenService(cfg.JWTSecret, cfg.SessionTTL),
		Catalog:  services.NewCatalogService(catalog.Products(), cfg.CatalogDelay, log),
		Filters:  services.NewFilterService(store, log),
	}
	deps.Checkout = services.NewCheckoutService(deps.Cart, deps.Auth, store, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(apperrors.ErrorMiddleware())

	routes.Register(router, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("storefront is running",
			zap.String("port", cfg.Port),
			zap.String("store", cfg.StoreBackend),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", zap.Error(err))
	}
	log.Info("server shutdown complete")
}

func newStore(cfg config.Config, log *zap.Logger) (storage.Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "redis":
		client, err := storage.NewRedisClient(context.Background(), cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		log.Info("connected to redis")
		return storage.NewRedisStore(client), nil
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}
