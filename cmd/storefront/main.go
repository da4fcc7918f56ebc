package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	cartapp "github.com/furnistore/storefront/internal/cart/app"
	"github.com/furnistore/storefront/internal/cart/infra/kvslot"
	catalogapp "github.com/furnistore/storefront/internal/catalog/app"
	"github.com/furnistore/storefront/internal/catalog/infra/contentapi"
	"github.com/furnistore/storefront/internal/catalog/infra/gormstore"
	"github.com/furnistore/storefront/internal/catalog/infra/imagecdn"
	"github.com/furnistore/storefront/internal/catalog/infra/pgstore"
	quoteapp "github.com/furnistore/storefront/internal/quote/app"
	quoteadapter "github.com/furnistore/storefront/internal/quote/infra/adapter"
	"github.com/furnistore/storefront/internal/web"
	"github.com/furnistore/storefront/pkg/config"
	"github.com/furnistore/storefront/pkg/logger"
	"github.com/furnistore/storefront/pkg/redisconn"
	"github.com/furnistore/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	contentRepo := mustContentRepo(ctx, cfg, log)
	catalogSvc := catalogapp.NewService(contentRepo)

	images := imagecdn.NewResolver(cfg.ImageCDNBase, cfg.ContentProject, cfg.ContentDataset)

	cartStore := cartapp.NewStore(cartSlot(ctx, cfg, log), log)
	cartStore.Load(ctx)

	quoteSvc := quoteapp.NewService(
		quoteadapter.NewCartStoreReader(cartStore),
		quoteadapter.NewCatalogServiceReader(catalogSvc),
		10,
	)

	server := web.NewServer(catalogSvc, cartStore, quoteSvc, images, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	go func() {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.Start(addr); err != nil {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := server.Shutdown(stopCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}
	log.Info("bye")
}

func mustContentRepo(ctx context.Context, cfg config.Config, log *slog.Logger) catalogapp.ContentRepository {
	switch cfg.ContentBackend {
	case "api":
		return contentapi.NewClient(contentapi.Config{
			BaseURL:   cfg.ContentAPIURL,
			ProjectID: cfg.ContentProject,
			Dataset:   cfg.ContentDataset,
		}, nil)
	case "postgres":
		repo, err := pgstore.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres content store open failed", slog.Any("err", err))
			os.Exit(1)
		}
		return repo
	case "sqlite":
		repo, err := gormstore.Open(cfg.SQLitePath)
		if err != nil {
			log.Error("sqlite content store open failed", slog.Any("err", err))
			os.Exit(1)
		}
		return repo
	default:
		log.Error("unknown content backend", slog.String("backend", cfg.ContentBackend))
		os.Exit(1)
		return nil
	}
}

// cartSlot picks the cart persistence slot. When the configured durable store
// is unreachable the cart falls back to memory-only operation for the session
// rather than failing startup.
func cartSlot(ctx context.Context, cfg config.Config, log *slog.Logger) cartapp.Slot {
	switch cfg.CartBackend {
	case "redis":
		client, err := redisconn.Open(ctx, cfg.RedisAddr)
		if err != nil {
			log.Warn("redis unavailable, cart is memory-only this session", slog.Any("err", err))
			return kvslot.NewMemorySlot()
		}
		return kvslot.NewRedisSlot(client, "storefront:")
	case "file":
		slot, err := kvslot.NewFileSlot(cfg.CartStateDir)
		if err != nil {
			log.Warn("cart state dir unavailable, cart is memory-only this session", slog.Any("err", err))
			return kvslot.NewMemorySlot()
		}
		return slot
	default:
		return kvslot.NewMemorySlot()
	}
}
