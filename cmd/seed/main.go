// Command seed loads the demo furniture catalog into the SQLite content store.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/furnistore/storefront/internal/catalog/domain"
	"github.com/furnistore/storefront/internal/catalog/infra/gormstore"
	"github.com/furnistore/storefront/pkg/config"
	"github.com/furnistore/storefront/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "seed", Env: cfg.AppEnv, Level: cfg.LogLevel})

	repo, err := gormstore.Open(cfg.SQLitePath)
	if err != nil {
		log.Error("open content store failed", slog.Any("err", err))
		os.Exit(1)
	}

	products := demoCatalog()
	if err := repo.Save(context.Background(), products...); err != nil {
		log.Error("seed failed", slog.Any("err", err))
		os.Exit(1)
	}

	log.Info("catalog seeded", slog.Int("products", len(products)), slog.String("path", cfg.SQLitePath))
}

func demoCatalog() []domain.Product {
	usd := func(amount int64) domain.Money {
		return domain.Money{Currency: "USD", Amount: amount}
	}

	return []domain.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Rocket single seater",
			Description: "A compact single seater with a sculpted backrest and solid oak legs, upholstered in heavy linen.",
			Price:       usd(29900),
			ImageRef:    "image-rocket-single-seater-1200x1200-png",
			Colors:      []string{"#000", "#FFD700"},
			Category:    "Chair",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Granite dining set",
			Description: "A six piece dining set with a granite-finish tabletop and matching side chairs.",
			Price:       usd(129900),
			ImageRef:    "image-granite-dining-set-1200x1200-png",
			Category:    "Table",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Outdoor sofa set",
			Description: "Weatherproof rattan sofa set with washable cushions, seats five.",
			Price:       usd(224900),
			ImageRef:    "image-outdoor-sofa-set-1200x1200-png",
			Colors:      []string{"#800080"},
			Category:    "Sofa",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Plain console with teak mirror",
			Description: "Minimal console table paired with a teak-framed wall mirror.",
			Price:       usd(75900),
			ImageRef:    "image-plain-console-teak-mirror-1200x1200-png",
			Category:    "Table",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Sjovik bed",
			Description: "Low-profile king bed with an upholstered headboard and slatted base.",
			Price:       usd(189900),
			ImageRef:    "image-sjovik-bed-1200x1200-png",
			Sizes:       []string{"Queen", "King"},
			Category:    "Bed",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Asgaard sofa",
			Description: "Three seater sofa with deep cushions and brass-capped legs.",
			Price:       usd(149900),
			ImageRef:    "image-asgaard-sofa-1200x1200-png",
			Sizes:       []string{"L", "XL", "XS"},
			Colors:      []string{"#000", "#FFD700", "#800080"},
			Category:    "Sofa",
		},
	}
}
