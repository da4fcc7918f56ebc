package adapter

import (
	"context"

	catalogapp "github.com/furnistore/storefront/internal/catalog/app"
	quoteapp "github.com/furnistore/storefront/internal/quote/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (quoteapp.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if err != nil {
		return quoteapp.Product{}, err
	}

	return quoteapp.Product{
		ID:       p.ID,
		Name:     p.Name,
		Currency: p.Price.Currency,
		Amount:   p.Price.Amount,
	}, nil
}
