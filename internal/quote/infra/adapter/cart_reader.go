package adapter

import (
	"context"

	cartapp "github.com/furnistore/storefront/internal/cart/app"
	quoteapp "github.com/furnistore/storefront/internal/quote/app"
	quotedomain "github.com/furnistore/storefront/internal/quote/domain"
)

type CartStoreReader struct {
	store *cartapp.Store
}

func NewCartStoreReader(store *cartapp.Store) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) Lines(_ context.Context) ([]quoteapp.CartLine, error) {
	items := r.store.Items()

	lines := make([]quoteapp.CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, quoteapp.CartLine{
			ProductID: it.ProductID,
			Size:      it.Size,
			Quantity:  int64(it.Quantity),
			SnapshotPrice: quotedomain.Money{
				Currency: it.Price.Currency,
				Amount:   it.Price.Amount,
			},
		})
	}
	return lines, nil
}
