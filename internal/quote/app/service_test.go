package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnistore/storefront/internal/quote/domain"
)

type fakeCart struct {
	lines []CartLine
	err   error
}

func (f fakeCart) Lines(context.Context) ([]CartLine, error) {
	return f.lines, f.err
}

type fakeCatalog struct {
	products map[string]Product
}

func (f fakeCatalog) GetProduct(_ context.Context, id string) (Product, error) {
	p, ok := f.products[id]
	if !ok {
		return Product{}, errors.New("not found")
	}
	return p, nil
}

func TestQuoteRepricesCart(t *testing.T) {
	cart := fakeCart{lines: []CartLine{
		{ProductID: "p1", Size: "L", Quantity: 2, SnapshotPrice: domain.Money{Currency: "USD", Amount: 900}},
		{ProductID: "p2", Quantity: 1, SnapshotPrice: domain.Money{Currency: "USD", Amount: 500}},
	}}
	catalog := fakeCatalog{products: map[string]Product{
		"p1": {ID: "p1", Name: "Chair", Currency: "USD", Amount: 1000},
		"p2": {ID: "p2", Name: "Sofa", Currency: "USD", Amount: 500},
	}}

	svc := NewService(cart, catalog, 4)
	q, err := svc.Quote(context.Background())
	require.NoError(t, err)

	require.Len(t, q.Lines, 2)
	assert.Equal(t, int64(2000), q.Lines[0].LineTotal.Amount, "line total uses the current price")
	assert.Equal(t, int64(900), q.Lines[0].SnapshotPrice.Amount, "snapshot price carried through")
	assert.Equal(t, "L", q.Lines[0].Size)
	assert.Equal(t, int64(2500), q.Total.Amount)
	assert.Equal(t, "USD", q.Total.Currency)
}

func TestQuoteEmptyCart(t *testing.T) {
	svc := NewService(fakeCart{}, fakeCatalog{}, 0)

	_, err := svc.Quote(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestQuoteMissingProductFails(t *testing.T) {
	cart := fakeCart{lines: []CartLine{{ProductID: "gone", Quantity: 1}}}
	svc := NewService(cart, fakeCatalog{products: map[string]Product{}}, 2)

	_, err := svc.Quote(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone")
}

func TestQuoteRejectsNonPositiveQuantity(t *testing.T) {
	cart := fakeCart{lines: []CartLine{{ProductID: "p1", Quantity: 0}}}
	svc := NewService(cart, fakeCatalog{products: map[string]Product{
		"p1": {ID: "p1", Name: "Chair", Currency: "USD", Amount: 1000},
	}}, 2)

	_, err := svc.Quote(context.Background())
	require.Error(t, err)
}
