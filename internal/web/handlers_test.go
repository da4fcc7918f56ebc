package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/furnistore/storefront/internal/cart/app"
	"github.com/furnistore/storefront/internal/cart/infra/kvslot"
	catalogapp "github.com/furnistore/storefront/internal/catalog/app"
	catalogdomain "github.com/furnistore/storefront/internal/catalog/domain"
	"github.com/furnistore/storefront/internal/catalog/infra/imagecdn"
	quoteapp "github.com/furnistore/storefront/internal/quote/app"
	quoteadapter "github.com/furnistore/storefront/internal/quote/infra/adapter"
)

type fakeContent struct {
	products []catalogdomain.Product
	err      error
}

func (r *fakeContent) Fetch(_ context.Context, q catalogapp.Query) ([]catalogdomain.Product, error) {
	if r.err != nil {
		return nil, r.err
	}

	out := make([]catalogdomain.Product, 0, len(r.products))
	for _, p := range r.products {
		match := true
		for _, pred := range q.Where {
			v := pred.Resolve(q.Params)
			switch pred.Field {
			case "id":
				match = match && p.ID == v
			case "category":
				match = match && p.Category == v
			}
		}
		if match {
			out = append(out, p)
		}
	}
	return out, nil
}

func demoProducts() []catalogdomain.Product {
	usd := func(a int64) catalogdomain.Money { return catalogdomain.Money{Currency: "USD", Amount: a} }
	return []catalogdomain.Product{
		{ID: "p1", Name: "Asgaard sofa", Description: "Three seater.", ShortDescription: "Three seater.",
			Price: usd(149900), ImageRef: "image-asgaard-1200x1200-png", Sizes: []string{"L", "XL"}, Category: "Sofa"},
		{ID: "p2", Name: "Rocket single seater", Price: usd(29900), Category: "Chair"},
		{ID: "p3", Name: "Sjovik bed", Price: usd(189900), Category: "Bed"},
	}
}

func newTestServer(content catalogapp.ContentRepository) *Server {
	catalogSvc := catalogapp.NewService(content)
	cartStore := cartapp.NewStore(kvslot.NewMemorySlot(), nil)
	cartStore.Load(context.Background())

	quoteSvc := quoteapp.NewService(
		quoteadapter.NewCartStoreReader(cartStore),
		quoteadapter.NewCatalogServiceReader(catalogSvc),
		4,
	)
	images := imagecdn.NewResolver("", "proj", "ds")
	return NewServer(catalogSvc, cartStore, quoteSvc, images, nil)
}

func doJSON(t *testing.T, s *Server, method, target string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestListProducts(t *testing.T) {
	s := newTestServer(&fakeContent{products: demoProducts()})

	resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ProductListResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Products, 3)
	assert.Equal(t, "https://cdn.sanity.io/images/proj/ds/asgaard-1200x1200.png", body.Products[0].ImageURL)
	assert.Empty(t, body.Products[0].Sizes, "listing omits detail fields")
}

func TestListProductsFiltered(t *testing.T) {
	s := newTestServer(&fakeContent{products: demoProducts()})

	t.Run("search term", func(t *testing.T) {
		resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/products?search=sofa", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body ProductListResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Len(t, body.Products, 1)
		assert.Equal(t, "p1", body.Products[0].ID)
	})

	t.Run("no match is empty, not an error", func(t *testing.T) {
		resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/products?search=zzzz", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body ProductListResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Empty(t, body.Products)
	})

	t.Run("category", func(t *testing.T) {
		resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/products?category=Chair", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body ProductListResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		require.Len(t, body.Products, 1)
		assert.Equal(t, "p2", body.Products[0].ID)
	})
}

func TestListProductsUpstreamFailure(t *testing.T) {
	s := newTestServer(&fakeContent{err: catalogapp.ErrUnavailable})

	resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "UPSTREAM_ERROR", body.Error)
	assert.Equal(t, "failed to fetch products", body.Message)
}

func TestGetProduct(t *testing.T) {
	s := newTestServer(&fakeContent{products: demoProducts()})

	t.Run("found", func(t *testing.T) {
		resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/products/p1", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body ProductResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "Asgaard sofa", body.Name)
		assert.Equal(t, []string{"L", "XL"}, body.Sizes)
		assert.Equal(t, "Three seater.", body.Description)
	})

	t.Run("not found", func(t *testing.T) {
		resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/products/missing", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "NOT_FOUND", body.Error)
	})
}

func TestCategories(t *testing.T) {
	s := newTestServer(&fakeContent{products: demoProducts()})

	resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body CategoriesResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, []string{"Sofa", "Chair", "Bed"}, body.Categories)
}

func TestCartFlow(t *testing.T) {
	s := newTestServer(&fakeContent{products: demoProducts()})

	// Empty cart.
	resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/cart/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cart CartResponse
	require.NoError(t, json.Unmarshal(raw, &cart))
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Total.Amount)

	// Add twice with the same size: one merged line, cart_open set.
	resp, raw = doJSON(t, s, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: "p1", Size: "L"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &cart))
	assert.True(t, cart.CartOpen)

	resp, raw = doJSON(t, s, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: "p1", Quantity: 2, Size: "L"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int32(3), cart.Items[0].Quantity)
	assert.Equal(t, int64(3*149900), cart.Total.Amount)

	// Different product.
	resp, raw = doJSON(t, s, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: "p2"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &cart))
	require.Len(t, cart.Items, 2)

	// Quote re-prices the whole cart.
	resp, raw = doJSON(t, s, http.MethodGet, "/api/v1/quote", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quote QuoteResponse
	require.NoError(t, json.Unmarshal(raw, &quote))
	require.Len(t, quote.Lines, 2)
	assert.Equal(t, int64(3*149900+29900), quote.Total.Amount)

	// Remove drops all lines for the product.
	resp, raw = doJSON(t, s, http.MethodDelete, "/api/v1/cart/items/p1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cart = CartResponse{}
	require.NoError(t, json.Unmarshal(raw, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
	assert.False(t, cart.CartOpen)

	// Total endpoint.
	resp, raw = doJSON(t, s, http.MethodGet, "/api/v1/cart/total", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var total MoneyResponse
	require.NoError(t, json.Unmarshal(raw, &total))
	assert.Equal(t, int64(29900), total.Amount)

	// Clear.
	resp, raw = doJSON(t, s, http.MethodDelete, "/api/v1/cart/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &cart))
	assert.Empty(t, cart.Items)
}

func TestAddUnknownProduct(t *testing.T) {
	s := newTestServer(&fakeContent{products: demoProducts()})

	resp, raw := doJSON(t, s, http.MethodPost, "/api/v1/cart/items", AddItemRequest{ProductID: "missing"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "NOT_FOUND", body.Error)
}

func TestQuoteEmptyCart(t *testing.T) {
	s := newTestServer(&fakeContent{products: demoProducts()})

	resp, raw := doJSON(t, s, http.MethodGet, "/api/v1/quote", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "EMPTY_CART", body.Error)
}
