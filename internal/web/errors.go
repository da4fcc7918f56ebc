package web

import (
	"errors"
	"net/http"

	cartapp "github.com/furnistore/storefront/internal/cart/app"
	catalogapp "github.com/furnistore/storefront/internal/catalog/app"
	quoteapp "github.com/furnistore/storefront/internal/quote/app"
)

// httpStatusFromErr maps application errors onto HTTP status and a stable
// error code. Upstream fetch failures are surfaced as-is with no retry and
// no partial data.
func httpStatusFromErr(err error) (int, string, string) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput), errors.Is(err, cartapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "product not found"
	case errors.Is(err, quoteapp.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART", "cart is empty"
	case errors.Is(err, catalogapp.ErrUnavailable):
		return http.StatusBadGateway, "UPSTREAM_ERROR", "failed to fetch products"
	case errors.Is(err, catalogapp.ErrBadRecord):
		return http.StatusBadGateway, "UPSTREAM_ERROR", "failed to fetch products"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}
