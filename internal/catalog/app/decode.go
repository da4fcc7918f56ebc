package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/furnistore/storefront/internal/catalog/domain"
)

// ErrBadRecord marks content records that fail boundary validation. Adapters
// check every decoded record so the rest of the core never sees a product
// with missing identity or a negative price.
var ErrBadRecord = errors.New("malformed content record")

func ValidateRecord(p domain.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrBadRecord)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product %s has no name", ErrBadRecord, p.ID)
	}
	if p.Price.Amount < 0 {
		return fmt.Errorf("%w: product %s has negative price", ErrBadRecord, p.ID)
	}
	return nil
}

// ShortDescription truncates a description to the listing length the way the
// listing query projects it.
func ShortDescription(desc string) string {
	const max = 100
	r := []rune(desc)
	if len(r) <= max {
		return desc
	}
	return string(r[:max])
}
