package app

import (
	"context"

	"github.com/furnistore/storefront/internal/catalog/domain"
)

// Predicate is an equality constraint on a record field. Value may reference
// a named parameter as "$name"; adapters substitute it from Query.Params.
type Predicate struct {
	Field string
	Value string
}

// Query is the structured filter sent to a content repository. The core
// treats the repository as an opaque read: no retry, no caching.
type Query struct {
	Type   string
	Where  []Predicate
	Params map[string]string
	Limit  int
}

// ProductQuery builds a query for product records.
func ProductQuery(where ...Predicate) Query {
	return Query{Type: "product", Where: where}
}

// Resolve returns the predicate value with parameter references substituted.
func (p Predicate) Resolve(params map[string]string) string {
	if len(p.Value) > 1 && p.Value[0] == '$' {
		if v, ok := params[p.Value[1:]]; ok {
			return v
		}
	}
	return p.Value
}

type ContentRepository interface {
	Fetch(ctx context.Context, q Query) ([]domain.Product, error)
}

type ImageResolver interface {
	Resolve(ref string) (string, error)
}
