package app

import (
	"context"
	"errors"
	"strings"

	"github.com/furnistore/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("content repository unavailable")
)

type Service struct {
	repo ContentRepository
}

func NewService(repo ContentRepository) *Service {
	return &Service{
		repo: repo,
	}
}

// ListProducts fetches the full product set. Views fetch once per mount and
// filter in memory; there is no pagination.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.Fetch(ctx, ProductQuery())
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}

	q := ProductQuery(Predicate{Field: "id", Value: "$productId"})
	q.Params = map[string]string{"productId": id}
	q.Limit = 1

	products, err := s.repo.Fetch(ctx, q)
	if err != nil {
		return domain.Product{}, err
	}
	if len(products) == 0 {
		return domain.Product{}, ErrNotFound
	}
	return products[0], nil
}

func (s *Service) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrInvalidInput
	}

	q := ProductQuery(Predicate{Field: "category", Value: "$category"})
	q.Params = map[string]string{"category": category}

	return s.repo.Fetch(ctx, q)
}

// Filter narrows products by case-insensitive substring match on name and,
// when selectedCategory is non-empty, exact category match. Order-preserving.
func Filter(products []domain.Product, searchTerm, selectedCategory string) []domain.Product {
	term := strings.ToLower(searchTerm)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if selectedCategory != "" && p.Category != selectedCategory {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct category labels in first-seen order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
