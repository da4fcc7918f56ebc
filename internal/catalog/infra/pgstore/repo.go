// Package pgstore is a Postgres-backed content repository.
package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furnistore/storefront/internal/catalog/app"
	"github.com/furnistore/storefront/internal/catalog/domain"
)

type Repo struct {
	pool *pgxpool.Pool
}

func Open(ctx context.Context, dsn string) (*Repo, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres content store: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", app.ErrUnavailable, err)
	}
	return &Repo{pool: pool}, nil
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Close() {
	r.pool.Close()
}

func (r *Repo) Fetch(ctx context.Context, q app.Query) ([]domain.Product, error) {
	if q.Type != "product" {
		return nil, fmt.Errorf("%w: unsupported record type %q", app.ErrInvalidInput, q.Type)
	}

	sql := `SELECT id, name, description, price_amount, currency, image_ref, sizes, colors, category
FROM products`
	var args []any
	for i, pred := range q.Where {
		col, ok := columnFor(pred.Field)
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", app.ErrInvalidInput, pred.Field)
		}
		if i == 0 {
			sql += " WHERE "
		} else {
			sql += " AND "
		}
		args = append(args, pred.Resolve(q.Params))
		sql += fmt.Sprintf("%s = $%d", col, len(args))
	}
	sql += " ORDER BY id"
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrUnavailable, err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var (
			p      domain.Product
			sizes  []string
			colors []string
		)
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price.Amount, &p.Price.Currency,
			&p.ImageRef, &sizes, &colors, &p.Category)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		p.Sizes = sizes
		p.Colors = colors
		p.ShortDescription = app.ShortDescription(p.Description)

		if err := app.ValidateRecord(p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrUnavailable, err)
	}
	return out, nil
}

func columnFor(field string) (string, bool) {
	switch field {
	case "id":
		return "id", true
	case "name":
		return "name", true
	case "category":
		return "category", true
	default:
		return "", false
	}
}
