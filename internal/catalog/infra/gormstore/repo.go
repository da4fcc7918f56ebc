// Package gormstore is a self-hosted content repository backed by SQLite,
// for running the storefront without a hosted content API.
package gormstore

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/furnistore/storefront/internal/catalog/app"
	"github.com/furnistore/storefront/internal/catalog/domain"
)

// productRow is the storage shape. Sizes and colors are comma-joined; none of
// the catalog labels contain commas.
type productRow struct {
	ID          string `gorm:"primarykey;size:64"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"size:2000"`
	PriceAmount int64  `gorm:"not null"`
	Currency    string `gorm:"size:8;not null"`
	ImageRef    string `gorm:"size:200"`
	Sizes       string `gorm:"size:200"`
	Colors      string `gorm:"size:200"`
	Category    string `gorm:"size:100;index"`
}

func (productRow) TableName() string {
	return "products"
}

type Repo struct {
	db *gorm.DB
}

func Open(path string) (*Repo, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite content store: %w", err)
	}
	if err := db.AutoMigrate(&productRow{}); err != nil {
		return nil, fmt.Errorf("migrate content store: %w", err)
	}
	return &Repo{db: db}, nil
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Fetch(ctx context.Context, q app.Query) ([]domain.Product, error) {
	if q.Type != "product" {
		return nil, fmt.Errorf("%w: unsupported record type %q", app.ErrInvalidInput, q.Type)
	}

	tx := r.db.WithContext(ctx).Model(&productRow{})
	for _, pred := range q.Where {
		col, ok := columnFor(pred.Field)
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", app.ErrInvalidInput, pred.Field)
		}
		tx = tx.Where(col+" = ?", pred.Resolve(q.Params))
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []productRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrUnavailable, err)
	}

	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Save upserts products, used by the seed command.
func (r *Repo) Save(ctx context.Context, products ...domain.Product) error {
	for _, p := range products {
		if err := app.ValidateRecord(p); err != nil {
			return err
		}
		row := productRow{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			PriceAmount: p.Price.Amount,
			Currency:    p.Price.Currency,
			ImageRef:    p.ImageRef,
			Sizes:       strings.Join(p.Sizes, ","),
			Colors:      strings.Join(p.Colors, ","),
			Category:    p.Category,
		}
		if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
			return fmt.Errorf("save product %s: %w", p.ID, err)
		}
	}
	return nil
}

func (row productRow) toDomain() (domain.Product, error) {
	p := domain.Product{
		ID:               row.ID,
		Name:             row.Name,
		Description:      row.Description,
		ShortDescription: app.ShortDescription(row.Description),
		Price: domain.Money{
			Currency: row.Currency,
			Amount:   row.PriceAmount,
		},
		ImageRef: row.ImageRef,
		Sizes:    splitLabels(row.Sizes),
		Colors:   splitLabels(row.Colors),
		Category: row.Category,
	}
	if err := app.ValidateRecord(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
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

func splitLabels(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
