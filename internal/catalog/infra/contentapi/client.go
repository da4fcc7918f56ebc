// Package contentapi fetches product records from a hosted content API.
// Queries are encoded as a filter expression plus named parameters, mirroring
// the query language the content backend speaks.
package contentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/furnistore/storefront/internal/catalog/app"
	"github.com/furnistore/storefront/internal/catalog/domain"
)

type Config struct {
	BaseURL    string
	ProjectID  string
	Dataset    string
	APIVersion string
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2021-08-31"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{cfg: cfg, http: httpClient}
}

// record is the wire shape of one product document. Prices arrive as decimal
// currency units and are converted to minor units at this boundary.
type record struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Category    string   `json:"category"`
}

type queryResponse struct {
	Result []record `json:"result"`
}

func (c *Client) Fetch(ctx context.Context, q app.Query) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(q), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: query returned status %d", app.ErrUnavailable, resp.StatusCode)
	}

	var body queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}

	out := make([]domain.Product, 0, len(body.Result))
	for _, rec := range body.Result {
		p, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (rec record) toDomain() (domain.Product, error) {
	currency := rec.Currency
	if currency == "" {
		currency = "USD"
	}

	p := domain.Product{
		ID:               rec.ID,
		Name:             rec.Name,
		Description:      rec.Description,
		ShortDescription: app.ShortDescription(rec.Description),
		Price: domain.Money{
			Currency: currency,
			Amount:   int64(math.Round(rec.Price * 100)),
		},
		ImageRef: rec.Image,
		Sizes:    rec.Sizes,
		Colors:   rec.Colors,
		Category: rec.Category,
	}

	if err := app.ValidateRecord(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// queryURL renders the structured query as a filter expression, e.g.
// *[_type == "product" && category == $category], with parameters passed as
// $-prefixed JSON-encoded query string values.
func (c *Client) queryURL(q app.Query) string {
	var filter strings.Builder
	fmt.Fprintf(&filter, "*[_type == %q", q.Type)
	for _, pred := range q.Where {
		field := pred.Field
		if field == "id" {
			field = "_id"
		}
		if strings.HasPrefix(pred.Value, "$") {
			fmt.Fprintf(&filter, " && %s == %s", field, pred.Value)
		} else {
			fmt.Fprintf(&filter, " && %s == %q", field, pred.Value)
		}
	}
	filter.WriteString("]")
	if q.Limit > 0 {
		fmt.Fprintf(&filter, "[0..%d]", q.Limit-1)
	}

	vals := url.Values{}
	vals.Set("query", filter.String())
	for name, val := range q.Params {
		enc, _ := json.Marshal(val)
		vals.Set("$"+name, string(enc))
	}

	return fmt.Sprintf("%s/v%s/data/query/%s?%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.APIVersion, c.cfg.Dataset, vals.Encode())
}
