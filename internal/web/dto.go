package web

type MoneyResponse struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type ProductResponse struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	ShortDescription string        `json:"short_description,omitempty"`
	Description      string        `json:"description,omitempty"`
	Price            MoneyResponse `json:"price"`
	ImageURL         string        `json:"image_url,omitempty"`
	Sizes            []string      `json:"sizes,omitempty"`
	Colors           []string      `json:"colors,omitempty"`
	Category         string        `json:"category,omitempty"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type CartItemResponse struct {
	ProductID string        `json:"id"`
	Name      string        `json:"name"`
	Price     MoneyResponse `json:"price"`
	ImageURL  string        `json:"image_url,omitempty"`
	Quantity  int32         `json:"quantity"`
	Size      string        `json:"size,omitempty"`
	Color     string        `json:"color,omitempty"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total MoneyResponse      `json:"total"`

	// CartOpen signals the view to present the cart after an add.
	CartOpen bool `json:"cart_open,omitempty"`
}

type QuoteLineResponse struct {
	ProductID     string        `json:"id"`
	Name          string        `json:"name"`
	Size          string        `json:"size,omitempty"`
	Quantity      int64         `json:"quantity"`
	UnitPrice     MoneyResponse `json:"unit_price"`
	LineTotal     MoneyResponse `json:"line_total"`
	SnapshotPrice MoneyResponse `json:"snapshot_price"`
}

type QuoteResponse struct {
	Lines []QuoteLineResponse `json:"lines"`
	Total MoneyResponse       `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
