package domain

type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

// LineItem is one cart entry for a product/variant combination. Name, price
// and image are denormalized snapshots taken at add time.
type LineItem struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	ImageRef  string `json:"image"`
	Quantity  int32  `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Key identifies a line: at most one line exists per (product id, size) pair.
func (l LineItem) Key() (string, string) {
	return l.ProductID, l.Size
}

// Cart is the ordered sequence of line items for one shopper session.
type Cart struct {
	Lines []LineItem
}

// Total sums price x quantity over all lines; zero for an empty cart. The
// currency is taken from the first line.
func (c Cart) Total() Money {
	var total Money
	for i, l := range c.Lines {
		if i == 0 {
			total.Currency = l.Price.Currency
		}
		total.Amount += l.Price.Amount * int64(l.Quantity)
	}
	return total
}
