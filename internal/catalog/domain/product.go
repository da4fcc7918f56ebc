package domain

type Money struct {
	Currency string
	Amount   int64
}

// Product is the read-only product shape consumed by the views.
// ImageRef is an opaque handle; only the image resolver understands it.
type Product struct {
	ID               string
	Name             string
	Description      string
	ShortDescription string
	Price            Money
	ImageRef         string
	Sizes            []string
	Colors           []string
	Category         string
}
