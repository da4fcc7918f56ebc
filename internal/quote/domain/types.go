package domain

type Money struct {
	Currency string
	Amount   int64
}

// QuoteLine re-prices one cart line at the current catalog price.
type QuoteLine struct {
	ProductID     string
	Name          string
	Size          string
	Quantity      int64
	UnitPrice     Money
	LineTotal     Money
	SnapshotPrice Money
}

type Quote struct {
	Lines []QuoteLine
	Total Money
}
