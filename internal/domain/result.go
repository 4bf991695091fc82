package domain

// PlacedOrder mirrors the exchange's create-order response.
// Decimal fields stay as the exchange-reported strings; formatting
// is a presentation concern.
type PlacedOrder struct {
	OrderID          int64
	Symbol           string
	Status           string
	Side             string
	Type             string
	Price            string
	OrigQuantity     string
	ExecutedQuantity string
	AvgPrice         string
	TimeInForce      string
	UpdateTimeMs     int64
}

// OpenOrder is one entry from the open-orders query.
type OpenOrder struct {
	OrderID          int64
	Symbol           string
	Side             string
	Type             string
	Price            string
	OrigQuantity     string
	ExecutedQuantity string
	Status           string
	TimeInForce      string
	TimeMs           int64
}

// IsOpen checks if the order is still active.
func (o *OpenOrder) IsOpen() bool {
	return o.Status == "NEW" || o.Status == "PARTIALLY_FILLED"
}

// CancelResult mirrors the exchange's cancel-order response.
type CancelResult struct {
	OrderID          int64
	Symbol           string
	Status           string
	ExecutedQuantity string
}
