package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures_bot/internal/domain"
	"futures_bot/pkg/quant"
)

func newTestRenderer(input string) (*Renderer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewRenderer(out, strings.NewReader(input)), out
}

func TestOrderSummary_Market(t *testing.T) {
	r, out := newTestRenderer("")
	qty, err := quant.Parse("0.01")
	require.NoError(t, err)

	r.OrderSummary(&domain.OrderRequest{
		Symbol: "BTCUSDT", Side: domain.SideBuy, Type: domain.OrderTypeMarket, Quantity: qty,
	})

	s := out.String()
	assert.Contains(t, s, "BTCUSDT")
	assert.Contains(t, s, "BUY")
	assert.Contains(t, s, "Market Price")
	assert.NotContains(t, s, "Est.Value")
}

func TestOrderSummary_LimitShowsNotional(t *testing.T) {
	r, out := newTestRenderer("")
	qty, _ := quant.Parse("0.01")
	price, _ := quant.Parse("50000")

	r.OrderSummary(&domain.OrderRequest{
		Symbol: "BTCUSDT", Side: domain.SideSell, Type: domain.OrderTypeLimit,
		Quantity: qty, Price: &price, TimeInForce: domain.TimeInForceGTC,
	})

	s := out.String()
	assert.Contains(t, s, "50000")
	assert.Contains(t, s, "500.00 USDT")
	assert.Contains(t, s, "GTC")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "YES\n", true},
		{"no", "n\n", false},
		{"default empty", "\n", false},
		{"eof", "", false},
		{"noise", "sure\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestRenderer(tt.input)
			got := r.Confirm("Confirm order placement?")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}

func TestPlacedOrder_TableContents(t *testing.T) {
	r, out := newTestRenderer("")
	r.PlacedOrder(&domain.PlacedOrder{
		OrderID:          4055310,
		Symbol:           "BTCUSDT",
		Status:           "FILLED",
		Side:             "BUY",
		Type:             "MARKET",
		ExecutedQuantity: "0.01000000",
		AvgPrice:         "50000.0000",
	})

	s := out.String()
	assert.Contains(t, s, "4055310")
	assert.Contains(t, s, "FILLED")
	assert.Contains(t, s, "0.01")
	assert.Contains(t, s, "50000 USDT")
	assert.Contains(t, s, "500.00 USDT")
}

func TestPlacedOrder_UnfilledShowsNA(t *testing.T) {
	r, out := newTestRenderer("")
	r.PlacedOrder(&domain.PlacedOrder{
		OrderID: 7, Symbol: "ETHUSDT", Status: "NEW", Side: "SELL", Type: "LIMIT",
		ExecutedQuantity: "0", AvgPrice: "0.00000",
	})

	s := out.String()
	assert.Contains(t, s, "N/A")
	assert.NotContains(t, s, "Total Value")
}

func TestOpenOrders(t *testing.T) {
	r, out := newTestRenderer("")
	r.OpenOrders([]domain.OpenOrder{
		{OrderID: 1, Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Price: "50000",
			OrigQuantity: "0.01", ExecutedQuantity: "0", Status: "NEW", TimeInForce: "GTC"},
	})
	s := out.String()
	assert.Contains(t, s, "BTCUSDT")
	assert.Contains(t, s, "NEW")

	out.Reset()
	r.OpenOrders(nil)
	assert.Contains(t, out.String(), "No open orders")
}

func TestValidationError(t *testing.T) {
	r, out := newTestRenderer("")
	r.ValidationError(domain.ValidationErrors{
		{Field: "price", Message: "is required for LIMIT orders"},
		{Field: "quantity", Message: "must be greater than zero"},
	})

	s := out.String()
	assert.Contains(t, s, "price")
	assert.Contains(t, s, "quantity")
	assert.Contains(t, s, "required for LIMIT")
}
