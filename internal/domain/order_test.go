package domain

import (
	"errors"
	"testing"
)

func TestNewOrderRequest(t *testing.T) {
	tests := []struct {
		name      string
		params    OrderParams
		wantErr   bool
		wantField string
	}{
		{
			name:   "valid market buy",
			params: OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "0.01"},
		},
		{
			name:   "valid limit sell",
			params: OrderParams{Symbol: "ETHUSDT", Side: "SELL", Type: "LIMIT", Quantity: "1.5", Price: "2500"},
		},
		{
			name:   "limit with explicit IOC",
			params: OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: "0.01", Price: "50000", TimeInForce: "IOC"},
		},
		{
			name:      "limit without price",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: "0.01"},
			wantErr:   true,
			wantField: "price",
		},
		{
			name:      "market with price",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "0.01", Price: "50000"},
			wantErr:   true,
			wantField: "price",
		},
		{
			name:      "zero quantity",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "0"},
			wantErr:   true,
			wantField: "quantity",
		},
		{
			name:      "negative quantity",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "SELL", Type: "LIMIT", Quantity: "-1", Price: "100"},
			wantErr:   true,
			wantField: "quantity",
		},
		{
			name:      "garbage quantity",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "lots"},
			wantErr:   true,
			wantField: "quantity",
		},
		{
			name:      "negative price",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: "0.01", Price: "-5"},
			wantErr:   true,
			wantField: "price",
		},
		{
			name:      "bad side",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "HOLD", Type: "MARKET", Quantity: "0.01"},
			wantErr:   true,
			wantField: "side",
		},
		{
			name:      "bad type",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "STOP", Quantity: "0.01"},
			wantErr:   true,
			wantField: "type",
		},
		{
			name:      "bad time in force",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "LIMIT", Quantity: "0.01", Price: "100", TimeInForce: "DAY"},
			wantErr:   true,
			wantField: "time-in-force",
		},
		{
			name:      "time in force on market order",
			params:    OrderParams{Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET", Quantity: "0.01", TimeInForce: "GTC"},
			wantErr:   true,
			wantField: "time-in-force",
		},
		{
			name:      "empty symbol",
			params:    OrderParams{Symbol: "  ", Side: "BUY", Type: "MARKET", Quantity: "0.01"},
			wantErr:   true,
			wantField: "symbol",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewOrderRequest(tt.params)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewOrderRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				if req == nil {
					t.Fatal("expected a request, got nil")
				}
				return
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			for _, fe := range verrs {
				if fe.Field == tt.wantField {
					return
				}
			}
			t.Errorf("expected an error on field %q, got %v", tt.wantField, verrs)
		})
	}
}

func TestNewOrderRequest_Normalization(t *testing.T) {
	req, err := NewOrderRequest(OrderParams{
		Symbol: " btcusdt ", Side: "buy", Type: "limit", Quantity: "0.01", Price: "50000",
	})
	if err != nil {
		t.Fatalf("NewOrderRequest() error = %v", err)
	}
	if req.Symbol != "BTCUSDT" {
		t.Errorf("Symbol = %q, want BTCUSDT", req.Symbol)
	}
	if req.Side != SideBuy || req.Type != OrderTypeLimit {
		t.Errorf("enums not normalized: side=%q type=%q", req.Side, req.Type)
	}
	if req.TimeInForce != TimeInForceGTC {
		t.Errorf("TimeInForce = %q, want GTC default for LIMIT", req.TimeInForce)
	}
}

func TestNewOrderRequest_MarketNeedsNoPrice(t *testing.T) {
	req, err := NewOrderRequest(OrderParams{Symbol: "BTCUSDT", Side: "SELL", Type: "MARKET", Quantity: "0.5"})
	if err != nil {
		t.Fatalf("MARKET order must not require a price: %v", err)
	}
	if req.Price != nil {
		t.Error("MARKET order should carry no price")
	}
	if req.TimeInForce != "" {
		t.Errorf("MARKET order should carry no time-in-force, got %q", req.TimeInForce)
	}
}

func TestNewOrderRequest_CollectsAllErrors(t *testing.T) {
	_, err := NewOrderRequest(OrderParams{Symbol: "", Side: "HOLD", Type: "LIMIT", Quantity: "-1"})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) < 3 {
		t.Errorf("expected at least 3 field errors, got %d: %v", len(verrs), verrs)
	}
}

func TestOpenOrder_IsOpen(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{"NEW", "NEW", true},
		{"PARTIALLY_FILLED", "PARTIALLY_FILLED", true},
		{"FILLED", "FILLED", false},
		{"CANCELED", "CANCELED", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &OpenOrder{Status: tt.status}
			if got := o.IsOpen(); got != tt.want {
				t.Errorf("OpenOrder.IsOpen() = %v, want %v", got, tt.want)
			}
		})
	}
}
