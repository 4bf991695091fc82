package quant

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePositive(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "0.01", "0.01", false},
		{"integer", "50000", "50000", false},
		{"whitespace", " 1.5 ", "1.5", false},
		{"zero", "0", "", true},
		{"negative", "-0.01", "", true},
		{"garbage", "abc", "", true},
		{"empty", "", "", true},
		{"double dot", "1.2.3", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePositive(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePositive(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("ParsePositive(%q) = %s, want %s", tt.in, got.String(), tt.want)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.01000000", "0.01"},
		{"50000.0000", "50000"},
		{"0.00000000", "0"},
		{"1.23456789", "1.23456789"},
		{"N/A", "N/A"},
	}
	for _, tt := range tests {
		if got := Trim(tt.in); got != tt.want {
			t.Errorf("Trim(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNotional(t *testing.T) {
	price := decimal.RequireFromString("50000")
	qty := decimal.RequireFromString("0.01")
	if got := Notional(price, qty); got.String() != "500" {
		t.Errorf("Notional = %s, want 500", got.String())
	}
}

func TestIsZeroStr(t *testing.T) {
	if !IsZeroStr("0.00000000") {
		t.Error("expected zero string to be zero")
	}
	if !IsZeroStr("junk") {
		t.Error("expected unparseable string to count as zero")
	}
	if IsZeroStr("0.001") {
		t.Error("expected non-zero string to be non-zero")
	}
}
