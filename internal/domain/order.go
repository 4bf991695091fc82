package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"futures_bot/pkg/quant"
)

// Side is the order direction.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType is the supported order type.
type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
)

// TimeInForce governs how long an unfilled LIMIT order stays active.
type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
)

var validate = validator.New()

// OrderRequest is a fully validated order, ready for submission.
// Invariant: Price is non-nil exactly when Type is LIMIT.
type OrderRequest struct {
	Symbol      string      `validate:"required"`
	Side        Side        `validate:"required,oneof=BUY SELL"`
	Type        OrderType   `validate:"required,oneof=MARKET LIMIT"`
	Quantity    decimal.Decimal
	Price       *decimal.Decimal
	TimeInForce TimeInForce `validate:"omitempty,oneof=GTC IOC FOK"`
	ReduceOnly  bool
}

// OrderParams carries the raw CLI-supplied strings for an order.
type OrderParams struct {
	Symbol      string
	Side        string
	Type        string
	Quantity    string
	Price       string
	TimeInForce string
	ReduceOnly  bool
}

// NewOrderRequest validates raw parameters and builds an OrderRequest.
// All failures are reported together as ValidationErrors; no network
// access happens here or anywhere in validation.
func NewOrderRequest(p OrderParams) (*OrderRequest, error) {
	r := &OrderRequest{
		Symbol:      strings.ToUpper(strings.TrimSpace(p.Symbol)),
		Side:        Side(upper(p.Side)),
		Type:        OrderType(upper(p.Type)),
		TimeInForce: TimeInForce(upper(p.TimeInForce)),
		ReduceOnly:  p.ReduceOnly,
	}

	var errs ValidationErrors

	if strings.TrimSpace(p.Quantity) == "" {
		errs = append(errs, FieldError{Field: "quantity", Message: "is required"})
	} else if qty, err := quant.ParsePositive(p.Quantity); err != nil {
		errs = append(errs, FieldError{Field: "quantity", Message: err.Error()})
	} else {
		r.Quantity = qty
	}

	priceSupplied := strings.TrimSpace(p.Price) != ""
	if priceSupplied {
		prc, err := quant.ParsePositive(p.Price)
		if err != nil {
			errs = append(errs, FieldError{Field: "price", Message: err.Error()})
		} else {
			r.Price = &prc
		}
	}

	// GTC is the default policy for LIMIT, matching exchange behavior.
	if r.Type == OrderTypeLimit && r.TimeInForce == "" {
		r.TimeInForce = TimeInForceGTC
	}

	errs = append(errs, r.tagErrors()...)
	errs = append(errs, r.crossFieldErrors(priceSupplied, p.TimeInForce != "")...)

	if len(errs) > 0 {
		return nil, errs
	}
	return r, nil
}

// tagErrors runs the struct-tag constraints (enums, required fields).
func (r *OrderRequest) tagErrors() ValidationErrors {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	ferrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "order", Message: err.Error()}}
	}
	out := make(ValidationErrors, 0, len(ferrs))
	for _, fe := range ferrs {
		out = append(out, FieldError{
			Field:   flagName(fe.Field()),
			Message: tagMessage(fe),
		})
	}
	return out
}

// crossFieldErrors enforces the rules no single tag can express.
func (r *OrderRequest) crossFieldErrors(priceSupplied, tifSupplied bool) ValidationErrors {
	var errs ValidationErrors
	switch r.Type {
	case OrderTypeLimit:
		if !priceSupplied {
			errs = append(errs, FieldError{Field: "price", Message: "is required for LIMIT orders"})
		}
	case OrderTypeMarket:
		if priceSupplied {
			errs = append(errs, FieldError{Field: "price", Message: "must not be set for MARKET orders"})
		}
		if tifSupplied {
			errs = append(errs, FieldError{Field: "time-in-force", Message: "only applies to LIMIT orders"})
		}
	}
	return errs
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("violates %q constraint", fe.Tag())
	}
}

// flagName maps a struct field to the CLI flag the user typed.
func flagName(field string) string {
	switch field {
	case "TimeInForce":
		return "time-in-force"
	default:
		return strings.ToLower(field)
	}
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
