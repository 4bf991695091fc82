package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"futures_bot/internal/domain"
	"futures_bot/internal/exchange/binance"
)

// PlaceOptions carries the raw place-order flags.
type PlaceOptions struct {
	Symbol      string
	Side        string
	Type        string
	Quantity    string
	Price       string
	TimeInForce string
	ReduceOnly  bool
	DryRun      bool
	Yes         bool
}

// CancelOptions carries the cancel-order flags.
type CancelOptions struct {
	Symbol  string
	OrderID int64
}

// PlaceOrder runs the full flow: validate, summarize, pre-flight the
// symbol, confirm, submit once, render. Every error is terminal.
func (a *App) PlaceOrder(ctx context.Context, opts PlaceOptions) error {
	a.UI.Banner(a.Config.App.Name, a.Config.App.Version)

	req, err := domain.NewOrderRequest(domain.OrderParams{
		Symbol:      opts.Symbol,
		Side:        opts.Side,
		Type:        opts.Type,
		Quantity:    opts.Quantity,
		Price:       opts.Price,
		TimeInForce: opts.TimeInForce,
		ReduceOnly:  opts.ReduceOnly,
	})
	if err != nil {
		a.renderValidation(err)
		a.Log.Debug("validation rejected order", zap.Error(err))
		return err
	}

	a.UI.OrderSummary(req)

	if opts.DryRun {
		a.UI.Info("Dry run: order validated, nothing submitted.")
		return nil
	}

	ex, err := a.NewExchange()
	if err != nil {
		a.UI.ErrorPanel("Configuration Error", err.Error())
		return err
	}

	// Best effort: a metadata-fetch failure degrades to a warning, an
	// unlisted symbol is rejected before any order call.
	if symbols, err := ex.ActiveSymbols(ctx); err != nil {
		a.UI.Warnf("Could not verify symbol against exchange info: %v", err)
		a.Log.Warn("symbol pre-flight skipped", zap.Error(err))
	} else if _, ok := symbols[req.Symbol]; !ok {
		verr := domain.ValidationErrors{{
			Field:   "symbol",
			Message: fmt.Sprintf("%s is not an active futures symbol on the testnet", req.Symbol),
		}}
		a.UI.ValidationError(verr)
		return verr
	}

	if !opts.Yes && !a.UI.Confirm("Confirm order placement?") {
		a.UI.Info("Order cancelled by user.")
		return nil
	}

	res, err := ex.PlaceOrder(ctx, req)
	if err != nil {
		a.UI.ErrorPanel("API Error", binance.DescribeError(err))
		return err
	}

	a.UI.PlacedOrder(res)
	return nil
}

// CancelOrder cancels one order by id. The exchange's rejection, if
// any, is reported once — no retry.
func (a *App) CancelOrder(ctx context.Context, opts CancelOptions) error {
	var verrs domain.ValidationErrors
	if opts.Symbol == "" {
		verrs = append(verrs, domain.FieldError{Field: "symbol", Message: "is required"})
	}
	if opts.OrderID <= 0 {
		verrs = append(verrs, domain.FieldError{Field: "order-id", Message: "must be a positive integer"})
	}
	if len(verrs) > 0 {
		a.UI.ValidationError(verrs)
		return verrs
	}

	ex, err := a.NewExchange()
	if err != nil {
		a.UI.ErrorPanel("Configuration Error", err.Error())
		return err
	}

	res, err := ex.CancelOrder(ctx, opts.Symbol, opts.OrderID)
	if err != nil {
		a.UI.ErrorPanel("API Error", binance.DescribeError(err))
		return err
	}

	a.UI.CancelResult(res)
	return nil
}

// ListOrders prints open orders, optionally filtered by symbol. The
// filter is passed to the exchange, not applied locally.
func (a *App) ListOrders(ctx context.Context, symbol string) error {
	ex, err := a.NewExchange()
	if err != nil {
		a.UI.ErrorPanel("Configuration Error", err.Error())
		return err
	}

	orders, err := ex.OpenOrders(ctx, symbol)
	if err != nil {
		a.UI.ErrorPanel("API Error", binance.DescribeError(err))
		return err
	}

	a.UI.OpenOrders(orders)
	return nil
}

func (a *App) renderValidation(err error) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		a.UI.ValidationError(verrs)
		return
	}
	a.UI.ErrorPanel("Validation Error", err.Error())
}
