// Package binance adapts the go-binance futures SDK to the exchange port.
// Authentication, request signing and rate limiting all live inside the
// SDK; this layer only maps parameters and responses. SDK errors are
// returned to the caller unmodified.
package binance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"go.uber.org/zap"

	"futures_bot/internal/domain"
	"futures_bot/internal/infra"
)

// Client wraps an authenticated futures SDK client pointed at the testnet.
type Client struct {
	sdk *futures.Client
	log *zap.Logger
}

// NewClient builds the adapter. Fails fast when credentials are missing;
// bad credentials only surface on the first signed call.
func NewClient(cfg *infra.Config, log *zap.Logger) (*Client, error) {
	key, secret, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	futures.UseTestnet = true
	sdk := futures.NewClient(key, secret)
	// Pin the base URL so a SDK default change can never route an order
	// to the production exchange.
	sdk.BaseURL = strings.TrimRight(cfg.API.Binance.BaseURL, "/")

	log.Debug("binance futures client ready", zap.String("base_url", sdk.BaseURL))

	return &Client{sdk: sdk, log: log}, nil
}

// PlaceOrder submits one order. MARKET orders carry no price or
// time-in-force; LIMIT orders carry both.
func (c *Client) PlaceOrder(ctx context.Context, req *domain.OrderRequest) (*domain.PlacedOrder, error) {
	price := "N/A"
	if req.Price != nil {
		price = req.Price.String()
	}
	c.log.Info("placing order",
		zap.String("symbol", req.Symbol),
		zap.String("side", string(req.Side)),
		zap.String("type", string(req.Type)),
		zap.String("quantity", req.Quantity.String()),
		zap.String("price", price),
	)

	svc := c.sdk.NewCreateOrderService().
		Symbol(req.Symbol).
		Side(futures.SideType(req.Side)).
		Type(futures.OrderType(req.Type)).
		Quantity(req.Quantity.String())

	if req.Type == domain.OrderTypeLimit {
		svc = svc.
			Price(req.Price.String()).
			TimeInForce(futures.TimeInForceType(req.TimeInForce))
	}
	if req.ReduceOnly {
		svc = svc.ReduceOnly(true)
	}

	res, err := svc.Do(ctx)
	if err != nil {
		c.log.Error("order placement failed", zap.Error(err))
		return nil, err
	}

	c.log.Info("order placed",
		zap.Int64("order_id", res.OrderID),
		zap.String("status", string(res.Status)),
		zap.String("executed_qty", res.ExecutedQuantity),
	)

	return &domain.PlacedOrder{
		OrderID:          res.OrderID,
		Symbol:           res.Symbol,
		Status:           string(res.Status),
		Side:             string(res.Side),
		Type:             string(res.Type),
		Price:            res.Price,
		OrigQuantity:     res.OrigQuantity,
		ExecutedQuantity: res.ExecutedQuantity,
		AvgPrice:         res.AvgPrice,
		TimeInForce:      string(res.TimeInForce),
		UpdateTimeMs:     res.UpdateTime,
	}, nil
}

// CancelOrder cancels one order by symbol and exchange order id.
func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) (*domain.CancelResult, error) {
	c.log.Info("cancelling order", zap.String("symbol", symbol), zap.Int64("order_id", orderID))

	res, err := c.sdk.NewCancelOrderService().
		Symbol(symbol).
		OrderID(orderID).
		Do(ctx)
	if err != nil {
		c.log.Error("order cancellation failed", zap.Error(err))
		return nil, err
	}

	return &domain.CancelResult{
		OrderID:          res.OrderID,
		Symbol:           res.Symbol,
		Status:           string(res.Status),
		ExecutedQuantity: res.ExecutedQuantity,
	}, nil
}

// OpenOrders lists open orders; an empty symbol queries all symbols.
func (c *Client) OpenOrders(ctx context.Context, symbol string) ([]domain.OpenOrder, error) {
	svc := c.sdk.NewListOpenOrdersService()
	if symbol != "" {
		svc = svc.Symbol(symbol)
	}

	res, err := svc.Do(ctx)
	if err != nil {
		c.log.Error("open orders query failed", zap.Error(err))
		return nil, err
	}

	out := make([]domain.OpenOrder, 0, len(res))
	for _, o := range res {
		out = append(out, domain.OpenOrder{
			OrderID:          o.OrderID,
			Symbol:           o.Symbol,
			Side:             string(o.Side),
			Type:             string(o.Type),
			Price:            o.Price,
			OrigQuantity:     o.OrigQuantity,
			ExecutedQuantity: o.ExecutedQuantity,
			Status:           string(o.Status),
			TimeInForce:      string(o.TimeInForce),
			TimeMs:           o.Time,
		})
	}

	c.log.Debug("open orders fetched", zap.String("symbol", symbol), zap.Int("count", len(out)))
	return out, nil
}

// ActiveSymbols fetches exchange info and returns every symbol whose
// status is TRADING. Used for the best-effort pre-flight check.
func (c *Client) ActiveSymbols(ctx context.Context) (map[string]struct{}, error) {
	info, err := c.sdk.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, err
	}

	symbols := make(map[string]struct{}, len(info.Symbols))
	for _, s := range info.Symbols {
		if s.Status == "TRADING" {
			symbols[s.Symbol] = struct{}{}
		}
	}

	c.log.Debug("exchange info fetched", zap.Int("active_symbols", len(symbols)))
	return symbols, nil
}

// DescribeError renders an exchange error for the user, keeping the
// Binance code and message verbatim when present.
func DescribeError(err error) string {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Binance API returned an error:\n%s (code %d)", apiErr.Message, apiErr.Code)
	}
	return err.Error()
}
