// Package exchange defines the port between the CLI and the exchange.
// Implementations issue exactly one blocking call per operation; any
// failure is terminal for the invocation (no retries, no backoff).
package exchange

import (
	"context"

	"futures_bot/internal/domain"
)

// Exchange is the order-execution surface of Binance USDT-M Futures.
type Exchange interface {
	// PlaceOrder submits one new order.
	PlaceOrder(ctx context.Context, req *domain.OrderRequest) (*domain.PlacedOrder, error)

	// CancelOrder cancels one order by symbol and exchange order id.
	CancelOrder(ctx context.Context, symbol string, orderID int64) (*domain.CancelResult, error)

	// OpenOrders lists open orders; an empty symbol means all symbols.
	OpenOrders(ctx context.Context, symbol string) ([]domain.OpenOrder, error)

	// ActiveSymbols returns the set of symbols currently trading,
	// keyed by uppercase symbol name. Used for pre-flight checks.
	ActiveSymbols(ctx context.Context) (map[string]struct{}, error)
}
