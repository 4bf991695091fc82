package exchange

import (
	"context"

	"futures_bot/internal/domain"
)

// CancelCall records one CancelOrder invocation.
type CancelCall struct {
	Symbol  string
	OrderID int64
}

// Mock is a recording implementation for tests. Every call is captured;
// results and errors are whatever the test wires in.
type Mock struct {
	PlaceCalls   []domain.OrderRequest
	CancelCalls  []CancelCall
	ListCalls    []string
	SymbolsCalls int

	PlaceResult  *domain.PlacedOrder
	CancelResult *domain.CancelResult
	Open         []domain.OpenOrder
	Symbols      map[string]struct{}

	PlaceErr   error
	CancelErr  error
	ListErr    error
	SymbolsErr error
}

func (m *Mock) PlaceOrder(ctx context.Context, req *domain.OrderRequest) (*domain.PlacedOrder, error) {
	m.PlaceCalls = append(m.PlaceCalls, *req)
	if m.PlaceErr != nil {
		return nil, m.PlaceErr
	}
	return m.PlaceResult, nil
}

func (m *Mock) CancelOrder(ctx context.Context, symbol string, orderID int64) (*domain.CancelResult, error) {
	m.CancelCalls = append(m.CancelCalls, CancelCall{Symbol: symbol, OrderID: orderID})
	if m.CancelErr != nil {
		return nil, m.CancelErr
	}
	return m.CancelResult, nil
}

func (m *Mock) OpenOrders(ctx context.Context, symbol string) ([]domain.OpenOrder, error) {
	m.ListCalls = append(m.ListCalls, symbol)
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if symbol == "" {
		return m.Open, nil
	}
	out := make([]domain.OpenOrder, 0, len(m.Open))
	for _, o := range m.Open {
		if o.Symbol == symbol {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *Mock) ActiveSymbols(ctx context.Context) (map[string]struct{}, error) {
	m.SymbolsCalls++
	if m.SymbolsErr != nil {
		return nil, m.SymbolsErr
	}
	return m.Symbols, nil
}
