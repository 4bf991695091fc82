// Package ui renders panels, tables and the confirm gate. It is purely
// a function of already-validated data; no business logic lives here.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"futures_bot/internal/domain"
	"futures_bot/pkg/quant"
)

// Renderer writes styled output to out and reads confirmations from in.
type Renderer struct {
	out io.Writer
	in  *bufio.Reader
}

func NewRenderer(out io.Writer, in io.Reader) *Renderer {
	return &Renderer{out: out, in: bufio.NewReader(in)}
}

// Banner displays the startup banner. This tool only ever talks to the
// testnet, and the banner says so.
func (r *Renderer) Banner(name, version string) {
	lines := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render(fmt.Sprintf("🚀 %s %s", name, version)),
		WarnStyle.Render("BINANCE USDT-M FUTURES — TESTNET (PLAY MONEY)"),
	)
	fmt.Fprintln(r.out, BannerStyle.Render(lines))
}

// OrderSummary renders the pre-submission panel.
func (r *Renderer) OrderSummary(req *domain.OrderRequest) {
	rows := []string{
		fmt.Sprintf("%s  %s", LabelStyle.Render("Side     :"), SideStyle(string(req.Side)).Render(string(req.Side))),
		fmt.Sprintf("%s  %s", LabelStyle.Render("Type     :"), string(req.Type)),
		fmt.Sprintf("%s  %s", LabelStyle.Render("Symbol   :"), req.Symbol),
		fmt.Sprintf("%s  %s", LabelStyle.Render("Quantity :"), req.Quantity.String()),
	}

	if req.Price != nil {
		rows = append(rows,
			fmt.Sprintf("%s  %s", LabelStyle.Render("Price    :"), req.Price.String()),
			fmt.Sprintf("%s  %s", LabelStyle.Render("TIF      :"), string(req.TimeInForce)),
			fmt.Sprintf("%s  %s USDT", LabelStyle.Render("Est.Value:"), quant.Notional(*req.Price, req.Quantity).StringFixed(2)),
		)
	} else {
		rows = append(rows, fmt.Sprintf("%s  Market Price", LabelStyle.Render("Price    :")))
	}
	if req.ReduceOnly {
		rows = append(rows, fmt.Sprintf("%s  yes", LabelStyle.Render("ReduceOnly:")))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("📋 Order Summary"),
		strings.Join(rows, "\n"),
	)
	fmt.Fprintln(r.out, PanelStyle.Render(body))
}

// Confirm prompts for a yes/no answer. Default is no; EOF counts as no.
func (r *Renderer) Confirm(prompt string) bool {
	fmt.Fprintf(r.out, "%s [y/N]: ", prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// PlacedOrder renders the post-submission result table.
func (r *Renderer) PlacedOrder(res *domain.PlacedOrder) {
	rows := [][]string{
		{"Timestamp", time.Now().Format("2006-01-02 15:04:05")},
		{"Order ID", strconv.FormatInt(res.OrderID, 10)},
		{"Status", res.Status},
		{"Symbol", res.Symbol},
		{"Side", res.Side},
		{"Type", res.Type},
		{"Executed Qty", quant.Trim(res.ExecutedQuantity)},
	}

	if quant.IsZeroStr(res.AvgPrice) {
		rows = append(rows, []string{"Avg Price", "N/A"})
	} else {
		rows = append(rows, []string{"Avg Price", quant.Trim(res.AvgPrice) + " USDT"})
	}

	if total, ok := totalValue(res.ExecutedQuantity, res.AvgPrice); ok {
		rows = append(rows, []string{"Total Value", total + " USDT"})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(SuccessColor)).
		StyleFunc(fieldTableStyle).
		Headers("Field", "Value").
		Rows(rows...)

	fmt.Fprintln(r.out, SuccessStyle.Render("✅ Order Placed Successfully"))
	fmt.Fprintln(r.out, t.Render())
}

// CancelResult renders the cancellation result.
func (r *Renderer) CancelResult(res *domain.CancelResult) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(SuccessColor)).
		StyleFunc(fieldTableStyle).
		Headers("Field", "Value").
		Rows(
			[]string{"Order ID", strconv.FormatInt(res.OrderID, 10)},
			[]string{"Symbol", res.Symbol},
			[]string{"Status", res.Status},
			[]string{"Executed Qty", quant.Trim(res.ExecutedQuantity)},
		)

	fmt.Fprintln(r.out, SuccessStyle.Render("✅ Order Cancelled"))
	fmt.Fprintln(r.out, t.Render())
}

// OpenOrders renders the listing table.
func (r *Renderer) OpenOrders(orders []domain.OpenOrder) {
	if len(orders) == 0 {
		fmt.Fprintln(r.out, DimStyle.Render("No open orders."))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(AccentColor)).
		StyleFunc(fieldTableStyle).
		Headers("Order ID", "Symbol", "Side", "Type", "Price", "Qty", "Filled", "TIF", "Status", "Created")

	for _, o := range orders {
		t = t.Row(
			strconv.FormatInt(o.OrderID, 10),
			o.Symbol,
			o.Side,
			o.Type,
			quant.Trim(o.Price),
			quant.Trim(o.OrigQuantity),
			quant.Trim(o.ExecutedQuantity),
			o.TimeInForce,
			o.Status,
			time.UnixMilli(o.TimeMs).Format("2006-01-02 15:04:05"),
		)
	}

	fmt.Fprintln(r.out, TitleStyle.Render(fmt.Sprintf("📄 Open Orders (%d)", len(orders))))
	fmt.Fprintln(r.out, t.Render())
}

// ValidationError renders every field failure in one red panel.
func (r *Renderer) ValidationError(errs domain.ValidationErrors) {
	lines := make([]string, 0, len(errs)+1)
	lines = append(lines, ErrorTitleStyle.Render("❌ Validation Error"))
	for _, fe := range errs {
		lines = append(lines, fmt.Sprintf("  ✗ %s %s", LabelStyle.Render(fe.Field+":"), fe.Message))
	}
	lines = append(lines, DimStyle.Render("💡 Tip: use --help to see all options and requirements"))
	fmt.Fprintln(r.out, ErrorPanelStyle.Render(strings.Join(lines, "\n")))
}

// ErrorPanel renders a fatal error with a title.
func (r *Renderer) ErrorPanel(title, msg string) {
	body := lipgloss.JoinVertical(lipgloss.Left,
		ErrorTitleStyle.Render(title),
		msg,
	)
	fmt.Fprintln(r.out, ErrorPanelStyle.Render(body))
}

// Warnf prints a non-fatal warning line.
func (r *Renderer) Warnf(format string, args ...any) {
	fmt.Fprintln(r.out, WarnStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Info prints a plain status line.
func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, msg)
}

// fieldTableStyle colors the header row of a field/value table.
func fieldTableStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return HeaderStyle
	}
	return lipgloss.NewStyle()
}

// totalValue multiplies executed quantity by average price when both
// are parseable and positive.
func totalValue(execQty, avgPrice string) (string, bool) {
	qty, err := decimal.NewFromString(execQty)
	if err != nil || !qty.IsPositive() {
		return "", false
	}
	price, err := decimal.NewFromString(avgPrice)
	if err != nil || !price.IsPositive() {
		return "", false
	}
	return qty.Mul(price).StringFixed(2), true
}
