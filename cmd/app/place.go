package main

import (
	"github.com/spf13/cobra"

	"futures_bot/internal/app"
)

func newPlaceOrderCmd(a *app.App) *cobra.Command {
	var opts app.PlaceOptions

	cmd := &cobra.Command{
		Use:   "place-order",
		Short: "Place a MARKET or LIMIT futures order on the testnet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reported(a.PlaceOrder(cmd.Context(), opts))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Symbol, "symbol", "s", "", "Trading pair symbol, e.g. BTCUSDT")
	f.StringVar(&opts.Side, "side", "", "Order side: BUY or SELL")
	f.StringVarP(&opts.Type, "type", "t", "", "Order type: MARKET or LIMIT")
	f.StringVarP(&opts.Quantity, "quantity", "q", "", "Order quantity, must be greater than zero")
	f.StringVarP(&opts.Price, "price", "p", "", "Limit price, required for LIMIT orders")
	f.StringVar(&opts.TimeInForce, "time-in-force", "", "LIMIT time in force: GTC, IOC or FOK (default GTC)")
	f.BoolVar(&opts.ReduceOnly, "reduce-only", false, "Only reduce an existing position")
	f.BoolVar(&opts.DryRun, "dry-run", false, "Validate and show the summary without submitting")
	f.BoolVarP(&opts.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
