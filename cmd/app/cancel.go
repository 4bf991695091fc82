package main

import (
	"github.com/spf13/cobra"

	"futures_bot/internal/app"
)

func newCancelOrderCmd(a *app.App) *cobra.Command {
	var opts app.CancelOptions

	cmd := &cobra.Command{
		Use:   "cancel-order",
		Short: "Cancel an open order by id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reported(a.CancelOrder(cmd.Context(), opts))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Symbol, "symbol", "s", "", "Trading pair symbol of the order")
	f.Int64Var(&opts.OrderID, "order-id", 0, "Exchange order id to cancel")

	return cmd
}
