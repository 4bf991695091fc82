package main

import (
	"strings"

	"github.com/spf13/cobra"

	"futures_bot/internal/app"
)

func newListOrdersCmd(a *app.App) *cobra.Command {
	var symbol string

	cmd := &cobra.Command{
		Use:   "list-orders",
		Short: "List open orders, optionally filtered by symbol",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return reported(a.ListOrders(cmd.Context(), strings.ToUpper(strings.TrimSpace(symbol))))
		},
	}

	cmd.Flags().StringVarP(&symbol, "symbol", "s", "", "Only show orders for this trading pair")

	return cmd
}
