package main

import (
	"errors"

	"github.com/spf13/cobra"

	"futures_bot/internal/app"
)

// errReported marks errors the app has already rendered to the user.
var errReported = errors.New("reported")

func reported(err error) error {
	if err == nil {
		return nil
	}
	return errReported
}

func newRootCmd(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "futures-bot",
		Short:         "Place MARKET and LIMIT orders on the Binance USDT-M Futures Testnet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlaceOrderCmd(a),
		newCancelOrderCmd(a),
		newListOrdersCmd(a),
	)
	return root
}
