package main

import (
	"errors"
	"fmt"
	"os"

	"futures_bot/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	a, err := app.Bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer a.Close()

	if err := newRootCmd(a).Execute(); err != nil {
		// App errors were already rendered as panels; only surface the
		// ones cobra produced itself (unknown flags and the like).
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
