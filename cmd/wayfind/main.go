// Command wayfind runs A* search scenarios described in YAML.
//
// Usage:
//
//	wayfind run scenario.yaml [--trace] [--budget N] [--metrics] [--log-level debug]
//	wayfind fixture
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "wayfind:", err)
		stop()
		os.Exit(1)
	}
}
