// NimbusCode is a lightweight AI coding assistant backed by OpenRouter's
// free models.
package main

import (
	"context"
	"os"
	"os/signal"
)

// main is the program entry point. Interrupts cancel the command context so
// a blocked network call unwinds instead of crashing.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
