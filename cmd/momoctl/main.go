// Command momoctl is the offline companion to the API server. It converts SMS
// exports into the persisted transaction file and benchmarks id lookups.
package main

import (
	"fmt"
	"os"

	"momoapi/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
