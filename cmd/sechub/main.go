package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sechub/sechub-cli/internals/sechub"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := sechub.NewApp().Version(sechub.Version, sechub.Commit).Run(ctx, os.Args[1:])
	stop()
	if err != nil {
		handleError(err)
	}

	os.Exit(0)
}

// handleError prints the error and exits with a non-zero status.
func handleError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Encountered an error: %s\n", err)
		os.Exit(1)
	}
}
