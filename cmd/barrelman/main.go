// Command barrelman inspects and replicates a Barrelman entity store.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"barrelman/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout).ExecuteContext(ctx)
	stop()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "barrelman: %v\n", err)
		os.Exit(1)
	}
}
