// cictt scores aviation safety reports against the CICTT hazard taxonomy
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cictt/cmd/cictt/cmd"
	"cictt/internal/platform/config"
	"cictt/internal/platform/logger"
)

func main() {
	_ = config.LoadDotenv()
	opt := logger.FromEnv()
	opt.Component = "cli"
	logger.Init(opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
