package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "ecoscope/configs"
	"ecoscope/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root, cleanup := newRootCommand()
	err := root.ExecuteContext(ctx)
	cleanup()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
