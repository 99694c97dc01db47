package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tuannh982/sparsecoll/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hookShutdownSignal(cancel)
	cmd.Execute(ctx)
}

func hookShutdownSignal(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	cancel()
}
