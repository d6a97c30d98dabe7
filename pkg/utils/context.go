package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var exit = os.Exit

// SetUpContext returns a child of parent cancelled on the first of sigs,
// SIGINT and SIGTERM when none are given. A second signal exits with 1.
func SetUpContext(parent context.Context, sigs ...os.Signal) context.Context {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, sigs...)

	go func() {
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
			signal.Stop(ch)
			return
		}
		<-ch
		exit(1)
	}()
	return ctx
}
