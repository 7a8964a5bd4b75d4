package context

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/assetnote/brutegen/pkg/log"
)

var (
	ctx            context.Context
	cancel         context.CancelFunc
	ctxInitialized sync.Once

	// exit is swapped out in tests
	exit = os.Exit
)

// WithInterrupt returns a child of parent that is cancelled on the first SIGINT or SIGTERM.
// A second signal terminates the process immediately, for when a flush is stuck on a slow sink.
// The returned cancel func stops the signal handler
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	c, cancelFn := context.WithCancel(parent)
	signals := make(chan os.Signal, 2)
	stop := make(chan struct{})
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go watchSignals(cancelFn, signals, stop)

	var once sync.Once
	return c, func() {
		once.Do(func() {
			signal.Stop(signals)
			close(stop)
		})
		cancelFn()
	}
}

// watchSignals keeps listening after the first signal so the second one can still force an exit
// while workers flush
func watchSignals(cancelFn context.CancelFunc, signals chan os.Signal, stop chan struct{}) {
	interrupts := 0
	for {
		select {
		case <-signals:
			interrupts++
			if interrupts > 1 {
				log.Info().Msg("Received multiple interrupt signals. Exiting")
				exit(1)
				return
			}
			log.Info().Msg("Received interrupt signal. Flushing buffered output")
			cancelFn()
		case <-stop:
			return
		}
	}
}

// InitContext will initialize the global context used to catch interrupts. This is automatically called
// by Context and Cancel
func InitContext() {
	ctxInitialized.Do(func() {
		ctx, cancel = WithInterrupt(context.Background())
	})
}

// Context will initialize the global context and attach the interrupt handler that will cancel the context
// upon SIGTERM. This is safe to call from multiple goroutines and will always return the same context
func Context() context.Context {
	InitContext()
	return ctx
}

// Cancel will cancel the global context. Calling this multiple times is the equivalent of cancelling
// the same context multiple times
func Cancel() {
	InitContext()
	cancel()
}
