package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slices"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

// ProcessStartStopper is implemented by long-running components such as the
// HTTP server so main can register both halves at once.
type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(starters ...ProcessStarter) {
	for _, start := range starters {
		if start == nil {
			continue
		}
		go func(run ProcessStarter) {
			_ = run()
		}(start)
	}
}

// StopProcessAtBackground blocks until an interrupt, SIGTERM, or SIGUSR1
// arrives, then runs the stoppers.
func StopProcessAtBackground(timeout time.Duration, stoppers ...ProcessStopper) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	<-signals

	StopProcess(timeout, stoppers...)
}

// StopProcess runs the stoppers in reverse registration order, each with
// its own timeout.
func StopProcess(timeout time.Duration, stoppers ...ProcessStopper) {
	ordered := slices.Clone(stoppers)
	slices.Reverse(ordered)

	for _, stop := range ordered {
		if stop == nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		_ = stop(ctx)
		cancel()
	}
}
