package worker

import (
	"runtime"

	"github.com/getsentry/sentry-go"
)

// queue feeds a small pool of background goroutines. Work that must not
// stall the tick loop, like flushing a recorded session log to disk, goes
// through here.
var queue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go run()
	}
}

func run() {
	defer sentry.Recover()

	for f := range queue {
		f()
	}
}

// Submit queues f for execution on a background worker.
func Submit(f func()) {
	queue <- f
}

// SubmitWait queues f and blocks until it has run.
func SubmitWait(f func()) {
	done := make(chan struct{})
	queue <- func() {
		defer close(done)
		f()
	}
	<-done
}
