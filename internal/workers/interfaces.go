// Package workers runs the background jobs of the server.
//
// A Worker blocks in Run until its context is cancelled. Workers runs a set
// of them side by side and waits for all of them to stop.
package workers

import "context"

// Worker is a background job.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
