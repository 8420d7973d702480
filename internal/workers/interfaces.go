// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns; long-running work happens in goroutines
// bound to ctx. Stop ends the work and waits for it to exit.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // start background processing
//	}
//
//	func (w *MyWorker) Stop() {}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
