// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"slices"
)

type Workers struct {
	workers []Worker
}

// NewWorkers returns an aggregate running ws in order.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for _, worker := range slices.Backward(w.workers) {
		worker.Stop()
	}
}
