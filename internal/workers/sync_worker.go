// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pim-keeper/internal/service"
)

// SyncWorker runs the background sync job for one user.
type SyncWorker struct {
	job      service.ClientSyncJob
	userID   int64
	interval time.Duration
}

// NewSyncWorker returns a worker syncing userID every interval.
func NewSyncWorker(job service.ClientSyncJob, userID int64, interval time.Duration) *SyncWorker {
	return &SyncWorker{job: job, userID: userID, interval: interval}
}

func (w *SyncWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.userID, w.interval)
}

func (w *SyncWorker) Stop() {
	w.job.Stop()
}
