// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pim-keeper/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService
	collections CollectionManager

	mu       sync.Mutex
	cancel   context.CancelFunc
	trigger  chan struct{}
	listener SyncListener
	wg       sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.FullSync on a
// ticker and publishes the local collection set read through collections.
// The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, collections CollectionManager, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		collections: collections,
		trigger:     make(chan struct{}, 1),
		logger:      logger,
	}
}

func (j *clientSyncJob) SetListener(listener SyncListener) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.listener = listener
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a goroutine that syncs once right away and then every interval.
// If interval is zero or negative it defaults to 5 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, userID int64, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.run(jobCtx, userID)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx, userID)
			case <-j.trigger:
				j.run(jobCtx, userID)
				t.Reset(interval)
			}
		}
	}()
}

func (j *clientSyncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) run(ctx context.Context, userID int64) {
	syncErr := j.syncService.FullSync(ctx, userID)
	if ctx.Err() != nil {
		return
	}
	if syncErr != nil {
		j.logger.Err(syncErr).Str("func", "clientSyncJob.run").Int64("user_id", userID).Msg("sync failed")
	}

	j.mu.Lock()
	listener := j.listener
	j.mu.Unlock()
	if listener == nil {
		return
	}

	cols, err := j.collections.List(ctx, userID)
	if err != nil {
		j.logger.Err(err).Str("func", "clientSyncJob.run").Msg("failed to read local collections")
		if syncErr == nil {
			syncErr = err
		}
	}

	listener(SyncEvent{Collections: cols, Err: syncErr, At: time.Now()})
}
