// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	sessions ClientSessionService
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that drains the sync queue and reconciles
// with the remote store on a ticker. The job is idle until Start or Run is
// called.
func NewClientSyncJob(sessions ClientSessionService, interval time.Duration) ClientSyncJob {
	return &clientSyncJob{sessions: sessions, interval: interval}
}

// Run implements workers.Worker.
func (j *clientSyncJob) Run() {
	j.Start(context.Background(), j.interval)
}

// Start stops any previously running job, then launches a goroutine that
// retries pending writes and syncs every interval. A non-positive interval
// defaults to 5 minutes. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
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

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sessions.RetryPendingSyncs(jobCtx)
				j.sessions.SyncWithCloud(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
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
