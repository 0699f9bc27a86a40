// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sort"
	"time"

	"github.com/soletraderai/teachy-sub001/models"
)

// FailureOutcome reports what MarkFailed did with a failed remote write.
type FailureOutcome int

const (
	// FailureIgnored means the session no longer exists locally.
	FailureIgnored FailureOutcome = iota
	// FailureQueued means the entry stays pending for a later retry.
	FailureQueued
	// FailureDropped means the retry ceiling was exceeded.
	FailureDropped
)

// SyncQueue holds per-session bookkeeping for remote writes that have not
// been acknowledged. It is guarded by the owning RecordStore's lock.
type SyncQueue struct {
	store *RecordStore

	entries map[string]models.SyncQueueEntry
	seqs    map[string]int64
	nextSeq int64

	repository LocalSyncQueueRepository
	now        func() time.Time
}

func newSyncQueue(s *RecordStore, repository LocalSyncQueueRepository) *SyncQueue {
	return &SyncQueue{
		store:      s,
		entries:    make(map[string]models.SyncQueueEntry),
		seqs:       make(map[string]int64),
		repository: repository,
		now:        time.Now,
	}
}

// MarkFailed records a retryable failure for the session. With n attempts
// already recorded, n+1 > ceiling drops the entry; otherwise the entry is
// kept pending with n+1 attempts. A failure for a session that no longer
// exists is ignored, so a delete always wins over an in-flight write.
func (q *SyncQueue) MarkFailed(ctx context.Context, id, cause string, ceiling int) (models.SyncQueueEntry, FailureOutcome) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	if !q.store.existsLocked(id) {
		q.removeLocked(ctx, id)
		return models.SyncQueueEntry{}, FailureIgnored
	}

	entry := q.entries[id]
	entry.SessionID = id
	entry.LastError = cause
	entry.UpdatedAt = q.now()

	if entry.Attempts+1 > ceiling {
		entry.Pending = false
		q.saveLocked(ctx, entry)
		return entry, FailureDropped
	}

	entry.Attempts++
	entry.Pending = true
	q.saveLocked(ctx, entry)
	return entry, FailureQueued
}

// Drop marks the entry terminal without consuming an attempt. It is used for
// failures that retrying can't fix, such as validation errors.
func (q *SyncQueue) Drop(ctx context.Context, id, cause string) bool {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	if !q.store.existsLocked(id) {
		q.removeLocked(ctx, id)
		return false
	}

	entry := q.entries[id]
	entry.SessionID = id
	entry.LastError = cause
	entry.Pending = false
	entry.UpdatedAt = q.now()
	q.saveLocked(ctx, entry)
	return true
}

// Hold keeps the entry pending with its attempt count unchanged. It is used
// when the write failed for lack of credentials.
func (q *SyncQueue) Hold(ctx context.Context, id, cause string) bool {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	if !q.store.existsLocked(id) {
		q.removeLocked(ctx, id)
		return false
	}

	entry := q.entries[id]
	entry.SessionID = id
	entry.LastError = cause
	entry.Pending = true
	entry.UpdatedAt = q.now()
	q.saveLocked(ctx, entry)
	return true
}

// MarkSuccess removes the entry for the session.
func (q *SyncQueue) MarkSuccess(ctx context.Context, id string) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	q.removeLocked(ctx, id)
}

// Remove is MarkSuccess for entries cleared without a network call.
func (q *SyncQueue) Remove(ctx context.Context, id string) {
	q.MarkSuccess(ctx, id)
}

// ResetTerminal revives a dropped entry with zero attempts. It runs on every
// new local mutation of the session, so the mutation gets a fresh budget.
func (q *SyncQueue) ResetTerminal(ctx context.Context, id string) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	entry, ok := q.entries[id]
	if !ok || entry.Pending {
		return
	}

	entry.Pending = true
	entry.Attempts = 0
	entry.UpdatedAt = q.now()
	q.saveLocked(ctx, entry)
}

// Entry returns the entry for the session, if any.
func (q *SyncQueue) Entry(id string) (models.SyncQueueEntry, bool) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	entry, ok := q.entries[id]
	return entry, ok
}

// Snapshot returns the pending entries in the order they were first queued.
func (q *SyncQueue) Snapshot() []models.SyncQueueEntry {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	ids := q.pendingIDsLocked()
	out := make([]models.SyncQueueEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, q.entries[id])
	}
	return out
}

// PendingIDs returns the ids of sessions awaiting a retry.
func (q *SyncQueue) PendingIDs() []string {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	return q.pendingIDsLocked()
}

// PendingCount returns the number of sessions awaiting a retry.
func (q *SyncQueue) PendingCount() int {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	return q.pendingCountLocked()
}

// Errors returns the last failure of every tracked session, pending or
// dropped.
func (q *SyncQueue) Errors() map[string]models.SyncError {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()

	out := make(map[string]models.SyncError)
	for id, entry := range q.entries {
		if entry.LastError == "" {
			continue
		}
		out[id] = models.SyncError{LastError: entry.LastError, Attempts: entry.Attempts}
	}
	return out
}

func (q *SyncQueue) pendingIDsLocked() []string {
	ids := make([]string, 0, len(q.entries))
	for id, entry := range q.entries {
		if entry.Pending {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return q.seqs[ids[i]] < q.seqs[ids[j]]
	})
	return ids
}

func (q *SyncQueue) pendingCountLocked() int {
	n := 0
	for _, entry := range q.entries {
		if entry.Pending {
			n++
		}
	}
	return n
}

func (q *SyncQueue) saveLocked(ctx context.Context, entry models.SyncQueueEntry) {
	seq, ok := q.seqs[entry.SessionID]
	if !ok {
		q.nextSeq++
		seq = q.nextSeq
		q.seqs[entry.SessionID] = seq
	}
	q.entries[entry.SessionID] = entry

	if q.repository == nil {
		return
	}
	if err := q.repository.SaveEntry(ctx, entry, seq); err != nil {
		q.store.logger.Err(err).
			Str("func", "SyncQueue.save").
			Str("session_id", entry.SessionID).
			Msg("failed to persist sync queue entry")
	}
}

func (q *SyncQueue) removeLocked(ctx context.Context, id string) {
	if _, ok := q.entries[id]; !ok {
		return
	}
	delete(q.entries, id)
	delete(q.seqs, id)

	if q.repository == nil {
		return
	}
	if err := q.repository.DeleteEntry(ctx, id); err != nil {
		q.store.logger.Err(err).
			Str("func", "SyncQueue.remove").
			Str("session_id", id).
			Msg("failed to persist sync queue removal")
	}
}

func (q *SyncQueue) clearLocked(ctx context.Context) {
	clear(q.entries)
	clear(q.seqs)
	q.nextSeq = 0

	if q.repository == nil {
		return
	}
	if err := q.repository.DeleteAllEntries(ctx); err != nil {
		q.store.logger.Err(err).Str("func", "SyncQueue.clear").Msg("failed to persist cleared sync queue")
	}
}

func (q *SyncQueue) loadLocked(ctx context.Context) error {
	clear(q.entries)
	clear(q.seqs)
	q.nextSeq = 0

	if q.repository == nil {
		return nil
	}

	stored, err := q.repository.LoadEntries(ctx)
	if err != nil {
		return err
	}
	for _, item := range stored {
		q.entries[item.Entry.SessionID] = item.Entry
		q.seqs[item.Entry.SessionID] = item.Seq
		if item.Seq > q.nextSeq {
			q.nextSeq = item.Seq
		}
	}
	return nil
}
