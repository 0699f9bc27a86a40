// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncQueueEntry tracks one session with an outstanding remote write.
type SyncQueueEntry struct {
	SessionID string `json:"session_id" db:"session_id"`
	LastError string `json:"last_error" db:"last_error"`
	Attempts  int    `json:"attempts" db:"attempts"`

	// Pending is false once the entry has been dropped after exceeding the
	// retry ceiling or on a validation failure. Such entries stay visible in
	// SyncState.SyncErrors but are never retried automatically.
	Pending   bool      `json:"pending" db:"pending"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the name of the database table
// associated with the SyncQueueEntry model.
func (e SyncQueueEntry) TableName() string {
	return "sync_queue"
}

// SyncError is the last failure recorded for a session.
type SyncError struct {
	LastError string `json:"last_error"`
	Attempts  int    `json:"attempts"`
}

// SyncState is the observable sync status rendered by the UI.
type SyncState struct {
	PendingSyncSessions []string             `json:"pending_sync_sessions"`
	SyncErrors          map[string]SyncError `json:"sync_errors"`
	IsSyncing           bool                 `json:"is_syncing"`
	LastSyncedAt        *time.Time           `json:"last_synced_at,omitempty"`

	// LastSyncError describes why the latest SyncWithCloud pass failed.
	// Empty after a successful pass.
	LastSyncError string `json:"last_sync_error,omitempty"`
}

// MigrationResult summarises a local-to-remote migration pass.
type MigrationResult struct {
	Attempted int      `json:"attempted"`
	Succeeded int      `json:"succeeded"`
	Skipped   int      `json:"skipped"`
	Failed    []string `json:"failed,omitempty"`
}
