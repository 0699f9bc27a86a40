// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RemoteSession is a session as stored by the remote session store.
type RemoteSession struct {
	RemoteID  string    `json:"remote_id" db:"id"`
	UserID    string    `json:"-" db:"user_id"`
	Session   Session   `json:"session"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the name of the database table
// associated with the RemoteSession model.
func (r RemoteSession) TableName() string {
	return "remote_sessions"
}

// Commitment is a best-effort telemetry record of time spent in a session.
type Commitment struct {
	SessionID         string `json:"session_id" db:"session_id"`
	MinutesSpent      int    `json:"minutes_spent" db:"minutes_spent"`
	QuestionsAnswered int    `json:"questions_answered" db:"questions_answered"`
}

// TableName returns the name of the database table
// associated with the Commitment model.
func (c Commitment) TableName() string {
	return "commitments"
}

// CreateSessionResponse is returned by the remote store after an upsert.
type CreateSessionResponse struct {
	RemoteID string `json:"remote_id"`
}

// ListSessionsResponse is the remote snapshot of the caller's sessions.
type ListSessionsResponse struct {
	Sessions []RemoteSession `json:"sessions"`
	Length   int             `json:"length"`
}

// ErrorResponse is the JSON body written by the remote store on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
