// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// SessionStatus is the lifecycle stage of a learning session.
// It only moves forward: overview -> active -> completed.
type SessionStatus string

const (
	StatusOverview  SessionStatus = "overview"
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
)

func (s SessionStatus) rank() int {
	switch s {
	case StatusOverview:
		return 1
	case StatusActive:
		return 2
	case StatusCompleted:
		return 3
	default:
		return 0
	}
}

// Valid reports whether s is one of the known statuses.
func (s SessionStatus) Valid() bool {
	return s.rank() > 0
}

// CanAdvanceTo reports whether moving from s to next keeps the status
// monotonic. Staying on the same status is allowed.
func (s SessionStatus) CanAdvanceTo(next SessionStatus) bool {
	return next.Valid() && next.rank() >= s.rank()
}

// Session is the unit of synchronization between the local record store and
// the remote session store. The sync engine treats everything except ID,
// CreatedAt and Status as an opaque payload.
type Session struct {
	// ID is generated on the client, never changes, and is the idempotency
	// key for remote writes.
	ID string `json:"id" db:"id"`

	// CreatedAt is the creation instant in unix milliseconds. It is the only
	// tie-breaker used during reconciliation.
	CreatedAt int64 `json:"created_at" db:"created_at"`

	Title    string        `json:"title" db:"title"`
	VideoURL string        `json:"video_url,omitempty" db:"video_url"`
	Status   SessionStatus `json:"status" db:"status"`
	Score    int           `json:"score" db:"score"`
	Topics   []Topic       `json:"topics"`
	Progress *Progress     `json:"progress,omitempty"`

	// RemoteID is the identifier assigned by the remote store after the
	// first acknowledged create. Empty until then.
	RemoteID string `json:"remote_id,omitempty" db:"remote_id"`
}

// Topic groups the questions of one section of a session.
type Topic struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	Completed bool       `json:"completed"`
}

// Question is a single prompt inside a topic together with the learner's
// answer, if any.
type Question struct {
	ID       string `json:"id"`
	Prompt   string `json:"prompt"`
	Answer   string `json:"answer,omitempty"`
	Feedback string `json:"feedback,omitempty"`
	Answered bool   `json:"answered"`
}

// Progress is the resumable position inside an active session.
type Progress struct {
	CurrentTopicIndex    int        `json:"current_topic_index"`
	CurrentQuestionIndex int        `json:"current_question_index"`
	QuestionsAnswered    int        `json:"questions_answered"`
	ElapsedSeconds       int64      `json:"elapsed_seconds"`
	PausedAt             *time.Time `json:"paused_at,omitempty"`
}

// Paused reports whether the session is currently paused.
func (p *Progress) Paused() bool {
	return p != nil && p.PausedAt != nil
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// RemoteKey is the identifier used to address the session in the remote
// store: the remote id once known, the client id before that.
func (s Session) RemoteKey() string {
	if s.RemoteID != "" {
		return s.RemoteID
	}
	return s.ID
}

// Clone returns a deep copy of s, so callers can hand out records without
// sharing topic, question or progress memory.
func (s Session) Clone() Session {
	out := s
	if s.Topics != nil {
		out.Topics = make([]Topic, len(s.Topics))
		for i, t := range s.Topics {
			t.Questions = slices.Clone(t.Questions)
			out.Topics[i] = t
		}
	}
	if s.Progress != nil {
		p := *s.Progress
		if s.Progress.PausedAt != nil {
			pausedAt := *s.Progress.PausedAt
			p.PausedAt = &pausedAt
		}
		out.Progress = &p
	}
	return out
}

// QuestionsAnswered counts answered questions across all topics.
func (s Session) QuestionsAnswered() int {
	n := 0
	for _, t := range s.Topics {
		for _, q := range t.Questions {
			if q.Answered {
				n++
			}
		}
	}
	return n
}
