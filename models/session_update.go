// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionUpdate is a partial change to a Session.
// Only non-nil fields are applied (partial update support).
type SessionUpdate struct {
	Title    *string        `json:"title,omitempty"`
	Status   *SessionStatus `json:"status,omitempty"`
	Score    *int           `json:"score,omitempty"`
	Topics   []Topic        `json:"topics"`
	Progress *Progress      `json:"progress,omitempty"`

	// ClearProgress drops the pause/resume state entirely. It wins over
	// Progress when both are set.
	ClearProgress bool `json:"clear_progress,omitempty"`

	// Force allows Status to move backwards. Only used when the remote
	// store applies a full replacement.
	Force bool `json:"-"`
}

// IsEmpty reports whether the update carries no change.
func (u SessionUpdate) IsEmpty() bool {
	return u.Title == nil && u.Status == nil && u.Score == nil &&
		u.Topics == nil && u.Progress == nil && !u.ClearProgress
}

// Apply returns a copy of s with the update merged in. A status that would
// move the session backwards is ignored unless Force is set.
func (u SessionUpdate) Apply(s Session) Session {
	out := s.Clone()

	if u.Title != nil {
		out.Title = *u.Title
	}
	if u.Status != nil && (u.Force || out.Status.CanAdvanceTo(*u.Status)) {
		out.Status = *u.Status
	}
	if u.Score != nil {
		out.Score = *u.Score
	}
	if u.Topics != nil {
		out.Topics = Session{Topics: u.Topics}.Clone().Topics
	}
	if u.Progress != nil {
		out.Progress = Session{Progress: u.Progress}.Clone().Progress
	}
	if u.ClearProgress {
		out.Progress = nil
	}

	return out
}

// Clone returns a deep copy of u that shares no pointers or slices with it.
func (u SessionUpdate) Clone() SessionUpdate {
	out := u
	if u.Title != nil {
		title := *u.Title
		out.Title = &title
	}
	if u.Status != nil {
		status := *u.Status
		out.Status = &status
	}
	if u.Score != nil {
		score := *u.Score
		out.Score = &score
	}
	if u.Topics != nil {
		out.Topics = Session{Topics: u.Topics}.Clone().Topics
	}
	if u.Progress != nil {
		out.Progress = Session{Progress: u.Progress}.Clone().Progress
	}
	return out
}

// FullUpdate builds an update carrying every payload field of s.
func FullUpdate(s Session) SessionUpdate {
	c := s.Clone()
	status := c.Status
	score := c.Score
	title := c.Title
	u := SessionUpdate{
		Title:  &title,
		Status: &status,
		Score:  &score,
		Topics: c.Topics,
	}
	if c.Progress != nil {
		u.Progress = c.Progress
	} else {
		u.ClearProgress = true
	}
	if u.Topics == nil {
		u.Topics = []Topic{}
	}
	return u
}

// Completes reports whether moving from prev to next finishes the session.
func Completes(prev, next Session) bool {
	return prev.Status != StatusCompleted && next.Status == StatusCompleted
}
