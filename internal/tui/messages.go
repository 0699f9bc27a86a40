// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "time"

// refreshMsg re-reads the record store and sync state.
type refreshMsg time.Time

// actionDoneMsg reports the outcome of a background command.
type actionDoneMsg struct {
	status string
	err    error
}

type clearStatusMsg struct{}
