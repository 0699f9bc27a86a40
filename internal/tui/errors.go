// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/soletraderai/teachy-sub001/internal/adapter"
	"github.com/soletraderai/teachy-sub001/internal/service"
)

var errNoServices = errors.New("tui: client services are required")

// humanizeError turns service errors into a line for the status bar.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNetwork):
		return "Remote store unreachable, changes stay queued"
	case errors.Is(err, adapter.ErrAuth), errors.Is(err, service.ErrTokenIsExpired):
		return "Sign-in expired, press i to sign in again"
	case errors.Is(err, service.ErrInvalidToken):
		return "That token is not valid"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Sign in first (press i)"
	default:
		return err.Error()
	}
}
