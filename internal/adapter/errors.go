// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNetwork covers transport failures, timeouts, 429 and 5xx responses.
	ErrNetwork = errors.New("remote store unreachable")
	// ErrAuth is returned for 401 and 403 responses.
	ErrAuth = errors.New("remote store rejected credentials")
	// ErrValidation is returned for 400 and 422 responses.
	ErrValidation = errors.New("remote store rejected session")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("session not found on remote store")

	ErrEmptyAddress = errors.New("empty address")
)

// IsRetryable reports whether err is worth another attempt.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrNetwork)
}
