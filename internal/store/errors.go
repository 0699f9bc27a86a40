// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when a session addressed by remote id or
	// client id does not exist for the caller.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionNotSaved is returned when an upsert completes without
	// returning the stored row.
	ErrSessionNotSaved = errors.New("session was not saved")

	// ErrInvalidSessionData is returned when the database rejects a row
	// because of a constraint or data exception.
	ErrInvalidSessionData = errors.New("invalid session data")

	// ErrStorageUnavailable wraps driver errors classified as transient.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	// ErrKeyNotFound is returned by the local key/value repository.
	ErrKeyNotFound = errors.New("key was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan session row")
	ErrScanningRows         = errors.New("failed to scan session rows")
	ErrEncodingPayload      = errors.New("failed to encode session payload")
	ErrDecodingPayload      = errors.New("failed to decode session payload")
)
