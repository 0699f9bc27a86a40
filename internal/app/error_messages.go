// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the fixed response wording of the session server.
//
// Msg* constants are written into JSON error bodies by the HTTP handlers and
// middleware whenever the underlying error must not be shown verbatim.
package app

const (
	// MsgInvalidGzip is returned when a request claims gzip encoding but the
	// body cannot be inflated.
	MsgInvalidGzip = "invalid gzip data"

	// MsgUnauthorized is returned for any bearer token that fails
	// verification for a reason other than expiry.
	MsgUnauthorized = "Unauthorized"

	// MsgNotFound is returned for unknown paths and unsupported methods.
	MsgNotFound = "Not Found"

	// MsgInternalServerError replaces the message of every 5xx response.
	MsgInternalServerError = "Internal Server Error"

	// MsgServiceUnavailable is returned when storage is down or the request
	// ran out of time.
	MsgServiceUnavailable = "Service Unavailable"
)
