// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSessionID  = errors.New("invalid session id")
	ErrInvalidCreatedAt  = errors.New("invalid created_at")
	ErrEmptyPayload      = errors.New("session payload is required")
	ErrInvalidStatus     = errors.New("invalid session status")
	ErrInvalidScore      = errors.New("score cannot be negative")
	ErrInvalidProgress   = errors.New("invalid session progress")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidCommitment = errors.New("invalid commitment")
)
