// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrSessionNotFound     = errors.New("session not found")

	ErrValidationNoUserID                    = errors.New("no user id provided")
	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")

	ErrNotAuthenticated        = errors.New("not authenticated")
	ErrInvalidToken            = errors.New("invalid token")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrSyncFailed      = errors.New("sync with remote store failed")
	ErrMigrationFailed = errors.New("migration failed: no session was uploaded")
)
