// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey carries the authenticated subject set by the auth middleware.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the subject stored under UserIDCtxKey.
// An empty subject is reported as missing.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}
