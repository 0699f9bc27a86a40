// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/soletraderai/teachy-sub001/internal/app"
	"github.com/soletraderai/teachy-sub001/internal/service"
	"github.com/soletraderai/teachy-sub001/internal/store"
	"github.com/soletraderai/teachy-sub001/internal/validators"
)

// errorStatusMap is consulted in order, so wrapped validation details that
// also match a broader sentinel resolve to the first entry.
var errorStatusMap = []struct {
	target error
	status int
}{
	{validators.ErrNoFieldsToUpdate, http.StatusUnprocessableEntity},
	{validators.ErrInvalidCommitment, http.StatusUnprocessableEntity},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrValidationNoUserID, http.StatusBadRequest},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrUnauthorizedAccessToDifferentUserData, http.StatusForbidden},

	{store.ErrSessionNotFound, http.StatusNotFound},
	{store.ErrInvalidSessionData, http.StatusBadRequest},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError hides internal failures from the caller.
func messageFromError(err error, status int) string {
	switch {
	case status == http.StatusServiceUnavailable:
		return app.MsgServiceUnavailable
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	}
	return err.Error()
}
