// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_SuccessKeepsNoBody(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte(`{"sessions":`))
	_, _ = w.Write([]byte(`[]}`))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 15, w.size)
	assert.Empty(t, w.failure)
	assert.Equal(t, `{"sessions":[]}`, rr.Body.String())
}

func TestResponseWriter_CapturesFailureBody(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":"session not found"}`))

	assert.Equal(t, `{"error":"session not found"}`, string(w.failure))
}

func TestResponseWriter_TruncatesFailureBody(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write([]byte(strings.Repeat("a", maxCapturedBody-10)))
	_, _ = w.Write([]byte(strings.Repeat("b", 40)))

	assert.Len(t, w.failure, maxCapturedBody)
	assert.Equal(t, maxCapturedBody+30, w.size)
}
