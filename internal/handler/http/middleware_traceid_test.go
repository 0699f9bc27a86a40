// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_EchoesCallerID(t *testing.T) {
	rr, _ := executeWithTraceID(&Handler{logger: logger.Nop()}, "abc-123")

	assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rr1, _ := executeWithTraceID(h, "")
	rr2, _ := executeWithTraceID(h, "")

	id1 := rr1.Header().Get(traceIDHeader)
	_, err := uuid.Parse(id1)
	require.NoError(t, err)
	assert.NotEqual(t, id1, rr2.Header().Get(traceIDHeader))
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	_, req := executeWithTraceID(h, "trace-7")
	require.NotNil(t, req)
	logger.FromRequest(req).Info().Msg("inside")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-7", entry["trace_id"])
}
