// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/soletraderai/teachy-sub001/internal/config"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, serverURL string) *httpRemoteGateway {
	t.Helper()

	g, err := NewHTTPRemoteGateway(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return g.(*httpRemoteGateway)
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://sessions.example.com/", want: "https://sessions.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetToken_TrimsAndAttaches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"sessions":[],"length":0}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL)
	g.SetToken("  tok ")
	assert.Equal(t, "tok", g.Token())

	_, err := g.List(context.Background())
	require.NoError(t, err)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreate_Success(t *testing.T) {
	session := models.Session{ID: "c-1", CreatedAt: 10, Title: "Intro", Status: models.StatusOverview}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sessions", r.URL.Path)

		var got models.Session
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, session.ID, got.ID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"remote_id":"r-1"}`))
	}))
	defer srv.Close()

	remoteID, err := newTestGateway(t, srv.URL).Create(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "r-1", remoteID)
}

func TestCreate_StatusMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   error
		retryable bool
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrValidation},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantErr: ErrValidation},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrAuth},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrAuth},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "too many requests", status: http.StatusTooManyRequests, wantErr: ErrNetwork, retryable: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrNetwork, retryable: true},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrNetwork, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			defer srv.Close()

			_, err := newTestGateway(t, srv.URL).Create(context.Background(), models.Session{ID: "c-1"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "nope")
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestCreate_TransportFailureIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestGateway(t, url).Create(context.Background(), models.Session{ID: "c-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── Update / Complete / Delete ───────────────────────────────────────────────

func TestUpdate_SendsPartialBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/sessions/r-1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "renamed", body["title"])
		assert.NotContains(t, body, "score")

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	title := "renamed"
	err := newTestGateway(t, srv.URL).Update(context.Background(), "r-1", models.SessionUpdate{Title: &title})
	require.NoError(t, err)
}

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sessions/c-1/complete", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestGateway(t, srv.URL).Complete(context.Background(), "c-1"))
}

func TestDelete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestGateway(t, srv.URL).Delete(context.Background(), "c-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── List / LogCommitment ─────────────────────────────────────────────────────

func TestList_FillsRemoteID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ListSessionsResponse{
			Sessions: []models.RemoteSession{
				{RemoteID: "r-1", Session: models.Session{ID: "a", CreatedAt: 5}},
			},
			Length: 1,
		})
	}))
	defer srv.Close()

	sessions, err := newTestGateway(t, srv.URL).List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "r-1", sessions[0].Session.RemoteID)
	assert.Equal(t, "a", sessions[0].Session.ID)
}

func TestLogCommitment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/commitments", r.URL.Path)
		var c models.Commitment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		assert.Equal(t, 7, c.MinutesSpent)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := newTestGateway(t, srv.URL).LogCommitment(context.Background(), models.Commitment{SessionID: "a", MinutesSpent: 7})
	require.NoError(t, err)
}
