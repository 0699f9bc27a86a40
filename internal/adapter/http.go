// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/soletraderai/teachy-sub001/internal/config"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/utils"
	"github.com/soletraderai/teachy-sub001/models"
)

type httpRemoteGateway struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteGateway constructs the HTTP/REST implementation of
// [RemoteGateway]. The base URL comes from cfg.HTTPAddress; a missing scheme
// defaults to http.
func NewHTTPRemoteGateway(cfg config.ClientAdapter, logger *logger.Logger) (RemoteGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRemoteGateway{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteGateway].
func (h *httpRemoteGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteGateway].
func (h *httpRemoteGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Create implements [RemoteGateway]. POST /api/sessions
func (h *httpRemoteGateway) Create(ctx context.Context, session models.Session) (string, error) {
	var created models.CreateSessionResponse

	resp, err := h.authedRequest(ctx).
		SetBody(session).
		SetResult(&created).
		Post("/api/sessions")
	if err != nil {
		return "", mapTransportError("create session", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "*httpRemoteGateway.Create").Str("session_id", session.ID).Err(err).Msg("create rejected")
		return "", err
	}

	return created.RemoteID, nil
}

// Update implements [RemoteGateway]. PATCH /api/sessions/{key}
func (h *httpRemoteGateway) Update(ctx context.Context, key string, update models.SessionUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		SetBody(update).
		Patch("/api/sessions/{key}")
	if err != nil {
		return mapTransportError("update session", err)
	}

	return mapHTTPError(resp)
}

// Complete implements [RemoteGateway]. POST /api/sessions/{key}/complete
func (h *httpRemoteGateway) Complete(ctx context.Context, key string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		Post("/api/sessions/{key}/complete")
	if err != nil {
		return mapTransportError("complete session", err)
	}

	return mapHTTPError(resp)
}

// Delete implements [RemoteGateway]. DELETE /api/sessions/{key}
func (h *httpRemoteGateway) Delete(ctx context.Context, key string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("key", key).
		Delete("/api/sessions/{key}")
	if err != nil {
		return mapTransportError("delete session", err)
	}

	return mapHTTPError(resp)
}

// List implements [RemoteGateway]. GET /api/sessions
func (h *httpRemoteGateway) List(ctx context.Context) ([]models.RemoteSession, error) {
	var list models.ListSessionsResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/api/sessions")
	if err != nil {
		return nil, mapTransportError("list sessions", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	for i := range list.Sessions {
		list.Sessions[i].Session.RemoteID = list.Sessions[i].RemoteID
	}
	return list.Sessions, nil
}

// LogCommitment implements [RemoteGateway]. POST /api/commitments
func (h *httpRemoteGateway) LogCommitment(ctx context.Context, commitment models.Commitment) error {
	resp, err := h.authedRequest(ctx).
		SetBody(commitment).
		Post("/api/commitments")
	if err != nil {
		return mapTransportError("log commitment", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
