// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/utils"
	"github.com/soletraderai/teachy-sub001/models"
)

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createSession").Msg(errNoUserID.Error())
		utils.WriteError(w, errNoUserID.Error(), http.StatusBadRequest)
		return
	}

	var session models.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Err(err).Str("func", "*Handler.createSession").Msg(errInvalidJSON.Error())
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	remote, err := h.services.SessionService.UpsertSession(ctx, userID, session)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.createSession", err)
		return
	}

	log.Debug().Str("session_id", session.ID).Str("remote_id", remote.RemoteID).Msg("session stored")
	utils.WriteJSON(w, models.CreateSessionResponse{RemoteID: remote.RemoteID}, http.StatusCreated)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	userID, key, ok := h.sessionTarget(w, r, "*Handler.getSession")
	if !ok {
		return
	}

	remote, err := h.services.SessionService.GetSession(r.Context(), userID, key)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.getSession", err)
		return
	}

	utils.WriteJSON(w, remote, http.StatusOK)
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request) {
	userID, key, ok := h.sessionTarget(w, r, "*Handler.updateSession")
	if !ok {
		return
	}

	var update models.SessionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateSession").Msg(errInvalidJSON.Error())
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	remote, err := h.services.SessionService.UpdateSession(r.Context(), userID, key, update)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.updateSession", err)
		return
	}

	utils.WriteJSON(w, remote, http.StatusOK)
}

func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	userID, key, ok := h.sessionTarget(w, r, "*Handler.completeSession")
	if !ok {
		return
	}

	remote, err := h.services.SessionService.CompleteSession(r.Context(), userID, key)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.completeSession", err)
		return
	}

	utils.WriteJSON(w, remote, http.StatusOK)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	userID, key, ok := h.sessionTarget(w, r, "*Handler.deleteSession")
	if !ok {
		return
	}

	if err := h.services.SessionService.DeleteSession(r.Context(), userID, key); err != nil {
		h.writeServiceError(w, r, "*Handler.deleteSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		logger.FromRequest(r).Error().Str("func", "*Handler.listSessions").Msg(errNoUserID.Error())
		utils.WriteError(w, errNoUserID.Error(), http.StatusBadRequest)
		return
	}

	sessions, err := h.services.SessionService.ListSessions(ctx, userID)
	if err != nil {
		h.writeServiceError(w, r, "*Handler.listSessions", err)
		return
	}
	if sessions == nil {
		sessions = []models.RemoteSession{}
	}

	utils.WriteJSON(w, models.ListSessionsResponse{Sessions: sessions, Length: len(sessions)}, http.StatusOK)
}

func (h *Handler) logCommitment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.logCommitment").Msg(errNoUserID.Error())
		utils.WriteError(w, errNoUserID.Error(), http.StatusBadRequest)
		return
	}

	var commitment models.Commitment
	if err := json.NewDecoder(r.Body).Decode(&commitment); err != nil {
		log.Err(err).Str("func", "*Handler.logCommitment").Msg(errInvalidJSON.Error())
		utils.WriteError(w, errInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.SessionService.LogCommitment(ctx, userID, commitment); err != nil {
		h.writeServiceError(w, r, "*Handler.logCommitment", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// sessionTarget resolves the caller and the {key} URL parameter. It writes
// the error response itself and reports false when either is missing.
func (h *Handler) sessionTarget(w http.ResponseWriter, r *http.Request, fn string) (string, string, bool) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", fn).Msg(errNoUserID.Error())
		utils.WriteError(w, errNoUserID.Error(), http.StatusBadRequest)
		return "", "", false
	}

	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if key == "" {
		log.Error().Str("func", fn).Msg(errEmptyKeyParam.Error())
		utils.WriteError(w, errEmptyKeyParam.Error(), http.StatusBadRequest)
		return "", "", false
	}

	return userID, key, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteError(w, messageFromError(err, status), status)
}
