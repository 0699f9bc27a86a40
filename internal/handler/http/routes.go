// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the remote session store.
//
//	GET    /api/sessions                 list the caller's sessions
//	POST   /api/sessions                 create or upsert by client id
//	GET    /api/sessions/{key}           read one session
//	PATCH  /api/sessions/{key}           partial update
//	POST   /api/sessions/{key}/complete  mark completed
//	DELETE /api/sessions/{key}           delete
//	POST   /api/commitments              log time spent
//
// {key} is either the remote id or the client-generated session id.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(withGZip, middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/sessions", func(r chi.Router) {
			r.Get("/", h.listSessions)
			r.Post("/", h.createSession)

			r.Route("/{key}", func(r chi.Router) {
				r.Get("/", h.getSession)
				r.Patch("/", h.updateSession)
				r.Delete("/", h.deleteSession)
				r.Post("/complete", h.completeSession)
			})
		})

		r.Post("/api/commitments", h.logCommitment)
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
