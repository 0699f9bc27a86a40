// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the remote session store.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging and compression are handled in this
// package before requests are delegated to the service layer.
package http
