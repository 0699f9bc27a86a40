// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the session store's HTTP server, including signal
// handling and graceful shutdown.
package server
