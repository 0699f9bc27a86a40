// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract for servers managed by this package.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives and shutdown completes.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
