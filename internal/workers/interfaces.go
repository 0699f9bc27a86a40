// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the client's background execution: the Worker
// lifecycle, a Workers aggregate that starts and stops several workers
// together, and a bounded Pool that runs submitted tasks off the caller's
// goroutine and reports their outcome on a channel.
package workers

// Worker is a long-running background component.
//
// Run starts the worker and returns immediately; any processing happens on
// goroutines the worker owns. Stop blocks until those goroutines exit.
type Worker interface {
	Run()
	Stop()
}
