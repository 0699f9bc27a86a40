// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the teachy client: it opens the
// local replica, wires the sync services, and runs the background workers
// alongside the terminal UI.
package client
