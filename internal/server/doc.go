// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the relay's HTTP listener.
//
// It owns startup, stop-signal handling and graceful shutdown, letting
// in-flight requests finish before the process exits.
package server
