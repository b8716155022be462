// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP surface of the relay.
//
// It wires the three relay routes on a chi router, answers CORS preflights
// for any origin, and attaches request tracing and access logging before
// requests reach the service layer. Upstream failures are mapped to the
// per-route error bodies here; provider details stay in the server logs.
package http
