// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

// Package interaction implements the canvas interaction state machine:
// decoding inbound canvas events into tagged actions, executing each
// action inside a host-tracked session with a guaranteed terminal
// status, and rendering the search, list, detail, and confirmation
// views against the notebook host.
//
// The package owns control flow and error policy. It talks to the run
// registry and the notebook host only through the Registry and
// Notebook interfaces, so handlers are testable without either
// service. One invocation handles one event on one goroutine; the
// only shared mutable state is the canvas itself, which is read and
// then replaced wholesale — two interactions racing on the same
// canvas can lose an update, which is accepted.
package interaction
