// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

// Package apperr defines the error taxonomy shared by the canvas
// interaction handlers and the registry client.
//
// Every error that can reach a canvas session terminal message is
// classified into one of five kinds. Validation, NotFound,
// Configuration, and Registry errors carry a message written for the
// person clicking buttons on the canvas; their message is surfaced
// verbatim. Everything else is Internal and surfaces only a generic
// message — the underlying cause goes to the structured log, never to
// the canvas.
//
// Classification happens where the error is created (the registry
// client, input validation, config checks). Handlers inspect kinds
// with the predicate helpers (IsNotFound, IsValidation, ...) and never
// match on message strings.
package apperr
