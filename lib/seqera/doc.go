// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

// Package seqera provides a typed Go client for the Seqera Platform
// REST API, covering the subset the canvas bridge needs: listing
// pipeline runs, fetching run detail and reports, downloading report
// content, and resolving workspace names to numeric ids.
//
// The client is stateless and authenticates every request with a
// bearer token. Requests are single-attempt with fixed timeouts (10
// seconds for API calls, 30 seconds for content downloads) — failures
// surface immediately as registry errors carrying the upstream HTTP
// status; retry policy, if any, belongs to the caller's host.
//
// Responses are decoded once at this boundary into explicit structs
// with defaulting. Raw payloads never leave the package.
package seqera
