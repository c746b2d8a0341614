// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

// Package benchling provides a typed Go client for the notebook host
// capabilities the canvas bridge consumes: reading and replacing app
// canvases, persisting binary artifacts (blobs) and minting their
// download URLs, creating schema records, and driving app sessions
// (the host-tracked progress record behind every canvas operation).
//
// The client authenticates with the app's API client id and secret
// via HTTP basic auth. Host errors are returned as plain wrapped
// errors — the canvas interaction layer treats them as internal and
// never surfaces their text to the user.
package benchling
