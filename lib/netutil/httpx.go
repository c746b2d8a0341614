// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides bounded HTTP response reading shared by the
// registry and notebook host clients.
//
// All response body reads are capped at MaxResponseSize so that a
// misbehaving server cannot exhaust process memory. The cap is sized
// for the largest legitimate payload in this system — a pipeline
// report download — with generous headroom; JSON API responses are
// orders of magnitude smaller.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxResponseSize is the bound on HTTP response body reads: 128 MB.
// Pipeline reports (HTML summaries, MultiQC output) run to tens of
// megabytes; JSON API responses are kilobytes.
const MaxResponseSize int64 = 128 << 20

// ReadResponse reads a response body up to MaxResponseSize bytes. Use
// instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// DecodeResponse reads a JSON API response body (up to MaxResponseSize
// bytes) and decodes it into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return json.Unmarshal(data, v)
}

// ErrorBody reads an HTTP error response body for use in diagnostic
// messages. Read errors are ignored — a partial or empty body is still
// useful in an error message.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	return string(data)
}
