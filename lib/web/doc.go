// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

// Package web provides the HTTP serving layer for the bridge: a
// lifecycle-managed TCP server with graceful shutdown, and HMAC
// signature verification for inbound notebook-host webhooks.
package web
