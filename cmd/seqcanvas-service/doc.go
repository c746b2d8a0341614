// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

// Command seqcanvas-service runs the bridge between a notebook host's
// canvas UI and a pipeline run registry. It ingests canvas webhooks
// over HTTP, routes interactions through the interaction handler, and
// renders results back onto the originating canvas.
//
// Configuration comes from a YAML file (--config flag or the
// SEQCANVAS_CONFIG environment variable); credentials come from the
// environment only. See lib/config.
package main
