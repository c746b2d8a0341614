// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package benchling

import (
	"context"
	"fmt"
)

// Terminal session statuses. A session is created RUNNING by the host
// and must be driven to exactly one of these.
const (
	SessionSucceeded = "SUCCEEDED"
	SessionFailed    = "FAILED"
)

// Session message styles.
const (
	MessageInfo    = "INFO"
	MessageSuccess = "SUCCESS"
	MessageError   = "ERROR"
)

// Session references a host-tracked app session.
type Session struct {
	ID string `json:"id"`
}

// SessionMessage is one human-readable line shown on the session's
// activity feed.
type SessionMessage struct {
	Content string `json:"content"`
	Style   string `json:"style"`
}

// CreateSession begins a host-tracked session for one operation.
// timeoutSeconds is advisory metadata describing the expected
// operation budget; enforcement, if any, is the host's.
func (client *Client) CreateSession(ctx context.Context, name string, timeoutSeconds int) (*Session, error) {
	request := struct {
		AppID          string `json:"appId"`
		Name           string `json:"name"`
		TimeoutSeconds int    `json:"timeoutSeconds"`
	}{
		AppID:          client.appID,
		Name:           name,
		TimeoutSeconds: timeoutSeconds,
	}

	var session Session
	if err := client.post(ctx, "/app-sessions", request, &session); err != nil {
		return nil, fmt.Errorf("creating session %q: %w", name, err)
	}
	return &session, nil
}

// CloseSession drives a session to a terminal status with its final
// messages.
func (client *Client) CloseSession(ctx context.Context, sessionID, status string, messages []SessionMessage) error {
	request := struct {
		Status   string           `json:"status"`
		Messages []SessionMessage `json:"messages,omitempty"`
	}{
		Status:   status,
		Messages: messages,
	}

	if err := client.patch(ctx, "/app-sessions/"+sessionID, request, nil); err != nil {
		return fmt.Errorf("closing session %s: %w", sessionID, err)
	}
	return nil
}
