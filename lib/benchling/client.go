// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package benchling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/seqcanvas/seqcanvas/lib/netutil"
)

// requestTimeout bounds every host API call. Blob creation carries
// report payloads, so the bound is sized for uploads, not just JSON.
const requestTimeout = 30 * time.Second

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the tenant API root, e.g.
	// "https://example.benchling.com/api/v2". Required. Must use
	// HTTPS.
	BaseURL string

	// AppID is the app definition id, required for session creation.
	AppID string

	// ClientID and ClientSecret authenticate the app's API client
	// via basic auth. Both required.
	ClientID     string
	ClientSecret string

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client is a typed notebook host API client.
type Client struct {
	baseURL      string
	appID        string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewClient creates a notebook host client from the given
// configuration.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("benchling: BaseURL is required")
	}
	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("benchling: API client requires HTTPS (got %q)", baseURL)
	}
	if config.AppID == "" {
		return nil, fmt.Errorf("benchling: AppID is required")
	}
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, fmt.Errorf("benchling: ClientID and ClientSecret are required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:      baseURL,
		appID:        config.AppID,
		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
		httpClient:   httpClient,
		logger:       logger,
	}, nil
}

// do executes an authenticated request with an optional JSON body and
// decodes the JSON response into result (pass nil to discard).
func (client *Client) do(ctx context.Context, method, path string, requestBody, result any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var bodyReader *bytes.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("benchling: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("benchling: creating request: %w", err)
	}
	request.SetBasicAuth(client.clientID, client.clientSecret)
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("benchling: %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("benchling: %s %s: HTTP %d: %s",
			method, path, response.StatusCode, netutil.ErrorBody(response.Body))
	}

	if result == nil {
		return nil
	}
	if err := netutil.DecodeResponse(response.Body, result); err != nil {
		return fmt.Errorf("benchling: decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (client *Client) get(ctx context.Context, path string, result any) error {
	return client.do(ctx, http.MethodGet, path, nil, result)
}

func (client *Client) post(ctx context.Context, path string, requestBody, result any) error {
	return client.do(ctx, http.MethodPost, path, requestBody, result)
}

func (client *Client) patch(ctx context.Context, path string, requestBody, result any) error {
	return client.do(ctx, http.MethodPatch, path, requestBody, result)
}
