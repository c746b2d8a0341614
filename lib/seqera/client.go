// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package seqera

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/seqcanvas/seqcanvas/lib/apperr"
	"github.com/seqcanvas/seqcanvas/lib/netutil"
)

// apiTimeout bounds list, detail, reports, and identity requests.
const apiTimeout = 10 * time.Second

// downloadTimeout bounds report content downloads, which follow a
// redirect to object storage and move real bytes.
const downloadTimeout = 30 * time.Second

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.cloud.seqera.io".
	// Required. Must use HTTPS.
	BaseURL string

	// Token is the bearer access token. Required.
	Token string

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient. Timeouts are applied per request via
	// context deadlines, not on the client.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client is a typed Seqera Platform API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Seqera API client from the given configuration.
// Returns an error if the base URL is missing or not HTTPS, or the
// token is empty.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("seqera: BaseURL is required")
	}
	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("seqera: API client requires HTTPS (got %q)", baseURL)
	}
	if config.Token == "" {
		return nil, fmt.Errorf("seqera: Token is required")
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
		baseURL:    baseURL,
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// get executes a GET request against an API path (with apiTimeout)
// and decodes the JSON response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	body, err := client.do(ctx, path, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return apperr.Registryf(0, "The run registry returned an unreadable response.")
	}
	return nil
}

// download executes a GET request against a content path (with
// downloadTimeout) and returns the raw response bytes. Redirects are
// followed by the underlying HTTP client.
func (client *Client) download(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	return client.do(ctx, path, "")
}

// do executes a single authenticated GET request. One attempt, no
// retries: any transport failure or non-2xx response becomes a
// registry error carrying the upstream status and message.
func (client *Client) do(ctx context.Context, path, accept string) ([]byte, error) {
	url := client.baseURL + path

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("seqera: creating request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+client.token)
	if accept != "" {
		request.Header.Set("Accept", accept)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, apperr.Registryf(0, "Could not reach the run registry: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response)
	}

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, apperr.Registryf(0, "Reading the registry response failed: %v", err)
	}
	return body, nil
}

// parseAPIError converts a non-2xx registry response into a registry
// error. Seqera returns {"message": "..."} bodies for API errors; raw
// bodies (proxies, load balancers) are passed through truncated.
func parseAPIError(response *http.Response) *apperr.Error {
	body := netutil.ErrorBody(response.Body)

	var wireError struct {
		Message string `json:"message"`
	}
	message := body
	if json.Unmarshal([]byte(body), &wireError) == nil && wireError.Message != "" {
		message = wireError.Message
	}
	if len(message) > 200 {
		message = message[:200]
	}

	return apperr.Registryf(response.StatusCode,
		"The run registry returned HTTP %d: %s", response.StatusCode, message)
}
