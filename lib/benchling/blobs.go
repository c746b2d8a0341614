// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package benchling

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Blob references a binary artifact persisted in the notebook host.
type Blob struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateBlob persists data as a named binary artifact. The host
// requires an MD5 of the payload for integrity checking.
func (client *Client) CreateBlob(ctx context.Context, name, mimeType string, data []byte) (*Blob, error) {
	digest := md5.Sum(data)

	request := struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		MimeType string `json:"mimeType"`
		Data64   string `json:"data64"`
		MD5      string `json:"md5"`
	}{
		Name:     name,
		Type:     "RAW_FILE",
		MimeType: mimeType,
		Data64:   base64.StdEncoding.EncodeToString(data),
		MD5:      hex.EncodeToString(digest[:]),
	}

	var blob Blob
	if err := client.post(ctx, "/blobs", request, &blob); err != nil {
		return nil, fmt.Errorf("creating blob %q: %w", name, err)
	}
	return &blob, nil
}

// BlobDownloadURL mints a time-limited download URL for a blob.
func (client *Client) BlobDownloadURL(ctx context.Context, blobID string) (string, error) {
	var response struct {
		DownloadURL string `json:"downloadURL"`
	}
	if err := client.post(ctx, "/blobs/"+blobID+"/download-url", nil, &response); err != nil {
		return "", fmt.Errorf("minting download url for blob %s: %w", blobID, err)
	}
	return response.DownloadURL, nil
}
