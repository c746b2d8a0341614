// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package benchling

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		BaseURL:      server.URL,
		AppID:        "appdef_x7Kq",
		ClientID:     "client_abc",
		ClientSecret: "secret",
		HTTPClient:   server.Client(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewClient() error: %v", err)
	}
	return client
}

func TestClientSendsBasicAuth(t *testing.T) {
	var gotUser, gotPass string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		w.Write([]byte(`{"id":"cnvs_1","blocks":[],"data":{},"enabled":true}`))
	}))

	if _, err := client.GetCanvas(context.Background(), "cnvs_1"); err != nil {
		t.Fatalf("GetCanvas() error: %v", err)
	}
	if gotUser != "client_abc" || gotPass != "secret" {
		t.Errorf("basic auth = %q/%q", gotUser, gotPass)
	}
}

func TestGetCanvas(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/app-canvases/cnvs_1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": "cnvs_1",
			"blocks": [{"id": "b1", "type": "MARKDOWN", "value": "## Runs"}],
			"data": {"search_text": "rnaseq"},
			"enabled": true
		}`))
	}))

	canvas, err := client.GetCanvas(context.Background(), "cnvs_1")
	if err != nil {
		t.Fatalf("GetCanvas() error: %v", err)
	}
	if canvas.Data["search_text"] != "rnaseq" {
		t.Errorf("Data = %+v", canvas.Data)
	}
	if len(canvas.Blocks) != 1 || canvas.Blocks[0].Type != BlockTypeMarkdown {
		t.Errorf("Blocks = %+v", canvas.Blocks)
	}
}

func TestUpdateCanvasOmitsUnsetFields(t *testing.T) {
	var gotBody map[string]json.RawMessage
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %q, want PATCH", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.Write([]byte(`{}`))
	}))

	err := client.UpdateCanvas(context.Background(), "cnvs_1", CanvasUpdate{
		Blocks:  []Block{Markdown("b1", "hello")},
		Enabled: Bool(true),
	})
	if err != nil {
		t.Fatalf("UpdateCanvas() error: %v", err)
	}

	if _, present := gotBody["data"]; present {
		t.Error("unset data was sent in PATCH body")
	}
	if _, present := gotBody["blocks"]; !present {
		t.Error("blocks missing from PATCH body")
	}
}

func TestCreateBlob(t *testing.T) {
	payload := []byte("<html>report</html>")
	var gotBody struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		MimeType string `json:"mimeType"`
		Data64   string `json:"data64"`
		MD5      string `json:"md5"`
	}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/blobs" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.Write([]byte(`{"id": "blob_9", "name": "multiqc_report.html"}`))
	}))

	blob, err := client.CreateBlob(context.Background(), "multiqc_report.html", "text/html", payload)
	if err != nil {
		t.Fatalf("CreateBlob() error: %v", err)
	}
	if blob.ID != "blob_9" {
		t.Errorf("blob.ID = %q", blob.ID)
	}
	if gotBody.Type != "RAW_FILE" || gotBody.MimeType != "text/html" {
		t.Errorf("request = %+v", gotBody)
	}
	if gotBody.Data64 != base64.StdEncoding.EncodeToString(payload) {
		t.Error("data64 does not match payload")
	}
	digest := md5.Sum(payload)
	if gotBody.MD5 != hex.EncodeToString(digest[:]) {
		t.Errorf("md5 = %q", gotBody.MD5)
	}
}

func TestBlobDownloadURL(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/blobs/blob_9/download-url" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"downloadURL": "https://cdn.example.com/blob_9?sig=abc"}`))
	}))

	url, err := client.BlobDownloadURL(context.Background(), "blob_9")
	if err != nil {
		t.Fatalf("BlobDownloadURL() error: %v", err)
	}
	if url != "https://cdn.example.com/blob_9?sig=abc" {
		t.Errorf("url = %q", url)
	}
}

func TestCreateRecordWrapsFieldValues(t *testing.T) {
	var gotBody map[string]json.RawMessage
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/custom-entities" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.Write([]byte(`{"id": "ent_42", "name": "hungry_pasteur"}`))
	}))

	record, err := client.CreateRecord(context.Background(), RecordCreate{
		Name:     "hungry_pasteur",
		SchemaID: "ts_pipeline_run",
		FolderID: "lib_runs",
		Fields:   map[string]any{"status": "SUCCEEDED"},
	})
	if err != nil {
		t.Fatalf("CreateRecord() error: %v", err)
	}
	if record.ID != "ent_42" {
		t.Errorf("record.ID = %q", record.ID)
	}

	var fields map[string]map[string]any
	if err := json.Unmarshal(gotBody["fields"], &fields); err != nil {
		t.Fatalf("decoding fields: %v", err)
	}
	if fields["status"]["value"] != "SUCCEEDED" {
		t.Errorf("fields = %+v", fields)
	}
}

func TestSessionLifecycle(t *testing.T) {
	var createBody, closeBody map[string]json.RawMessage
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/app-sessions":
			json.NewDecoder(r.Body).Decode(&createBody)
			w.Write([]byte(`{"id": "sess_7"}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/app-sessions/sess_7":
			json.NewDecoder(r.Body).Decode(&closeBody)
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))

	session, err := client.CreateSession(context.Background(), "Search pipeline runs", 60)
	if err != nil {
		t.Fatalf("CreateSession() error: %v", err)
	}
	if session.ID != "sess_7" {
		t.Errorf("session.ID = %q", session.ID)
	}

	var appID string
	json.Unmarshal(createBody["appId"], &appID)
	if appID != "appdef_x7Kq" {
		t.Errorf("appId = %q", appID)
	}

	err = client.CloseSession(context.Background(), "sess_7", SessionSucceeded, []SessionMessage{
		{Content: "Found 2 runs", Style: MessageSuccess},
	})
	if err != nil {
		t.Fatalf("CloseSession() error: %v", err)
	}
	var status string
	json.Unmarshal(closeBody["status"], &status)
	if status != SessionSucceeded {
		t.Errorf("status = %q", status)
	}
}

func TestClientErrorIncludesStatusAndBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": {"message": "schema mismatch"}}`))
	}))

	_, err := client.GetCanvas(context.Background(), "cnvs_1")
	if err == nil {
		t.Fatal("GetCanvas() succeeded on 422")
	}
}
