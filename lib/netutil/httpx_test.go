// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"strings"
	"testing"
)

func TestDecodeResponse(t *testing.T) {
	var decoded struct {
		Name string `json:"name"`
	}
	err := DecodeResponse(strings.NewReader(`{"name":"rnaseq"}`), &decoded)
	if err != nil {
		t.Fatalf("DecodeResponse() error: %v", err)
	}
	if decoded.Name != "rnaseq" {
		t.Errorf("decoded name = %q, want %q", decoded.Name, "rnaseq")
	}
}

func TestDecodeResponseInvalidJSON(t *testing.T) {
	var decoded map[string]any
	if err := DecodeResponse(strings.NewReader("<html>not json</html>"), &decoded); err == nil {
		t.Error("DecodeResponse() accepted invalid JSON")
	}
}

func TestErrorBody(t *testing.T) {
	if got := ErrorBody(strings.NewReader("workspace not found")); got != "workspace not found" {
		t.Errorf("ErrorBody() = %q", got)
	}
}

func TestReadResponse(t *testing.T) {
	data, err := ReadResponse(strings.NewReader("report bytes"))
	if err != nil {
		t.Fatalf("ReadResponse() error: %v", err)
	}
	if string(data) != "report bytes" {
		t.Errorf("ReadResponse() = %q", data)
	}
}
