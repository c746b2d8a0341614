// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package benchling

import "context"

// UI block types accepted by the canvas API.
const (
	BlockTypeMarkdown  = "MARKDOWN"
	BlockTypeButton    = "BUTTON"
	BlockTypeTextInput = "TEXT_INPUT"
)

// Block is one canvas UI block. Which fields are meaningful depends
// on Type: markdown blocks carry Value, buttons carry Text, text
// inputs carry Value (current contents) and Placeholder.
type Block struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Text        string `json:"text,omitempty"`
	Value       string `json:"value,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Markdown creates a markdown block.
func Markdown(id, value string) Block {
	return Block{ID: id, Type: BlockTypeMarkdown, Value: value}
}

// Button creates a button block. The id is what comes back as the
// triggering element when the button is clicked.
func Button(id, text string) Block {
	return Block{ID: id, Type: BlockTypeButton, Text: text}
}

// TextInput creates a text input block.
func TextInput(id, placeholder string) Block {
	return Block{ID: id, Type: BlockTypeTextInput, Placeholder: placeholder}
}

// Canvas is the host-side state of one app canvas. Data is the opaque
// key-value store the bridge uses to persist the last search text
// across navigation.
type Canvas struct {
	ID        string            `json:"id"`
	Blocks    []Block           `json:"blocks"`
	Data      map[string]string `json:"data"`
	Enabled   bool              `json:"enabled"`
	SessionID string            `json:"sessionId"`
}

// CanvasUpdate is a partial canvas replacement. Nil fields are
// omitted from the PATCH and left untouched by the host; the canvas
// is never partially mutated by the bridge — each set field is a full
// replacement of that part.
type CanvasUpdate struct {
	Blocks    []Block           `json:"blocks,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	Enabled   *bool             `json:"enabled,omitempty"`
	SessionID string            `json:"sessionId,omitempty"`
}

// Bool returns a pointer to v, for CanvasUpdate.Enabled.
func Bool(v bool) *bool {
	return &v
}

// GetCanvas reads the current canvas state.
func (client *Client) GetCanvas(ctx context.Context, canvasID string) (*Canvas, error) {
	var canvas Canvas
	if err := client.get(ctx, "/app-canvases/"+canvasID, &canvas); err != nil {
		return nil, err
	}
	return &canvas, nil
}

// UpdateCanvas applies a partial canvas replacement.
func (client *Client) UpdateCanvas(ctx context.Context, canvasID string, update CanvasUpdate) error {
	return client.patch(ctx, "/app-canvases/"+canvasID, update, nil)
}
