package llm

import (
	"context"
)

// Message is one turn in the provider request. Content is either a plain
// string or a []ContentBlock when the turn carries a document.
type Message struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type ContentBlock struct {
	Type   string          `json:"type"`
	Text   string          `json:"text,omitempty"`
	Source *DocumentSource `json:"source,omitempty"`
}

type DocumentSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// TextBlock builds a "text" content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Type: "text", Text: text}
}

// DocumentBlock builds a base64 "document" content block.
func DocumentBlock(mediaType, data string) ContentBlock {
	return ContentBlock{
		Type: "document",
		Source: &DocumentSource{
			Type:      "base64",
			MediaType: mediaType,
			Data:      data,
		},
	}
}

type CompletionRequest struct {
	Messages  []Message
	Model     string
	MaxTokens int
}

// StreamChunk is one piece of streamed provider output. A chunk with Done
// or Err set is the last one; the channel closes right after it. A channel
// that closes without either means the upstream stream was cut off.
type StreamChunk struct {
	Content string
	Done    bool
	Err     error
}

type AIProvider interface {
	StreamComplete(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error)
}
