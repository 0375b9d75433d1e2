package chat

import (
	"context"
	"log"

	"QueryDoc/be/internal/llm"
)

const pdfMediaType = "application/pdf"

// Messages shown to the client when the upstream call fails. The real
// error is logged server-side only.
const (
	upstreamErrorMessage   = "Failed to get response from Claude"
	truncatedStreamMessage = "Claude stream ended unexpectedly"
)

// ChatService relays a chat history (plus an optional PDF) through the
// AI provider and republishes the provider's stream as StreamEvents.
type ChatService struct {
	provider  llm.AIProvider
	model     string
	maxTokens int
}

func NewChatService(provider llm.AIProvider, model string, maxTokens int) *ChatService {
	return &ChatService{provider: provider, model: model, maxTokens: maxTokens}
}

// FormatMessages converts the chat history into provider messages. When a
// PDF is present it is attached to the first turn only, as a document
// block ahead of the text block; the provider requires that ordering.
// Every other turn passes through as plain text with its role unchanged.
func FormatMessages(messages []Message, pdfData string) []llm.Message {
	formatted := make([]llm.Message, 0, len(messages))

	if pdfData != "" && len(messages) > 0 {
		first := messages[0]
		formatted = append(formatted, llm.Message{
			Role: first.Role,
			Content: []llm.ContentBlock{
				llm.DocumentBlock(pdfMediaType, pdfData),
				llm.TextBlock(first.Content),
			},
		})
		for _, msg := range messages[1:] {
			formatted = append(formatted, llm.Message{Role: msg.Role, Content: msg.Content})
		}
		return formatted
	}

	for _, msg := range messages {
		formatted = append(formatted, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return formatted
}

// StreamChatResponse opens one streaming provider call and returns the
// normalized event sequence. The channel always closes right after a
// single terminal event (done or error); if the provider stream ends
// without a stop marker, a terminal error is synthesized so the client
// never sees a silently truncated stream. Cancelling ctx stops the relay.
func (cs *ChatService) StreamChatResponse(ctx context.Context, req ChatRequest) <-chan StreamEvent {
	events := make(chan StreamEvent)

	go func() {
		defer close(events)

		providerReq := llm.CompletionRequest{
			Messages:  FormatMessages(req.Messages, req.PDFData),
			Model:     cs.model,
			MaxTokens: cs.maxTokens,
		}

		chunks, err := cs.provider.StreamComplete(ctx, providerReq)
		if err != nil {
			log.Printf("Failed to open Claude stream: %v", err)
			emitEvent(ctx, events, StreamEvent{Type: EventError, Message: upstreamErrorMessage})
			return
		}

		for chunk := range chunks {
			switch {
			case chunk.Err != nil:
				log.Printf("Claude stream failed: %v", chunk.Err)
				emitEvent(ctx, events, StreamEvent{Type: EventError, Message: upstreamErrorMessage})
				return
			case chunk.Done:
				emitEvent(ctx, events, StreamEvent{Type: EventDone})
				return
			default:
				if !emitEvent(ctx, events, StreamEvent{Type: EventText, Data: chunk.Content}) {
					return
				}
			}
		}

		// Provider channel closed without a terminal chunk.
		log.Printf("Claude stream ended without a stop marker")
		emitEvent(ctx, events, StreamEvent{Type: EventError, Message: truncatedStreamMessage})
	}()

	return events
}

func emitEvent(ctx context.Context, events chan<- StreamEvent, event StreamEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
