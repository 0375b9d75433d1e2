package chat

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService *ChatService
}

func NewChatController(chatService *ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

func (cc *ChatController) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/chat", cc.StreamChat)
}

// Wire shapes written to the SSE body, one per event.
type textPayload struct {
	Text string `json:"text"`
}

type donePayload struct {
	Done bool `json:"done"`
}

type errorPayload struct {
	Error string `json:"error"`
}

// StreamChat validates the request, then relays the provider stream as
// `data: <json>` SSE lines. Validation failures are plain 400 JSON
// rejections; once the stream headers are out, failures only appear as
// error events in the body.
func (cc *ChatController) StreamChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Messages == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Messages array is required"})
		return
	}

	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one message is required"})
		return
	}

	for _, msg := range req.Messages {
		if msg.Role == "" || msg.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Each message must have role and content"})
			return
		}
		if msg.Role != RoleUser && msg.Role != RoleAssistant {
			c.JSON(http.StatusBadRequest, gin.H{"error": `Message role must be "user" or "assistant"`})
			return
		}
	}

	// Headers required for SSE
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Request context cancels the relay when the client disconnects.
	ctx := c.Request.Context()

	for event := range cc.chatService.StreamChatResponse(ctx, req) {
		var payload interface{}
		switch event.Type {
		case EventText:
			payload = textPayload{Text: event.Data}
		case EventDone:
			payload = donePayload{Done: true}
		case EventError:
			payload = errorPayload{Error: event.Message}
		default:
			continue
		}

		if err := writeSSEEvent(c.Writer, payload); err != nil {
			log.Printf("Failed to write SSE event: %v", err)
			return
		}
	}
}

func writeSSEEvent(w io.Writer, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SSE event: %w", err)
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", jsonData); err != nil {
		return fmt.Errorf("failed to write SSE event: %w", err)
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	return nil
}
