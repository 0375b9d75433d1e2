package chat

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []Message `json:"messages"`
	PDFData  string    `json:"pdfData,omitempty"`
}

type EventType string

const (
	EventText  EventType = "text"
	EventDone  EventType = "done"
	EventError EventType = "error"
)

// StreamEvent is one normalized relay event. A stream is a run of
// EventText events closed by exactly one EventDone or EventError.
type StreamEvent struct {
	Type    EventType
	Data    string // delta text, set for EventText
	Message string // human-readable summary, set for EventError
}
