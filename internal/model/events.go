package model

import (
	"encoding/json"
	"strings"
)

// RunEventName is the discriminator sent in the `event` field of a run chunk.
type RunEventName string

const (
	EventRunStarted         RunEventName = "RunStarted"
	EventReasoningStarted   RunEventName = "ReasoningStarted"
	EventRunResponse        RunEventName = "RunResponse"
	EventRunResponseContent RunEventName = "RunResponseContent"
	EventToolCallStarted    RunEventName = "ToolCallStarted"
	EventToolCallCompleted  RunEventName = "ToolCallCompleted"
	EventImageGenerated     RunEventName = "ImageGenerated"
	EventRunError           RunEventName = "RunError"
	EventRunCompleted       RunEventName = "RunCompleted"
	EventRunCancelled       RunEventName = "RunCancelled"
)

// EventKind is the folding rule a run event maps to.
type EventKind int

const (
	KindIgnored EventKind = iota
	KindStarted
	KindContentDelta
	KindToolCall
	KindImage
	KindError
	KindCompleted
)

// RunEvent is one decoded chunk of a streamed agent run.
type RunEvent struct {
	Event     RunEventName    `json:"event"`
	Content   json.RawMessage `json:"content,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
	RunID     string          `json:"run_id,omitempty"`
	AgentID   string          `json:"agent_id,omitempty"`
	CreatedAt int64           `json:"created_at,omitempty"`
	Tools     []ToolCall      `json:"tools,omitempty"`
	Images    []ImageData     `json:"images,omitempty"`
}

// Kind classifies the event.
func (e RunEvent) Kind() EventKind {
	switch e.Event {
	case EventRunStarted, EventReasoningStarted:
		return KindStarted
	case EventRunResponse, EventRunResponseContent:
		return KindContentDelta
	case EventToolCallStarted, EventToolCallCompleted:
		return KindToolCall
	case EventImageGenerated:
		return KindImage
	case EventRunError:
		return KindError
	case EventRunCompleted, EventRunCancelled:
		return KindCompleted
	default:
		return KindIgnored
	}
}

// Text returns the content payload when it is a JSON string. Structured
// content (e.g. a response model object) is rendered as its raw JSON.
func (e RunEvent) Text() string {
	raw := strings.TrimSpace(string(e.Content))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Content, &s); err == nil {
		return s
	}
	return raw
}
