package model

import (
	"encoding/json"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message is one turn in the live conversation transcript.
type Message struct {
	Role           Role        `json:"role"`
	Content        string      `json:"content"`
	CreatedAt      int64       `json:"created_at"` // Epoch seconds.
	ToolCalls      []ToolCall  `json:"tool_calls,omitempty"`
	Images         []ImageData `json:"images,omitempty"`
	StreamingError bool        `json:"streaming_error"`
}

// Clone returns a deep copy so snapshots never alias store-owned slices.
func (m Message) Clone() Message {
	out := m
	if m.ToolCalls != nil {
		out.ToolCalls = make([]ToolCall, len(m.ToolCalls))
		copy(out.ToolCalls, m.ToolCalls)
	}
	if m.Images != nil {
		out.Images = make([]ImageData, len(m.Images))
		copy(out.Images, m.Images)
	}
	return out
}

// ToolCall is a tool invocation surfaced while the agent is answering.
type ToolCall struct {
	ToolCallID    string          `json:"tool_call_id,omitempty"`
	ToolName      string          `json:"tool_name"`
	ToolArgs      json.RawMessage `json:"tool_args,omitempty"`
	Content       string          `json:"content,omitempty"`
	ToolCallError bool            `json:"tool_call_error"`
	CreatedAt     int64           `json:"created_at,omitempty"`

	// Key is the identity pinned when the call was first appended: the
	// tool_call_id when present, otherwise the position the call took in the
	// message.
	Key string `json:"key"`
}

// ImageData references an image attached to or generated by an agent message.
type ImageData struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// Session is a persisted conversation summary owned by the remote backend.
type Session struct {
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"created_at"`
}

// SessionDetail is the full session record returned by the remote API. Only
// the identifying fields are typed; the rest is passed through untouched.
type SessionDetail struct {
	SessionID   string          `json:"session_id"`
	AgentID     string          `json:"agent_id,omitempty"`
	UserID      string          `json:"user_id,omitempty"`
	Memory      json.RawMessage `json:"memory,omitempty"`
	AgentData   json.RawMessage `json:"agent_data,omitempty"`
	SessionData json.RawMessage `json:"session_data,omitempty"`
	CreatedAt   int64           `json:"created_at,omitempty"`
	UpdatedAt   int64           `json:"updated_at,omitempty"`
}

// History roles as sent by the remote API.
const (
	HistoryRoleSystem    = "system"
	HistoryRoleUser      = "user"
	HistoryRoleAssistant = "assistant"
)

// ChatHistoryMessage is the wire form of a stored message, used only for
// read-only replay and never merged into the live transcript.
type ChatHistoryMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}

// ChatHistoryResponse is the body of the chat history endpoint.
type ChatHistoryResponse struct {
	SessionID     string               `json:"session_id"`
	UserID        string               `json:"user_id,omitempty"`
	Messages      []ChatHistoryMessage `json:"messages"`
	TotalMessages int                  `json:"total_messages,omitempty"`
}

// AgentModel describes the model backing an agent.
type AgentModel struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Name     string `json:"name,omitempty"`
}

// Agent is one entry of the remote agent list.
type Agent struct {
	AgentID     string     `json:"agent_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Model       AgentModel `json:"model"`
	Storage     bool       `json:"storage"`
}
