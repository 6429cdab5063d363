package store

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"fpt-assistant/core/internal/model"
)

// Transcript is a point-in-time copy of the live conversation.
type Transcript struct {
	Messages              []model.Message `json:"messages"`
	IsStreaming           bool            `json:"is_streaming"`
	StreamingErrorMessage string          `json:"streaming_error_message,omitempty"`
	SessionID             string          `json:"session_id,omitempty"`
}

// Transcript returns a deep copy of the conversation state.
func (s *Store) Transcript() Transcript {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := make([]model.Message, len(s.messages))
	for i, m := range s.messages {
		msgs[i] = m.Clone()
	}
	return Transcript{
		Messages:              msgs,
		IsStreaming:           s.streaming,
		StreamingErrorMessage: s.streamingErrorMessage,
		SessionID:             s.sessionID,
	}
}

// IsStreaming reports whether a turn is in flight.
func (s *Store) IsStreaming() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.streaming
}

// SessionID returns the remote session the conversation is bound to, if any.
func (s *Store) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// TurnMessage returns a copy of the agent message of turn t, in flight or
// finalized, as long as the transcript has not been cleared since.
func (s *Store) TurnMessage(t Turn) (model.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t != s.turn || s.turnIndex < 0 || s.turnIndex >= len(s.messages) {
		return model.Message{}, false
	}
	return s.messages[s.turnIndex].Clone(), true
}

// AppendUserMessage appends a finished user message. It is rejected while a
// turn is streaming.
func (s *Store) AppendUserMessage(text string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.streaming {
		return ErrStreaming
	}
	s.appendUserLocked(text, at)
	s.notifyLocked()
	return nil
}

// BeginAgentMessage appends the empty placeholder agent message, marks it in
// flight and raises the streaming flag.
func (s *Store) BeginAgentMessage(at time.Time) (Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.streaming {
		return 0, ErrStreaming
	}
	t := s.beginAgentLocked(at)
	s.notifyLocked()
	return t, nil
}

// BeginTurn appends the user message and the placeholder agent message in one
// step. It is the check-and-set that keeps at most one turn in flight.
func (s *Store) BeginTurn(text string, at time.Time) (Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.streaming {
		return 0, ErrStreaming
	}
	s.appendUserLocked(text, at)
	t := s.beginAgentLocked(at)
	s.notifyLocked()
	return t, nil
}

func (s *Store) appendUserLocked(text string, at time.Time) {
	s.messages = append(s.messages, model.Message{
		Role:      model.RoleUser,
		Content:   text,
		CreatedAt: at.Unix(),
	})
}

func (s *Store) beginAgentLocked(at time.Time) Turn {
	s.messages = append(s.messages, model.Message{
		Role:      model.RoleAgent,
		CreatedAt: at.Unix(),
	})
	s.turn++
	s.inFlight = len(s.messages) - 1
	s.turnIndex = s.inFlight
	s.streaming = true
	s.streamingErrorMessage = ""
	return s.turn
}

// inFlightLocked returns the in-flight message of turn t.
func (s *Store) inFlightLocked(t Turn) (*model.Message, error) {
	if !s.streaming || t != s.turn || s.inFlight < 0 || s.inFlight >= len(s.messages) {
		return nil, ErrStaleTurn
	}
	return &s.messages[s.inFlight], nil
}

// ApplyDelta appends text to the in-flight message.
func (s *Store) ApplyDelta(t Turn, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, err := s.inFlightLocked(t)
	if err != nil {
		return err
	}
	msg.Content += text
	s.notifyLocked()
	return nil
}

// SetContentIfEmpty fills the in-flight message with text only when nothing
// has streamed yet, for runs that deliver their answer in the final event.
func (s *Store) SetContentIfEmpty(t Turn, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, err := s.inFlightLocked(t)
	if err != nil {
		return err
	}
	if msg.Content == "" && text != "" {
		msg.Content = text
		s.notifyLocked()
	}
	return nil
}

// idlessKeyPrefix marks tool calls that arrived without a tool_call_id. Their
// key is pinned to the position they took in the message when appended.
const idlessKeyPrefix = "idx:"

// UpsertToolCall inserts call into the in-flight message, or merges it into
// the entry it updates. Calls with an id match by id. Calls without one merge
// into the earliest open id-less entry of the same tool, and append otherwise.
// On merge, non-empty new fields replace old ones and tool_call_error takes
// the latest value.
func (s *Store) UpsertToolCall(t Turn, call model.ToolCall) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, err := s.inFlightLocked(t)
	if err != nil {
		return err
	}

	idx := -1
	if call.ToolCallID != "" {
		key := "id:" + call.ToolCallID
		for i := range msg.ToolCalls {
			if msg.ToolCalls[i].Key == key {
				idx = i
				break
			}
		}
		call.Key = key
	} else {
		idx = matchIDless(msg.ToolCalls, call)
		call.Key = fmt.Sprintf("%s%d", idlessKeyPrefix, len(msg.ToolCalls))
	}

	if idx < 0 {
		msg.ToolCalls = append(msg.ToolCalls, call)
		s.notifyLocked()
		return nil
	}

	existing := &msg.ToolCalls[idx]
	if call.ToolName != "" {
		existing.ToolName = call.ToolName
	}
	if len(call.ToolArgs) > 0 {
		existing.ToolArgs = call.ToolArgs
	}
	if call.Content != "" {
		existing.Content = call.Content
	}
	if existing.CreatedAt == 0 {
		existing.CreatedAt = call.CreatedAt
	}
	existing.ToolCallError = call.ToolCallError
	s.notifyLocked()
	return nil
}

// matchIDless finds the id-less entry an id-less update refers to: the
// earliest one with the same tool name (or any name when the update has none),
// compatible arguments, and no result yet or the same result.
func matchIDless(calls []model.ToolCall, call model.ToolCall) int {
	for i, existing := range calls {
		if !strings.HasPrefix(existing.Key, idlessKeyPrefix) {
			continue
		}
		if call.ToolName != "" && existing.ToolName != call.ToolName {
			continue
		}
		if len(call.ToolArgs) > 0 && len(existing.ToolArgs) > 0 && !bytes.Equal(call.ToolArgs, existing.ToolArgs) {
			continue
		}
		if existing.Content != "" && existing.Content != call.Content {
			continue
		}
		return i
	}
	return -1
}

// AppendImage appends an image to the in-flight message.
func (s *Store) AppendImage(t Turn, image model.ImageData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, err := s.inFlightLocked(t)
	if err != nil {
		return err
	}
	msg.Images = append(msg.Images, image)
	s.notifyLocked()
	return nil
}

// MarkError flags the in-flight message as failed. Accumulated content is
// kept, and the flag is never cleared.
func (s *Store) MarkError(t Turn, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, err := s.inFlightLocked(t)
	if err != nil {
		return err
	}
	msg.StreamingError = true
	if reason != "" {
		s.streamingErrorMessage = reason
	}
	s.notifyLocked()
	return nil
}

// BindSession records the remote session of the conversation. Only the first
// id sticks; it is forgotten by Clear.
func (s *Store) BindSession(t Turn, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.inFlightLocked(t); err != nil {
		return err
	}
	if s.sessionID == "" && sessionID != "" {
		s.sessionID = sessionID
		s.notifyLocked()
	}
	return nil
}

// Finalize ends turn t: the in-flight message becomes immutable and the
// streaming flag is cleared.
func (s *Store) Finalize(t Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.inFlightLocked(t); err != nil {
		return err
	}
	s.endTurnLocked()
	s.notifyLocked()
	return nil
}

// Abort ends turn t without flagging an error, for cancelled turns whose
// transcript is kept.
func (s *Store) Abort(t Turn) error {
	return s.Finalize(t)
}

func (s *Store) endTurnLocked() {
	s.streaming = false
	s.inFlight = -1
}

// Clear resets the conversation: empty transcript, no streaming flag, no bound
// session. Any turn still writing becomes stale. Callers cancel the stream
// before clearing.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.endTurnLocked()
	s.turn++
	s.turnIndex = -1
	s.streamingErrorMessage = ""
	s.sessionID = ""
	s.notifyLocked()
}

// VisibleMessages drops agent messages that have neither content nor tool
// calls, which is how a transcript view hides the placeholder of a turn that
// has not produced anything yet.
func VisibleMessages(msgs []model.Message) []model.Message {
	out := make([]model.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == model.RoleAgent && m.Content == "" && len(m.ToolCalls) == 0 {
			continue
		}
		out = append(out, m)
	}
	return out
}
