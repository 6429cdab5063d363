package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/model"
	"fpt-assistant/core/internal/playground"
	"fpt-assistant/core/internal/store"
)

// UserIdentity provides the anonymous user id sent as X-User-ID.
type UserIdentity interface {
	CurrentUserID() string
}

// HistoryInvalidator drops cached history of a session after it changes.
type HistoryInvalidator interface {
	Invalidate(sessionID string)
}

// ChatService turns a user submission into a streamed agent answer. It owns
// the cancellation handle of the single in-flight turn.
type ChatService struct {
	api         playground.API
	store       *store.Store
	users       UserIdentity
	history     HistoryInvalidator
	idleTimeout time.Duration
	now         func() time.Time

	mu     sync.Mutex
	cancel context.CancelCauseFunc
	active store.Turn
}

// NewChatService builds the stream consumer. idleTimeout is the longest gap
// allowed between two run events; zero disables the watchdog.
func NewChatService(api playground.API, st *store.Store, users UserIdentity, history HistoryInvalidator, idleTimeout time.Duration) *ChatService {
	return &ChatService{
		api:         api,
		store:       st,
		users:       users,
		history:     history,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Submit runs one turn and blocks until it ends. The user message is appended
// immediately and is never rolled back. On failure the returned message is the
// partial answer flagged with streaming_error, together with an error wrapping
// ErrStreamFailed. A cancelled turn returns ErrCancelled and no message.
func (s *ChatService) Submit(ctx context.Context, text string) (*model.Message, error) {
	content := strings.TrimSpace(text)
	if content == "" {
		return nil, fmt.Errorf("%w: message is empty", app_errors.ErrValidation)
	}
	agent, ok := s.store.SelectedAgent()
	if !ok {
		return nil, fmt.Errorf("%w: no agent selected", app_errors.ErrValidation)
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	s.mu.Lock()
	turn, err := s.store.BeginTurn(content, s.now())
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.cancel = cancel
	s.active = turn
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.active == turn {
			s.cancel = nil
			s.active = 0
		}
		s.mu.Unlock()
	}()

	req := &playground.RunRequest{
		AgentID:   agent.AgentID,
		Message:   content,
		SessionID: s.store.SessionID(),
		UserID:    s.users.CurrentUserID(),
	}
	slog.Info("Starting agent run", "agent_id", req.AgentID, "session_id", req.SessionID)

	return s.consume(runCtx, cancel, turn, req)
}

// turnState is what the consumer learns about a turn while folding events.
type turnState struct {
	completed bool
	runError  string
}

func (s *ChatService) consume(ctx context.Context, cancel context.CancelCauseFunc, turn store.Turn, req *playground.RunRequest) (*model.Message, error) {
	events := make(chan model.RunEvent)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.api.StreamRun(ctx, req, events)
	}()

	var idle *time.Timer
	if s.idleTimeout > 0 {
		idle = time.AfterFunc(s.idleTimeout, func() { cancel(app_errors.ErrStreamStalled) })
		defer idle.Stop()
	}

	var st turnState
	detached := false
	for event := range events {
		if idle != nil {
			idle.Reset(s.idleTimeout)
		}
		if st.completed || detached {
			slog.Debug("Ignoring run event", "event", event.Event, "completed", st.completed)
			continue
		}
		if err := s.apply(turn, req.Message, event, &st); err != nil {
			// Only a stale turn fails here: the conversation was cleared
			// under us, so stop writing and let the stream wind down.
			slog.Debug("Run detached from transcript", "error", err)
			detached = true
			cancel(app_errors.ErrCancelled)
		}
	}
	streamErr := <-errCh
	cause := context.Cause(ctx)

	switch {
	case st.completed:
		if streamErr != nil {
			slog.Warn("Run stream errored after completion", "error", streamErr)
		}
		s.turnFinished()
	case ctx.Err() != nil && !errors.Is(cause, app_errors.ErrStreamStalled):
		if err := s.store.Abort(turn); err != nil && !store.IsStale(err) {
			return nil, err
		}
		slog.Info("Agent run cancelled", "agent_id", req.AgentID, "cause", cause)
		return nil, app_errors.ErrCancelled
	case streamErr != nil:
		slog.Error("Agent run stream failed", "agent_id", req.AgentID, "error", streamErr)
		if err := s.store.MarkError(turn, streamErr.Error()); err != nil && !store.IsStale(err) {
			return nil, err
		}
		if err := s.store.Finalize(turn); err != nil && !store.IsStale(err) {
			return nil, err
		}
		return s.turnMessage(turn), fmt.Errorf("%w: %w", app_errors.ErrStreamFailed, streamErr)
	default:
		// The stream ended without a terminal event.
		if err := s.store.Finalize(turn); err != nil && !store.IsStale(err) {
			return nil, err
		}
		s.turnFinished()
	}

	msg := s.turnMessage(turn)
	if st.runError != "" {
		return msg, fmt.Errorf("%w: %s", app_errors.ErrStreamFailed, st.runError)
	}
	return msg, nil
}

// apply folds one event into the in-flight message.
func (s *ChatService) apply(turn store.Turn, userText string, event model.RunEvent, st *turnState) error {
	if event.SessionID != "" {
		if err := s.bindSession(turn, userText, event); err != nil {
			return err
		}
	}

	switch event.Kind() {
	case model.KindStarted:
		return nil
	case model.KindContentDelta:
		if text := event.Text(); text != "" {
			if err := s.store.ApplyDelta(turn, text); err != nil {
				return err
			}
		}
		if err := s.upsertTools(turn, event.Tools); err != nil {
			return err
		}
		return s.appendImages(turn, event.Images)
	case model.KindToolCall:
		return s.upsertTools(turn, event.Tools)
	case model.KindImage:
		return s.appendImages(turn, event.Images)
	case model.KindError:
		reason := event.Text()
		if reason == "" {
			reason = "agent run failed"
		}
		st.runError = reason
		return s.store.MarkError(turn, reason)
	case model.KindCompleted:
		if err := s.store.SetContentIfEmpty(turn, event.Text()); err != nil {
			return err
		}
		if err := s.upsertTools(turn, event.Tools); err != nil {
			return err
		}
		if err := s.store.Finalize(turn); err != nil {
			return err
		}
		st.completed = true
		return nil
	default:
		slog.Debug("Ignoring run event", "event", event.Event)
		return nil
	}
}

func (s *ChatService) bindSession(turn store.Turn, userText string, event model.RunEvent) error {
	wasBound := s.store.SessionID() != ""
	if err := s.store.BindSession(turn, event.SessionID); err != nil {
		return err
	}
	if wasBound || s.store.SessionID() != event.SessionID {
		return nil
	}
	createdAt := event.CreatedAt
	if createdAt == 0 {
		createdAt = s.now().Unix()
	}
	s.store.PrependSession(model.Session{
		SessionID: event.SessionID,
		Title:     userText,
		CreatedAt: createdAt,
	})
	return nil
}

func (s *ChatService) upsertTools(turn store.Turn, tools []model.ToolCall) error {
	for _, call := range tools {
		if err := s.store.UpsertToolCall(turn, call); err != nil {
			return err
		}
	}
	return nil
}

func (s *ChatService) appendImages(turn store.Turn, images []model.ImageData) error {
	for _, img := range images {
		if err := s.store.AppendImage(turn, img); err != nil {
			return err
		}
	}
	return nil
}

func (s *ChatService) turnMessage(turn store.Turn) *model.Message {
	msg, ok := s.store.TurnMessage(turn)
	if !ok {
		return nil
	}
	return &msg
}

func (s *ChatService) turnFinished() {
	if s.history == nil {
		return
	}
	if id := s.store.SessionID(); id != "" {
		s.history.Invalidate(id)
	}
}

// Cancel aborts the in-flight turn, if any. The turn ends cleanly: no error
// flag is set and nothing is finalized on its behalf.
func (s *ChatService) Cancel() bool {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return false
	}
	cancel(app_errors.ErrCancelled)
	return true
}

// NewChat cancels any in-flight turn and then clears the conversation.
func (s *ChatService) NewChat() {
	if s.Cancel() {
		slog.Info("Cancelled streaming turn for new chat")
	}
	s.store.Clear()
}

// Transcript returns the current conversation.
func (s *ChatService) Transcript() store.Transcript {
	return s.store.Transcript()
}

// Subscribe exposes store change signals to transcript watchers.
func (s *ChatService) Subscribe() (<-chan struct{}, func()) {
	return s.store.Subscribe()
}
