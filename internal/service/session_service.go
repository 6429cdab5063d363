package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/model"
	"fpt-assistant/core/internal/notify"
	"fpt-assistant/core/internal/playground"
	"fpt-assistant/core/internal/store"
)

const maxParallelDeletes = 4

// SessionService loads the stored sessions of an agent and the read-only
// history of one session. Read failures never reach the caller: they become
// empty results plus a user notification.
type SessionService struct {
	api      playground.API
	store    *store.Store
	notifier notify.Notifier
	users    UserIdentity
	history  *lru.Cache[string, []model.ChatHistoryMessage]
}

// NewSessionService builds the session loader with a history cache of
// cacheSize entries.
func NewSessionService(api playground.API, st *store.Store, notifier notify.Notifier, users UserIdentity, cacheSize int) (*SessionService, error) {
	if cacheSize <= 0 {
		cacheSize = 64
	}
	cache, err := lru.New[string, []model.ChatHistoryMessage](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not create history cache: %w", err)
	}
	return &SessionService{
		api:      api,
		store:    st,
		notifier: notifier,
		users:    users,
		history:  cache,
	}, nil
}

// ListSessions fetches the sessions of agentID and replaces the cached list
// with them. A 404 means storage is disabled for the agent and yields an empty
// list silently; any other failure yields an empty list and a notification.
// When a newer load started meanwhile, this response is discarded and the
// cached list is returned unchanged.
func (s *SessionService) ListSessions(ctx context.Context, agentID string) []model.Session {
	seq := s.store.BeginSessionsLoad()

	sessions, err := s.api.ListSessions(ctx, agentID, s.users.CurrentUserID())
	if err != nil {
		sessions = []model.Session{}
		if errors.Is(err, app_errors.ErrNotFound) {
			slog.Debug("Session storage disabled for agent", "agent_id", agentID)
		} else {
			slog.Error("Failed to fetch sessions", "agent_id", agentID, "error", err)
			s.notifier.Notify(notify.LevelError, "Failed to fetch sessions")
		}
	}

	if !s.store.SetSessions(seq, sessions) {
		slog.Debug("Discarding stale session list", "agent_id", agentID, "seq", seq)
		return s.store.Sessions().Sessions
	}
	return sessions
}

// Refresh reloads the sessions of the selected agent.
func (s *SessionService) Refresh(ctx context.Context) []model.Session {
	agent, ok := s.store.SelectedAgent()
	if !ok {
		return []model.Session{}
	}
	return s.ListSessions(ctx, agent.AgentID)
}

// Cached returns the cached session list without a network call.
func (s *SessionService) Cached() store.SessionList {
	return s.store.Sessions()
}

// GetSession returns one stored session of the selected agent.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*model.SessionDetail, error) {
	agent, ok := s.store.SelectedAgent()
	if !ok {
		return nil, fmt.Errorf("%w: no agent selected", app_errors.ErrValidation)
	}
	detail, err := s.api.GetSession(ctx, agent.AgentID, sessionID, s.users.CurrentUserID())
	if err != nil {
		return nil, fmt.Errorf("could not get session %s: %w", sessionID, err)
	}
	return detail, nil
}

// GetHistory returns the displayable history of a session: every entry except
// system messages, in stored order. It returns nil when the session has no
// stored history or the history could not be loaded.
func (s *SessionService) GetHistory(ctx context.Context, sessionID string) []model.ChatHistoryMessage {
	userID := s.users.CurrentUserID()
	key := userID + "/" + sessionID
	if cached, ok := s.history.Get(key); ok {
		return cached
	}

	resp, err := s.api.GetChatHistory(ctx, sessionID, userID)
	if err != nil {
		if !errors.Is(err, app_errors.ErrNotFound) {
			slog.Error("Error fetching chat history", "session_id", sessionID, "error", err)
			s.notifier.Notify(notify.LevelError, "Failed to load chat history")
		}
		return nil
	}
	if resp == nil {
		return nil
	}

	visible := FilterHistory(resp.Messages)
	s.history.Add(key, visible)
	return visible
}

// FilterHistory removes system entries and keeps the relative order of the rest.
func FilterHistory(messages []model.ChatHistoryMessage) []model.ChatHistoryMessage {
	out := make([]model.ChatHistoryMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role == model.HistoryRoleSystem {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Invalidate drops the cached history of sessionID for every user.
func (s *SessionService) Invalidate(sessionID string) {
	suffix := "/" + sessionID
	for _, key := range s.history.Keys() {
		if strings.HasSuffix(key, suffix) {
			s.history.Remove(key)
		}
	}
}

// DeleteSession deletes one session of agentID and removes it from the cached
// list. The outcome is reported through the notifier.
func (s *SessionService) DeleteSession(ctx context.Context, agentID, sessionID string) bool {
	if agentID == "" || sessionID == "" {
		s.notifier.Notify(notify.LevelError, "Missing required parameters for session deletion")
		return false
	}
	if err := s.api.DeleteSession(ctx, agentID, sessionID, s.users.CurrentUserID()); err != nil {
		slog.Error("Error deleting session", "agent_id", agentID, "session_id", sessionID, "error", err)
		s.notifier.Notify(notify.LevelError, "Failed to delete session")
		return false
	}
	s.store.RemoveSessions(sessionID)
	s.Invalidate(sessionID)
	s.notifier.Notify(notify.LevelSuccess, "Session deleted successfully")
	return true
}

// DeleteSessions deletes several sessions in parallel and returns how many
// were deleted. Deleted ids are removed from the cached list.
func (s *SessionService) DeleteSessions(ctx context.Context, agentID string, sessionIDs []string) int {
	if agentID == "" || len(sessionIDs) == 0 {
		s.notifier.Notify(notify.LevelError, "Missing required parameters for bulk session deletion")
		return 0
	}

	userID := s.users.CurrentUserID()
	deleted := make([]bool, len(sessionIDs))
	var count atomic.Int64

	var g errgroup.Group
	g.SetLimit(maxParallelDeletes)
	for i, id := range sessionIDs {
		g.Go(func() error {
			if err := s.api.DeleteSession(ctx, agentID, id, userID); err != nil {
				slog.Error("Error deleting session", "agent_id", agentID, "session_id", id, "error", err)
				return nil
			}
			deleted[i] = true
			count.Add(1)
			return nil
		})
	}
	g.Wait()

	var ids []string
	for i, ok := range deleted {
		if ok {
			ids = append(ids, sessionIDs[i])
			s.Invalidate(sessionIDs[i])
		}
	}
	if len(ids) > 0 {
		s.store.RemoveSessions(ids...)
	}

	n := int(count.Load())
	switch {
	case n == len(sessionIDs):
		s.notifier.Notify(notify.LevelSuccess, fmt.Sprintf("Successfully deleted %d sessions", n))
	case n > 0:
		s.notifier.Notify(notify.LevelWarning, fmt.Sprintf("Deleted %d out of %d sessions", n, len(sessionIDs)))
	default:
		s.notifier.Notify(notify.LevelError, "Failed to delete any sessions")
	}
	return n
}
