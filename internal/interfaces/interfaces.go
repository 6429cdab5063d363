package interfaces

import (
	"context"

	"fpt-assistant/core/internal/model"
	"fpt-assistant/core/internal/notify"
	"fpt-assistant/core/internal/store"
)

// This file defines the interfaces for our core services.
// The API layer depends on these instead of the concrete services, so handlers
// can be tested against the mocks in the mocks package.

// ChatService defines the contract for the conversation and its streamed turns.
type ChatService interface {
	Submit(ctx context.Context, text string) (*model.Message, error)
	Cancel() bool
	NewChat()
	Transcript() store.Transcript
	Subscribe() (<-chan struct{}, func())
}

// SessionService defines the contract for stored sessions and their history.
type SessionService interface {
	Refresh(ctx context.Context) []model.Session
	Cached() store.SessionList
	GetSession(ctx context.Context, sessionID string) (*model.SessionDetail, error)
	GetHistory(ctx context.Context, sessionID string) []model.ChatHistoryMessage
	DeleteSession(ctx context.Context, agentID, sessionID string) bool
	DeleteSessions(ctx context.Context, agentID string, sessionIDs []string) int
}

// AgentService defines the contract for endpoint status and agent selection.
type AgentService interface {
	CheckStatus(ctx context.Context) bool
	Initialize(ctx context.Context) store.Playground
	Agents() store.Playground
	SelectAgent(ctx context.Context, agentID string) (*model.Agent, error)
}

// IdentityService defines the contract for the anonymous user id.
type IdentityService interface {
	GetOrCreate(ctx context.Context) string
	Reset(ctx context.Context) error
}

// NotificationFeed exposes the notifications raised by the services.
type NotificationFeed interface {
	Since(afterID uint64) []notify.Notification
}
