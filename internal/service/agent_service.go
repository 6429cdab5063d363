package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/model"
	"fpt-assistant/core/internal/notify"
	"fpt-assistant/core/internal/playground"
	"fpt-assistant/core/internal/store"
)

// SessionLister reloads the session list of an agent.
type SessionLister interface {
	ListSessions(ctx context.Context, agentID string) []model.Session
}

// ChatResetter starts an empty conversation.
type ChatResetter interface {
	NewChat()
}

// AgentService handles endpoint status and agent selection.
type AgentService struct {
	api          playground.API
	store        *store.Store
	notifier     notify.Notifier
	sessions     SessionLister
	chat         ChatResetter
	defaultAgent string
}

// NewAgentService creates a new AgentService. defaultAgent is selected on
// initialization when the endpoint lists it.
func NewAgentService(api playground.API, st *store.Store, notifier notify.Notifier, sessions SessionLister, chat ChatResetter, defaultAgent string) *AgentService {
	return &AgentService{
		api:          api,
		store:        st,
		notifier:     notifier,
		sessions:     sessions,
		chat:         chat,
		defaultAgent: defaultAgent,
	}
}

// CheckStatus probes the endpoint and records whether it is active.
func (s *AgentService) CheckStatus(ctx context.Context) bool {
	active := s.api.Status(ctx) == http.StatusOK
	s.store.SetEndpointStatus(active, s.store.Playground().EndpointLoading)
	return active
}

// Initialize checks the endpoint, loads its agents, selects one and loads the
// sessions of the selected agent. Failures leave an inactive endpoint or an
// empty agent list; they are reported through the notifier, not returned.
func (s *AgentService) Initialize(ctx context.Context) store.Playground {
	s.store.SetEndpointStatus(s.store.Playground().EndpointActive, true)

	if s.api.Status(ctx) != http.StatusOK {
		slog.Warn("Playground endpoint is not active")
		s.store.SetEndpointStatus(false, false)
		s.store.SetAgents(nil)
		return s.store.Playground()
	}

	agents, err := s.api.ListAgents(ctx)
	if err != nil {
		slog.Error("Error fetching playground agents", "error", err)
		s.notifier.Notify(notify.LevelError, "Error fetching playground agents")
		agents = []model.Agent{}
	}
	s.store.SetAgents(agents)
	s.store.SetEndpointStatus(true, false)

	if _, ok := s.store.SelectedAgent(); !ok && len(agents) > 0 {
		selected := agents[0].AgentID
		for _, a := range agents {
			if a.AgentID == s.defaultAgent {
				selected = a.AgentID
				break
			}
		}
		s.store.SelectAgent(selected)
		slog.Info("Selected agent", "agent_id", selected)
	}

	if agent, ok := s.store.SelectedAgent(); ok {
		s.sessions.ListSessions(ctx, agent.AgentID)
	}
	return s.store.Playground()
}

// Agents returns the agents known from the last initialization.
func (s *AgentService) Agents() store.Playground {
	return s.store.Playground()
}

// SelectAgent switches the active agent. The current conversation is dropped
// and the session list is reloaded for the new agent.
func (s *AgentService) SelectAgent(ctx context.Context, agentID string) (*model.Agent, error) {
	current, ok := s.store.SelectedAgent()
	if ok && current.AgentID == agentID {
		return &current, nil
	}
	if !s.store.SelectAgent(agentID) {
		return nil, fmt.Errorf("%w: agent %s", app_errors.ErrNotFound, agentID)
	}
	s.chat.NewChat()
	agent, _ := s.store.SelectedAgent()
	s.sessions.ListSessions(ctx, agent.AgentID)
	return &agent, nil
}
