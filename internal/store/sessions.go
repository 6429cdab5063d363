package store

import (
	"slices"

	"fpt-assistant/core/internal/model"
)

// Playground is a copy of the endpoint and agent selection state.
type Playground struct {
	EndpointActive  bool          `json:"endpoint_active"`
	EndpointLoading bool          `json:"endpoint_loading"`
	Agents          []model.Agent `json:"agents"`
	SelectedAgentID string        `json:"selected_agent_id,omitempty"`
	HasStorage      bool          `json:"has_storage"`
}

// Playground returns the endpoint and agent state.
func (s *Store) Playground() Playground {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := Playground{
		EndpointActive:  s.endpointActive,
		EndpointLoading: s.endpointLoading,
		Agents:          slices.Clone(s.agents),
		SelectedAgentID: s.selectedAgentID,
	}
	if p.Agents == nil {
		p.Agents = []model.Agent{}
	}
	if a, ok := s.agentLocked(s.selectedAgentID); ok {
		p.HasStorage = a.Storage
	}
	return p
}

// SetEndpointStatus records the health of the remote endpoint.
func (s *Store) SetEndpointStatus(active, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endpointActive = active
	s.endpointLoading = loading
	s.notifyLocked()
}

// SetAgents replaces the cached agent list. A selection that no longer exists
// is dropped.
func (s *Store) SetAgents(agents []model.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents = slices.Clone(agents)
	if _, ok := s.agentLocked(s.selectedAgentID); !ok {
		s.selectedAgentID = ""
	}
	s.notifyLocked()
}

// SelectAgent makes agentID the active agent. It reports false when the agent
// is not in the cached list.
func (s *Store) SelectAgent(agentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.agentLocked(agentID); !ok {
		return false
	}
	s.selectedAgentID = agentID
	s.notifyLocked()
	return true
}

// SelectedAgent returns the active agent.
func (s *Store) SelectedAgent() (model.Agent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agentLocked(s.selectedAgentID)
}

func (s *Store) agentLocked(agentID string) (model.Agent, bool) {
	if agentID == "" {
		return model.Agent{}, false
	}
	for _, a := range s.agents {
		if a.AgentID == agentID {
			return a, true
		}
	}
	return model.Agent{}, false
}

// SessionList is a copy of the cached session list. Sessions is nil until the
// first load completes.
type SessionList struct {
	Sessions  []model.Session `json:"sessions"`
	IsLoading bool            `json:"is_loading"`
}

// Sessions returns the cached session list.
func (s *Store) Sessions() SessionList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionList{Sessions: slices.Clone(s.sessions), IsLoading: s.sessionsLoading}
}

// BeginSessionsLoad marks a session list request as started and returns its
// sequence number. Only the response of the latest request is applied.
func (s *Store) BeginSessionsLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionsSeq++
	s.sessionsLoading = true
	s.notifyLocked()
	return s.sessionsSeq
}

// SetSessions replaces the cached list with the response of request seq. It
// reports false, and changes nothing, when a newer request has started since.
func (s *Store) SetSessions(seq uint64, sessions []model.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.sessionsSeq {
		return false
	}
	s.sessions = slices.Clone(sessions)
	if s.sessions == nil {
		s.sessions = []model.Session{}
	}
	s.sessionsLoading = false
	s.notifyLocked()
	return true
}

// PrependSession adds a newly created session at the top of the cached list
// unless it is already present.
func (s *Store) PrependSession(session model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.ContainsFunc(s.sessions, func(e model.Session) bool { return e.SessionID == session.SessionID }) {
		return
	}
	s.sessions = append([]model.Session{session}, s.sessions...)
	s.notifyLocked()
}

// RemoveSessions drops the given ids from the cached list.
func (s *Store) RemoveSessions(sessionIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		return
	}
	s.sessions = slices.DeleteFunc(s.sessions, func(e model.Session) bool {
		return slices.Contains(sessionIDs, e.SessionID)
	})
	s.notifyLocked()
}
