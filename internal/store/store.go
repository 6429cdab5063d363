// Package store holds the client-side state of the assistant: the live
// transcript of the active conversation, the streaming flag, the cached agent
// and session lists. All mutation goes through named transition methods.
package store

import (
	"errors"
	"fmt"
	"sync"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/model"
)

// ErrStaleTurn is returned when a transition targets a turn that is no longer
// in flight (it was finalized, or the transcript was cleared since).
var ErrStaleTurn = fmt.Errorf("%w: turn is no longer in flight", app_errors.ErrConflict)

// ErrStreaming is returned when a new turn is started while another one is
// still streaming.
var ErrStreaming = fmt.Errorf("%w: a response is already streaming", app_errors.ErrConflict)

// Turn identifies one user turn. Writes carrying an old Turn are rejected.
type Turn uint64

// Store is the single source of truth for the assistant's state. It is owned
// by the application root and shared by reference.
type Store struct {
	mu sync.RWMutex

	messages              []model.Message
	streaming             bool
	turn                  Turn
	inFlight              int
	turnIndex             int
	streamingErrorMessage string
	sessionID             string

	agents          []model.Agent
	selectedAgentID string
	endpointActive  bool
	endpointLoading bool

	sessions        []model.Session
	sessionsLoading bool
	sessionsSeq     uint64

	subs    map[int]chan struct{}
	nextSub int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		inFlight:  -1,
		turnIndex: -1,
		subs:      make(map[int]chan struct{}),
	}
}

// Subscribe returns a channel that receives a signal after every state change,
// and a function that cancels the subscription. Signals coalesce: a slow
// reader sees at least one signal after the latest change.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// notifyLocked must be called with s.mu held.
func (s *Store) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// IsStale reports whether err came from a write to a finished turn.
func IsStale(err error) bool {
	return errors.Is(err, ErrStaleTurn)
}
