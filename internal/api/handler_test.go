// The `_test` suffix creates a "black box" test package: only exported
// identifiers of `api` are reachable from here.
package api_test

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fpt-assistant/core/internal/api"
	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/interfaces/mocks"
	"fpt-assistant/core/internal/model"
	"fpt-assistant/core/internal/notify"
	"fpt-assistant/core/internal/store"
)

type handlerMocks struct {
	chat     *mocks.MockChatService
	sessions *mocks.MockSessionService
	agents   *mocks.MockAgentService
	identity *mocks.MockIdentityService
	feed     *mocks.MockNotificationFeed
}

// setupRouter wires every handler to fresh mocks behind the real router, so
// tests exercise routing, middleware and handlers together.
func setupRouter(t *testing.T) (http.Handler, handlerMocks) {
	m := handlerMocks{
		chat:     mocks.NewMockChatService(t),
		sessions: mocks.NewMockSessionService(t),
		agents:   mocks.NewMockAgentService(t),
		identity: mocks.NewMockIdentityService(t),
		feed:     mocks.NewMockNotificationFeed(t),
	}
	router := api.NewRouter(api.Handlers{
		Chat:    api.NewChatHandler(m.chat),
		Agent:   api.NewAgentHandler(m.agents),
		Session: api.NewSessionHandler(m.sessions, m.agents),
		User:    api.NewUserHandler(m.identity, m.feed),
	})
	return router, m
}

// addChiURLParams simulates how the chi router injects URL parameters (e.g.
// `{sessionID}`) into the request's context, for calling handlers directly.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthz(t *testing.T) {
	router, _ := setupRouter(t)
	rr := doRequest(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestChatHandler_SubmitMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := setupRouter(t)
		reply := &model.Message{Role: model.RoleAgent, Content: "Học phí là 500k/tín chỉ"}
		m.chat.On("Submit", mock.Anything, "Học phí bao nhiêu?").Return(reply, nil).Once()

		rr := doRequest(router, http.MethodPost, "/api/v1/messages", `{"content":"Học phí bao nhiêu?"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.SubmitMessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, reply.Content, resp.Message.Content)
		assert.Empty(t, resp.Error)
	})

	t.Run("Failure - Missing content", func(t *testing.T) {
		router, _ := setupRouter(t)
		rr := doRequest(router, http.MethodPost, "/api/v1/messages", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr), "Field 'Content' failed on the 'required' tag")
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		router, _ := setupRouter(t)
		rr := doRequest(router, http.MethodPost, "/api/v1/messages", `{"content":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Whitespace only", func(t *testing.T) {
		router, m := setupRouter(t)
		m.chat.On("Submit", mock.Anything, "   ").
			Return(nil, fmt.Errorf("%w: message is empty", app_errors.ErrValidation)).Once()

		rr := doRequest(router, http.MethodPost, "/api/v1/messages", `{"content":"   "}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Already streaming", func(t *testing.T) {
		router, m := setupRouter(t)
		m.chat.On("Submit", mock.Anything, "again").Return(nil, store.ErrStreaming).Once()

		rr := doRequest(router, http.MethodPost, "/api/v1/messages", `{"content":"again"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - Stream failed returns the partial message", func(t *testing.T) {
		router, m := setupRouter(t)
		partial := &model.Message{Role: model.RoleAgent, Content: "Xin chào", StreamingError: true}
		m.chat.On("Submit", mock.Anything, "hi").
			Return(partial, fmt.Errorf("%w: connection reset", app_errors.ErrStreamFailed)).Once()

		rr := doRequest(router, http.MethodPost, "/api/v1/messages", `{"content":"hi"}`)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		var resp api.SubmitMessageResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Message)
		assert.Equal(t, "Xin chào", resp.Message.Content)
		assert.True(t, resp.Message.StreamingError)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("Failure - Cancelled", func(t *testing.T) {
		router, m := setupRouter(t)
		m.chat.On("Submit", mock.Anything, "hi").Return(nil, app_errors.ErrCancelled).Once()

		rr := doRequest(router, http.MethodPost, "/api/v1/messages", `{"content":"hi"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestChatHandler_Transcript(t *testing.T) {
	router, m := setupRouter(t)
	tr := store.Transcript{
		Messages:    []model.Message{{Role: model.RoleUser, Content: "hi"}},
		IsStreaming: true,
	}
	m.chat.On("Transcript").Return(tr).Once()

	rr := doRequest(router, http.MethodGet, "/api/v1/transcript", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var got store.Transcript
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, tr, got)
}

func TestChatHandler_TranscriptStream(t *testing.T) {
	_, m := setupRouter(t)
	handler := api.NewChatHandler(m.chat)

	changes := make(chan struct{}, 1)
	unsubscribed := make(chan struct{})
	m.chat.On("Subscribe").Return((<-chan struct{})(changes), func() { close(unsubscribed) }).Once()
	m.chat.On("Transcript").Return(store.Transcript{Messages: []model.Message{}}).Once()
	m.chat.On("Transcript").Return(store.Transcript{Messages: []model.Message{{Role: model.RoleUser, Content: "hi"}}, IsStreaming: true}).Once()

	server := httptest.NewServer(http.HandlerFunc(handler.HandleTranscriptStream))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() store.Transcript {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		_, err = reader.ReadString('\n') // blank separator
		require.NoError(t, err)
		var tr store.Transcript
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "data: ")), &tr))
		return tr
	}

	assert.Empty(t, readEvent().Messages)
	changes <- struct{}{}
	second := readEvent()
	assert.True(t, second.IsStreaming)
	assert.Len(t, second.Messages, 1)

	require.NoError(t, resp.Body.Close())
	select {
	case <-unsubscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not released after the client left")
	}
}

func TestChatHandler_NewChatAndCancel(t *testing.T) {
	t.Run("New chat", func(t *testing.T) {
		router, m := setupRouter(t)
		m.chat.On("NewChat").Return().Once()
		rr := doRequest(router, http.MethodPost, "/api/v1/chat/new", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Cancel - Streaming", func(t *testing.T) {
		router, m := setupRouter(t)
		m.chat.On("Cancel").Return(true).Once()
		rr := doRequest(router, http.MethodPost, "/api/v1/chat/cancel", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Cancel - Nothing streaming", func(t *testing.T) {
		router, m := setupRouter(t)
		m.chat.On("Cancel").Return(false).Once()
		rr := doRequest(router, http.MethodPost, "/api/v1/chat/cancel", "")
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAgentHandler(t *testing.T) {
	playground := store.Playground{
		EndpointActive:  true,
		Agents:          []model.Agent{{AgentID: "fpt-admissions", Storage: true}},
		SelectedAgentID: "fpt-admissions",
		HasStorage:      true,
	}

	t.Run("Status", func(t *testing.T) {
		router, m := setupRouter(t)
		m.agents.On("CheckStatus", mock.Anything).Return(false).Once()
		rr := doRequest(router, http.MethodGet, "/api/v1/status", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"active":false}`, rr.Body.String())
	})

	t.Run("List agents", func(t *testing.T) {
		router, m := setupRouter(t)
		m.agents.On("Agents").Return(playground).Once()
		rr := doRequest(router, http.MethodGet, "/api/v1/agents", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		var got store.Playground
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, playground, got)
	})

	t.Run("Initialize", func(t *testing.T) {
		router, m := setupRouter(t)
		m.agents.On("Initialize", mock.Anything).Return(playground).Once()
		rr := doRequest(router, http.MethodPost, "/api/v1/playground/init", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Select - Success", func(t *testing.T) {
		router, m := setupRouter(t)
		m.agents.On("SelectAgent", mock.Anything, "fpt-admissions").Return(&model.Agent{AgentID: "fpt-admissions"}, nil).Once()
		rr := doRequest(router, http.MethodPost, "/api/v1/agents/select", `{"agent_id":"fpt-admissions"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Select - Unknown agent", func(t *testing.T) {
		router, m := setupRouter(t)
		m.agents.On("SelectAgent", mock.Anything, "ghost").Return(nil, fmt.Errorf("%w: agent ghost", app_errors.ErrNotFound)).Once()
		rr := doRequest(router, http.MethodPost, "/api/v1/agents/select", `{"agent_id":"ghost"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Select - Validation", func(t *testing.T) {
		router, _ := setupRouter(t)
		rr := doRequest(router, http.MethodPost, "/api/v1/agents/select", `{"agent_id":""}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSessionHandler(t *testing.T) {
	selected := store.Playground{SelectedAgentID: "fpt-admissions"}

	t.Run("List - Cached", func(t *testing.T) {
		router, m := setupRouter(t)
		m.sessions.On("Cached").Return(store.SessionList{Sessions: []model.Session{{SessionID: "s1"}}}).Once()
		rr := doRequest(router, http.MethodGet, "/api/v1/sessions", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"session_id":"s1"`)
	})

	t.Run("List - Refresh", func(t *testing.T) {
		router, m := setupRouter(t)
		m.sessions.On("Refresh", mock.Anything).Return([]model.Session{}).Once()
		m.sessions.On("Cached").Return(store.SessionList{Sessions: []model.Session{}}).Once()
		rr := doRequest(router, http.MethodGet, "/api/v1/sessions?refresh=true", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Get - Not found", func(t *testing.T) {
		router, m := setupRouter(t)
		m.sessions.On("GetSession", mock.Anything, "s9").Return(nil, fmt.Errorf("get: %w", app_errors.ErrNotFound)).Once()
		rr := doRequest(router, http.MethodGet, "/api/v1/sessions/s9", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Get - Upstream failure", func(t *testing.T) {
		router, m := setupRouter(t)
		m.sessions.On("GetSession", mock.Anything, "s1").Return(nil, fmt.Errorf("get: %w", app_errors.ErrUpstream)).Once()
		rr := doRequest(router, http.MethodGet, "/api/v1/sessions/s1", "")
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("History - Success", func(t *testing.T) {
		_, m := setupRouter(t)
		handler := api.NewSessionHandler(m.sessions, m.agents)
		m.sessions.On("GetHistory", mock.Anything, "s1").
			Return([]model.ChatHistoryMessage{{Role: "user", Content: "hi"}}).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s1/history", nil), map[string]string{"sessionID": "s1"})
		rr := httptest.NewRecorder()
		handler.GetHistory(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"role":"user","content":"hi","created_at":0}]`, rr.Body.String())
	})

	t.Run("History - Absent", func(t *testing.T) {
		router, m := setupRouter(t)
		m.sessions.On("GetHistory", mock.Anything, "s1").Return(nil).Once()
		rr := doRequest(router, http.MethodGet, "/api/v1/sessions/s1/history", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Delete - Success", func(t *testing.T) {
		router, m := setupRouter(t)
		m.agents.On("Agents").Return(selected).Once()
		m.sessions.On("DeleteSession", mock.Anything, "fpt-admissions", "s1").Return(true).Once()
		rr := doRequest(router, http.MethodDelete, "/api/v1/sessions/s1", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Delete - Failure", func(t *testing.T) {
		router, m := setupRouter(t)
		m.agents.On("Agents").Return(selected).Once()
		m.sessions.On("DeleteSession", mock.Anything, "fpt-admissions", "s1").Return(false).Once()
		rr := doRequest(router, http.MethodDelete, "/api/v1/sessions/s1", "")
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("Delete - No agent selected", func(t *testing.T) {
		router, m := setupRouter(t)
		m.agents.On("Agents").Return(store.Playground{}).Once()
		rr := doRequest(router, http.MethodDelete, "/api/v1/sessions/s1", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Bulk delete", func(t *testing.T) {
		router, m := setupRouter(t)
		m.agents.On("Agents").Return(selected).Once()
		m.sessions.On("DeleteSessions", mock.Anything, "fpt-admissions", []string{"s1", "s2"}).Return(1).Once()
		rr := doRequest(router, http.MethodPost, "/api/v1/sessions/delete", `{"session_ids":["s1","s2"]}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"deleted":1,"requested":2}`, rr.Body.String())
	})

	t.Run("Bulk delete - Empty list", func(t *testing.T) {
		router, _ := setupRouter(t)
		rr := doRequest(router, http.MethodPost, "/api/v1/sessions/delete", `{"session_ids":[]}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserHandler(t *testing.T) {
	t.Run("Get user", func(t *testing.T) {
		router, m := setupRouter(t)
		m.identity.On("GetOrCreate", mock.Anything).Return("user_abc123xyz_m5d4ruo0").Once()
		rr := doRequest(router, http.MethodGet, "/api/v1/user", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"user_id":"user_abc123xyz_m5d4ruo0"}`, rr.Body.String())
	})

	t.Run("Reset user", func(t *testing.T) {
		router, m := setupRouter(t)
		m.identity.On("Reset", mock.Anything).Return(nil).Once()
		m.identity.On("GetOrCreate", mock.Anything).Return("user_new000000_m5d4ruo1").Once()
		rr := doRequest(router, http.MethodDelete, "/api/v1/user", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "user_new000000_m5d4ruo1")
	})

	t.Run("Reset user - Failure", func(t *testing.T) {
		router, m := setupRouter(t)
		m.identity.On("Reset", mock.Anything).Return(fmt.Errorf("could not clear: %w", app_errors.ErrInternal)).Once()
		rr := doRequest(router, http.MethodDelete, "/api/v1/user", "")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Notifications", func(t *testing.T) {
		router, m := setupRouter(t)
		m.feed.On("Since", uint64(3)).Return([]notify.Notification{{ID: 4, Level: notify.LevelError, Message: "Failed to fetch sessions"}}).Once()
		rr := doRequest(router, http.MethodGet, "/api/v1/notifications?after=3", "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to fetch sessions")
	})
}
