package app

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpt-assistant/core/internal/api"
	"fpt-assistant/core/internal/model"
	"fpt-assistant/core/internal/store"
)

// fakePlayground is an in-memory stand-in for the remote agent API.
type fakePlayground struct {
	mu       sync.Mutex
	sessions []model.Session
	runs     []map[string]string
	users    []string
}

func (p *fakePlayground) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/playground/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /v1/playground/agents", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.Agent{{AgentID: "fpt-admissions", Name: "FPT Admissions", Storage: true}})
	})
	mux.HandleFunc("GET /v1/playground/agents/fpt-admissions/sessions", func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.users = append(p.users, r.Header.Get("X-User-ID"))
		writeJSON(w, p.sessions)
	})
	mux.HandleFunc("DELETE /v1/playground/agents/fpt-admissions/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, s := range p.sessions {
			if s.SessionID == r.PathValue("id") {
				p.sessions = append(p.sessions[:i], p.sessions[i+1:]...)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /v1/playground/sessions/{id}/history", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "s1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, model.ChatHistoryResponse{SessionID: "s1", Messages: []model.ChatHistoryMessage{
			{Role: "system", Content: "rules"},
			{Role: "user", Content: "Học phí bao nhiêu?"},
			{Role: "assistant", Content: "Học phí là 500k/tín chỉ"},
		}})
	})
	mux.HandleFunc("POST /v1/playground/agents/fpt-admissions/runs", func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		form := map[string]string{}
		for k, v := range r.MultipartForm.Value {
			form[k] = v[0]
		}
		p.mu.Lock()
		p.runs = append(p.runs, form)
		p.sessions = []model.Session{{SessionID: "s1", Title: form["message"], CreatedAt: 1700000000}}
		p.mu.Unlock()

		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range []string{
			`{"event":"RunStarted","session_id":"s1","created_at":1700000000}`,
			`{"event":"RunResponseContent","content":"Học phí ","session_id":"s1"}`,
			`{"event":"RunResponseContent","content":"là 500k/tín chỉ","session_id":"s1"}`,
			`{"event":"RunCompleted","content":"Học phí là 500k/tín chỉ","session_id":"s1"}`,
		} {
			_, _ = fmt.Fprintf(w, "data: %s\n\n", chunk)
			w.(http.Flusher).Flush()
		}
	})
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func call(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

// TestAssistantFlow drives the public API end to end against a fake agent
// playground: initialization, a streamed turn, session listing, history
// replay, deletion and a new chat.
func TestAssistantFlow(t *testing.T) {
	remote := &fakePlayground{}
	agentServer := httptest.NewServer(remote.handler(t))
	defer agentServer.Close()

	app, err := NewApp(testConfig(t, agentServer.URL))
	require.NoError(t, err)
	defer func() { require.NoError(t, app.DB.Close()) }()

	server := httptest.NewServer(app.Server.Handler)
	defer server.Close()
	base := server.URL + "/api/v1"

	var state store.Playground
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/playground/init", "", &state))
	assert.True(t, state.EndpointActive)
	assert.Equal(t, "fpt-admissions", state.SelectedAgentID)

	var user api.UserResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/user", "", &user))
	require.NotEmpty(t, user.UserID)

	var reply api.SubmitMessageResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/messages", `{"content":"Học phí bao nhiêu?"}`, &reply))
	require.NotNil(t, reply.Message)
	assert.Equal(t, "Học phí là 500k/tín chỉ", reply.Message.Content)
	assert.False(t, reply.Message.StreamingError)

	var tr store.Transcript
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/transcript", "", &tr))
	require.Len(t, tr.Messages, 2)
	assert.Equal(t, "s1", tr.SessionID)
	assert.False(t, tr.IsStreaming)

	remote.mu.Lock()
	require.Len(t, remote.runs, 1)
	assert.Equal(t, "Học phí bao nhiêu?", remote.runs[0]["message"])
	assert.Equal(t, user.UserID, remote.runs[0]["user_id"])
	remote.mu.Unlock()

	var sessions store.SessionList
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/sessions?refresh=true", "", &sessions))
	require.Len(t, sessions.Sessions, 1)
	assert.Equal(t, "Học phí bao nhiêu?", sessions.Sessions[0].Title)
	remote.mu.Lock()
	assert.Equal(t, user.UserID, remote.users[len(remote.users)-1])
	remote.mu.Unlock()

	var history []model.ChatHistoryMessage
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/sessions/s1/history", "", &history))
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)

	assert.Equal(t, http.StatusNotFound, call(t, http.MethodGet, base+"/sessions/nope/history", "", nil))

	require.Equal(t, http.StatusOK, call(t, http.MethodDelete, base+"/sessions/s1", "", nil))
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/sessions", "", &sessions))
	assert.Empty(t, sessions.Sessions)

	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/chat/new", "", nil))
	var cleared store.Transcript
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, base+"/transcript", "", &cleared))
	assert.Empty(t, cleared.Messages)
	assert.Empty(t, cleared.SessionID)

	assert.Equal(t, http.StatusBadRequest, call(t, http.MethodPost, base+"/messages", `{"content":"   "}`, nil))

	// The user id survives a restart because it is persisted in SQLite.
	restarted, err := NewApp(app.Config)
	require.NoError(t, err)
	defer func() { require.NoError(t, restarted.DB.Close()) }()
	restartedServer := httptest.NewServer(restarted.Server.Handler)
	defer restartedServer.Close()

	var again api.UserResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, restartedServer.URL+"/api/v1/user", "", &again))
	assert.Equal(t, user.UserID, again.UserID)
}
