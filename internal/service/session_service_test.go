package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/model"
	"fpt-assistant/core/internal/notify"
	"fpt-assistant/core/internal/playground"
	"fpt-assistant/core/internal/playground/mocks"
	"fpt-assistant/core/internal/service"
	"fpt-assistant/core/internal/store"
)

type sessionFixture struct {
	svc   *service.SessionService
	api   *mocks.MockAPI
	store *store.Store
	feed  *notify.Feed
}

func setupSessionService(t *testing.T) sessionFixture {
	api := mocks.NewMockAPI(t)
	st := store.New()
	st.SetAgents([]model.Agent{{AgentID: "fpt-admissions", Storage: true}})
	require.True(t, st.SelectAgent("fpt-admissions"))
	feed := notify.NewFeed(10)
	svc, err := service.NewSessionService(api, st, feed, staticUser("user_abc"), 4)
	require.NoError(t, err)
	return sessionFixture{svc: svc, api: api, store: st, feed: feed}
}

func messages(feed *notify.Feed) []string {
	var out []string
	for _, n := range feed.Since(0) {
		out = append(out, n.Message)
	}
	return out
}

func notFound() error {
	return &playground.StatusError{Op: "test", Code: http.StatusNotFound}
}

func serverError() error {
	return &playground.StatusError{Op: "test", Code: http.StatusInternalServerError}
}

func TestSessionService_ListSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupSessionService(t)
		expected := []model.Session{{SessionID: "s1", Title: "Học phí"}, {SessionID: "s2", Title: "Ký túc xá"}}
		f.api.On("ListSessions", mock.Anything, "fpt-admissions", "user_abc").Return(expected, nil).Once()

		sessions := f.svc.ListSessions(ctx, "fpt-admissions")
		assert.Equal(t, expected, sessions)
		assert.Equal(t, expected, f.svc.Cached().Sessions)
		assert.False(t, f.svc.Cached().IsLoading)
		assert.Empty(t, messages(f.feed))
	})

	t.Run("Failure - 404 yields an empty list silently", func(t *testing.T) {
		f := setupSessionService(t)
		f.api.On("ListSessions", mock.Anything, "fpt-admissions", "user_abc").Return(nil, notFound()).Once()

		sessions := f.svc.ListSessions(ctx, "fpt-admissions")
		assert.NotNil(t, sessions)
		assert.Empty(t, sessions)
		assert.Empty(t, messages(f.feed))
	})

	t.Run("Failure - 500 yields an empty list and a notification", func(t *testing.T) {
		f := setupSessionService(t)
		f.api.On("ListSessions", mock.Anything, "fpt-admissions", "user_abc").Return(nil, serverError()).Once()

		sessions := f.svc.ListSessions(ctx, "fpt-admissions")
		assert.Empty(t, sessions)
		assert.Equal(t, []string{"Failed to fetch sessions"}, messages(f.feed))
	})

	t.Run("Stale response is discarded", func(t *testing.T) {
		f := setupSessionService(t)
		entered := make(chan struct{})
		release := make(chan struct{})
		older := []model.Session{{SessionID: "old"}}
		newer := []model.Session{{SessionID: "new"}}

		f.api.On("ListSessions", mock.Anything, "fpt-admissions", "user_abc").
			Return(func(context.Context, string, string) ([]model.Session, error) {
				close(entered)
				<-release
				return older, nil
			}).Once()
		f.api.On("ListSessions", mock.Anything, "fpt-admissions", "user_abc").Return(newer, nil).Once()

		done := make(chan []model.Session, 1)
		go func() { done <- f.svc.ListSessions(ctx, "fpt-admissions") }()
		<-entered

		assert.Equal(t, newer, f.svc.ListSessions(ctx, "fpt-admissions"))
		close(release)

		assert.Equal(t, newer, <-done, "the older load reports the current list")
		assert.Equal(t, newer, f.svc.Cached().Sessions)
	})

	t.Run("Refresh without a selected agent", func(t *testing.T) {
		api := mocks.NewMockAPI(t)
		svc, err := service.NewSessionService(api, store.New(), notify.NewFeed(1), staticUser("u"), 1)
		require.NoError(t, err)
		assert.Empty(t, svc.Refresh(ctx))
	})
}

func TestSessionService_GetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupSessionService(t)
		f.api.On("GetSession", mock.Anything, "fpt-admissions", "s1", "user_abc").
			Return(&model.SessionDetail{SessionID: "s1"}, nil).Once()

		detail, err := f.svc.GetSession(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "s1", detail.SessionID)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		f := setupSessionService(t)
		f.api.On("GetSession", mock.Anything, "fpt-admissions", "missing", "user_abc").Return(nil, notFound()).Once()

		_, err := f.svc.GetSession(ctx, "missing")
		assert.ErrorIs(t, err, app_errors.ErrNotFound)
	})
}

func TestSessionService_GetHistory(t *testing.T) {
	ctx := context.Background()
	stored := &model.ChatHistoryResponse{
		SessionID: "s1",
		Messages: []model.ChatHistoryMessage{
			{Role: model.HistoryRoleSystem, Content: "You are an admissions assistant."},
			{Role: model.HistoryRoleUser, Content: "Học phí bao nhiêu?"},
			{Role: model.HistoryRoleSystem, Content: "Context"},
			{Role: model.HistoryRoleAssistant, Content: "Học phí là 500k/tín chỉ"},
		},
	}

	t.Run("Success - System messages removed and order kept", func(t *testing.T) {
		f := setupSessionService(t)
		f.api.On("GetChatHistory", mock.Anything, "s1", "user_abc").Return(stored, nil).Once()

		history := f.svc.GetHistory(ctx, "s1")
		require.Len(t, history, 2)
		assert.Equal(t, "Học phí bao nhiêu?", history[0].Content)
		assert.Equal(t, "Học phí là 500k/tín chỉ", history[1].Content)

		// Second read is served from the cache; the mock allows one call only.
		assert.Equal(t, history, f.svc.GetHistory(ctx, "s1"))
	})

	t.Run("Success - Invalidate forces a reload", func(t *testing.T) {
		f := setupSessionService(t)
		f.api.On("GetChatHistory", mock.Anything, "s1", "user_abc").Return(stored, nil).Twice()

		_ = f.svc.GetHistory(ctx, "s1")
		f.svc.Invalidate("s1")
		_ = f.svc.GetHistory(ctx, "s1")
	})

	t.Run("Failure - 404 returns nil silently", func(t *testing.T) {
		f := setupSessionService(t)
		f.api.On("GetChatHistory", mock.Anything, "gone", "user_abc").Return(nil, notFound()).Once()

		assert.Nil(t, f.svc.GetHistory(ctx, "gone"))
		assert.Empty(t, messages(f.feed))
	})

	t.Run("Failure - Upstream error notifies", func(t *testing.T) {
		f := setupSessionService(t)
		f.api.On("GetChatHistory", mock.Anything, "s1", "user_abc").Return(nil, serverError()).Once()

		assert.Nil(t, f.svc.GetHistory(ctx, "s1"))
		assert.Equal(t, []string{"Failed to load chat history"}, messages(f.feed))
	})
}

func TestFilterHistory(t *testing.T) {
	assert.Empty(t, service.FilterHistory(nil))
	assert.Empty(t, service.FilterHistory([]model.ChatHistoryMessage{{Role: model.HistoryRoleSystem}}))
}

func TestSessionService_DeleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupSessionService(t)
		f.store.SetSessions(f.store.BeginSessionsLoad(), []model.Session{{SessionID: "s1"}, {SessionID: "s2"}})
		f.api.On("DeleteSession", mock.Anything, "fpt-admissions", "s1", "user_abc").Return(nil).Once()

		assert.True(t, f.svc.DeleteSession(ctx, "fpt-admissions", "s1"))
		assert.Equal(t, []model.Session{{SessionID: "s2"}}, f.svc.Cached().Sessions)
		assert.Equal(t, []string{"Session deleted successfully"}, messages(f.feed))
	})

	t.Run("Failure - Upstream error", func(t *testing.T) {
		f := setupSessionService(t)
		f.store.SetSessions(f.store.BeginSessionsLoad(), []model.Session{{SessionID: "s1"}})
		f.api.On("DeleteSession", mock.Anything, "fpt-admissions", "s1", "user_abc").Return(serverError()).Once()

		assert.False(t, f.svc.DeleteSession(ctx, "fpt-admissions", "s1"))
		assert.Len(t, f.svc.Cached().Sessions, 1)
		assert.Equal(t, []string{"Failed to delete session"}, messages(f.feed))
	})

	t.Run("Failure - Missing parameters", func(t *testing.T) {
		f := setupSessionService(t)
		assert.False(t, f.svc.DeleteSession(ctx, "", "s1"))
		assert.Equal(t, []string{"Missing required parameters for session deletion"}, messages(f.feed))
	})
}

func TestSessionService_DeleteSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - All deleted", func(t *testing.T) {
		f := setupSessionService(t)
		ids := []string{"s1", "s2", "s3"}
		for _, id := range ids {
			f.api.On("DeleteSession", mock.Anything, "fpt-admissions", id, "user_abc").Return(nil).Once()
		}

		assert.Equal(t, 3, f.svc.DeleteSessions(ctx, "fpt-admissions", ids))
		assert.Equal(t, []string{"Successfully deleted 3 sessions"}, messages(f.feed))
	})

	t.Run("Partial", func(t *testing.T) {
		f := setupSessionService(t)
		f.store.SetSessions(f.store.BeginSessionsLoad(), []model.Session{{SessionID: "s1"}, {SessionID: "s2"}})
		f.api.On("DeleteSession", mock.Anything, "fpt-admissions", "s1", "user_abc").Return(nil).Once()
		f.api.On("DeleteSession", mock.Anything, "fpt-admissions", "s2", "user_abc").Return(errors.New("timeout")).Once()

		assert.Equal(t, 1, f.svc.DeleteSessions(ctx, "fpt-admissions", []string{"s1", "s2"}))
		assert.Equal(t, []model.Session{{SessionID: "s2"}}, f.svc.Cached().Sessions)
		assert.Equal(t, []string{"Deleted 1 out of 2 sessions"}, messages(f.feed))
	})

	t.Run("Partial - One failure does not cancel the other deletions", func(t *testing.T) {
		f := setupSessionService(t)
		live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
		f.api.On("DeleteSession", mock.Anything, "fpt-admissions", "s0", "user_abc").Return(serverError()).Once()
		for _, id := range []string{"s1", "s2", "s3", "s4"} {
			f.api.On("DeleteSession", live, "fpt-admissions", id, "user_abc").Return(nil).Once()
		}

		assert.Equal(t, 4, f.svc.DeleteSessions(ctx, "fpt-admissions", []string{"s0", "s1", "s2", "s3", "s4"}))
		assert.Equal(t, []string{"Deleted 4 out of 5 sessions"}, messages(f.feed))
	})

	t.Run("Failure - None deleted", func(t *testing.T) {
		f := setupSessionService(t)
		for i := range 2 {
			f.api.On("DeleteSession", mock.Anything, "fpt-admissions", fmt.Sprintf("s%d", i), "user_abc").Return(serverError()).Once()
		}

		assert.Zero(t, f.svc.DeleteSessions(ctx, "fpt-admissions", []string{"s0", "s1"}))
		assert.Equal(t, []string{"Failed to delete any sessions"}, messages(f.feed))
	})

	t.Run("Failure - Missing parameters", func(t *testing.T) {
		f := setupSessionService(t)
		assert.Zero(t, f.svc.DeleteSessions(ctx, "fpt-admissions", nil))
		assert.Equal(t, []string{"Missing required parameters for bulk session deletion"}, messages(f.feed))
	})
}
