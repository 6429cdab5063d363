package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/interfaces"
)

// SessionHandler handles HTTP requests for the stored sessions of the
// selected agent.
type SessionHandler struct {
	sessions interfaces.SessionService
	agents   interfaces.AgentService
}

func NewSessionHandler(sessions interfaces.SessionService, agents interfaces.AgentService) *SessionHandler {
	return &SessionHandler{sessions: sessions, agents: agents}
}

// GetSessions godoc
// @Summary      List sessions
// @Description  Returns the cached sessions of the selected agent. With refresh=true they are reloaded first.
// @Tags         Sessions
// @Produce      json
// @Param        refresh  query     bool  false  "Reload from the agent endpoint"
// @Success      200      {object}  store.SessionList
// @Router       /v1/sessions [get]
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	if refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh")); refresh {
		h.sessions.Refresh(r.Context())
	}
	respondWithJSON(w, http.StatusOK, h.sessions.Cached())
}

// GetSession godoc
// @Summary      Get a session
// @Description  Retrieves one stored session of the selected agent.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  model.SessionDetail
// @Failure      404        {object}  ErrorResponse
// @Failure      502        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	detail, err := h.sessions.GetSession(r.Context(), sessionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, detail)
}

// GetHistory godoc
// @Summary      Get session history
// @Description  Returns the stored messages of a session, without system messages.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {array}   model.ChatHistoryMessage
// @Failure      404        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID}/history [get]
func (h *SessionHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	history := h.sessions.GetHistory(r.Context(), sessionID)
	if history == nil {
		respondWithError(w, fmt.Errorf("%w: no history for session %s", app_errors.ErrNotFound, sessionID))
		return
	}
	respondWithJSON(w, http.StatusOK, history)
}

// HandleDeleteSession godoc
// @Summary      Delete a session
// @Description  Deletes one stored session of the selected agent.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  StatusResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      502        {object}  ErrorResponse
// @Router       /v1/sessions/{sessionID} [delete]
func (h *SessionHandler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	agentID, err := h.selectedAgent()
	if err != nil {
		respondWithError(w, err)
		return
	}
	sessionID := chi.URLParam(r, "sessionID")
	if !h.sessions.DeleteSession(r.Context(), agentID, sessionID) {
		respondWithError(w, fmt.Errorf("%w: could not delete session %s", app_errors.ErrUpstream, sessionID))
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleBulkDelete godoc
// @Summary      Delete several sessions
// @Description  Deletes the given sessions of the selected agent and reports how many were deleted.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        deleteRequest  body      BulkDeleteRequest  true  "Sessions to delete"
// @Success      200            {object}  BulkDeleteResponse
// @Failure      400            {object}  ErrorResponse
// @Router       /v1/sessions/delete [post]
func (h *SessionHandler) HandleBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	agentID, err := h.selectedAgent()
	if err != nil {
		respondWithError(w, err)
		return
	}

	deleted := h.sessions.DeleteSessions(r.Context(), agentID, req.SessionIDs)
	respondWithJSON(w, http.StatusOK, BulkDeleteResponse{Deleted: deleted, Requested: len(req.SessionIDs)})
}

func (h *SessionHandler) selectedAgent() (string, error) {
	agentID := h.agents.Agents().SelectedAgentID
	if agentID == "" {
		return "", fmt.Errorf("%w: no agent selected", app_errors.ErrValidation)
	}
	return agentID, nil
}
