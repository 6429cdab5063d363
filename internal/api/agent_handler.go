package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/interfaces"
)

// AgentHandler handles HTTP requests for the remote endpoint and its agents.
type AgentHandler struct {
	service interfaces.AgentService
}

func NewAgentHandler(svc interfaces.AgentService) *AgentHandler {
	return &AgentHandler{service: svc}
}

// HandleStatus godoc
// @Summary      Check the agent endpoint
// @Description  Probes the remote playground endpoint and reports whether it answers.
// @Tags         Agents
// @Produce      json
// @Success      200  {object}  EndpointStatusResponse
// @Router       /v1/status [get]
func (h *AgentHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, EndpointStatusResponse{Active: h.service.CheckStatus(r.Context())})
}

// HandleListAgents godoc
// @Summary      List agents
// @Description  Returns the agents loaded at initialization and the selected one.
// @Tags         Agents
// @Produce      json
// @Success      200  {object}  store.Playground
// @Router       /v1/agents [get]
func (h *AgentHandler) HandleListAgents(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Agents())
}

// HandleSelectAgent godoc
// @Summary      Select an agent
// @Description  Switches the active agent. The current conversation is discarded.
// @Tags         Agents
// @Accept       json
// @Produce      json
// @Param        agentRequest  body      SelectAgentRequest  true  "Agent to select"
// @Success      200           {object}  model.Agent
// @Failure      400           {object}  ErrorResponse
// @Failure      404           {object}  ErrorResponse
// @Router       /v1/agents/select [post]
func (h *AgentHandler) HandleSelectAgent(w http.ResponseWriter, r *http.Request) {
	var req SelectAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	agent, err := h.service.SelectAgent(r.Context(), req.AgentID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, agent)
}

// HandleInitialize godoc
// @Summary      Initialize the playground
// @Description  Re-checks the endpoint, reloads agents and the sessions of the selected agent.
// @Tags         Agents
// @Produce      json
// @Success      200  {object}  store.Playground
// @Router       /v1/playground/init [post]
func (h *AgentHandler) HandleInitialize(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Initialize(r.Context()))
}
