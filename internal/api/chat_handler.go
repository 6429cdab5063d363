package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "fpt-assistant/core/internal/errors"
	"fpt-assistant/core/internal/interfaces"
)

// ChatHandler serves the live conversation: submitting messages, watching the
// transcript and resetting or cancelling the current turn.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleSubmitMessage godoc
// @Summary      Send a chat message
// @Description  Sends a message to the selected agent and waits until the streamed answer ends. Progress is visible on the transcript stream meanwhile.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        messageRequest  body      SubmitMessageRequest   true  "Message content"
// @Success      200             {object}  SubmitMessageResponse
// @Failure      400             {object}  ErrorResponse
// @Failure      409             {object}  ErrorResponse  "Another turn is streaming"
// @Failure      502             {object}  SubmitMessageResponse  "The turn failed; message holds the partial answer"
// @Router       /v1/messages [post]
func (h *ChatHandler) HandleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	msg, err := h.service.Submit(r.Context(), req.Content)
	if err != nil {
		if msg != nil && errors.Is(err, app_errors.ErrStreamFailed) {
			slog.Warn("Chat turn failed", "error", err)
			respondWithJSON(w, http.StatusBadGateway, SubmitMessageResponse{Message: msg, Error: "The agent could not finish its answer."})
			return
		}
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SubmitMessageResponse{Message: msg})
}

// GetTranscript godoc
// @Summary      Get the conversation
// @Description  Returns the messages of the current conversation and whether a turn is streaming.
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  store.Transcript
// @Router       /v1/transcript [get]
func (h *ChatHandler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Transcript())
}

// HandleTranscriptStream godoc
// @Summary      Watch the conversation
// @Description  Streams a transcript snapshot now and after every change. This is a streaming endpoint.
// @Tags         Chat
// @Produce      text/event-stream
// @Success      200  {object}  store.Transcript  "Stream of transcript snapshots"
// @Router       /v1/transcript/stream [get]
func (h *ChatHandler) HandleTranscriptStream(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	changes, unsubscribe := h.service.Subscribe()
	defer unsubscribe()

	if err := writeStreamEvent(w, h.service.Transcript()); err != nil {
		slog.Warn("Could not write to transcript stream, client likely disconnected.", "error", err)
		return
	}

	for {
		select {
		case <-r.Context().Done():
			slog.Debug("Transcript stream closed by client.")
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			if err := writeStreamEvent(w, h.service.Transcript()); err != nil {
				slog.Warn("Could not write to transcript stream, client likely disconnected.", "error", err)
				return
			}
		}
	}
}

// HandleNewChat godoc
// @Summary      Start a new chat
// @Description  Cancels any streaming turn and clears the conversation.
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/chat/new [post]
func (h *ChatHandler) HandleNewChat(w http.ResponseWriter, r *http.Request) {
	h.service.NewChat()
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleCancel godoc
// @Summary      Cancel the streaming turn
// @Description  Stops the answer being streamed. The partial answer stays in the conversation.
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      409  {object}  ErrorResponse  "Nothing is streaming"
// @Router       /v1/chat/cancel [post]
func (h *ChatHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	if !h.service.Cancel() {
		respondWithJSON(w, http.StatusConflict, ErrorResponse{Error: "No response is being streamed."})
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "cancelled"})
}
