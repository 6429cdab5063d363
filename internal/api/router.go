package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "fpt-assistant/core/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Chat    *ChatHandler
	Agent   *AgentHandler
	Session *SessionHandler
	User    *UserHandler
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// --- Public Routes ---

	// Serves the Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe. Only the 200 status matters.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes run under a request timeout.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Endpoint & Agents ---
			r.Get("/status", h.Agent.HandleStatus)
			r.Get("/agents", h.Agent.HandleListAgents)
			r.Post("/agents/select", h.Agent.HandleSelectAgent)
			r.Post("/playground/init", h.Agent.HandleInitialize)

			// --- Conversation ---
			r.Get("/transcript", h.Chat.GetTranscript)
			r.Post("/chat/new", h.Chat.HandleNewChat)
			r.Post("/chat/cancel", h.Chat.HandleCancel)

			// --- Sessions ---
			r.Get("/sessions", h.Session.GetSessions)
			r.Post("/sessions/delete", h.Session.HandleBulkDelete)
			r.Get("/sessions/{sessionID}", h.Session.GetSession)
			r.Get("/sessions/{sessionID}/history", h.Session.GetHistory)
			r.Delete("/sessions/{sessionID}", h.Session.HandleDeleteSession)

			// --- User ---
			r.Get("/user", h.User.GetUser)
			r.Delete("/user", h.User.HandleResetUser)
			r.Get("/notifications", h.User.GetNotifications)
		})

		// A turn lasts as long as the agent keeps streaming, and the
		// transcript stream stays open until the client leaves. Neither
		// may have a timeout.
		r.Group(func(r chi.Router) {
			r.Post("/messages", h.Chat.HandleSubmitMessage)
			r.Get("/transcript/stream", h.Chat.HandleTranscriptStream)
		})
	})

	return r
}
