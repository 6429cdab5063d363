package api

import (
	"net/http"
	"strconv"

	"fpt-assistant/core/internal/interfaces"
)

// UserHandler serves the anonymous user id and the notification feed.
type UserHandler struct {
	identity      interfaces.IdentityService
	notifications interfaces.NotificationFeed
}

func NewUserHandler(identity interfaces.IdentityService, notifications interfaces.NotificationFeed) *UserHandler {
	return &UserHandler{identity: identity, notifications: notifications}
}

// GetUser godoc
// @Summary      Get the anonymous user id
// @Description  Returns the id sent to the agent endpoint, creating one on first use.
// @Tags         User
// @Produce      json
// @Success      200  {object}  UserResponse
// @Router       /v1/user [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, UserResponse{UserID: h.identity.GetOrCreate(r.Context())})
}

// HandleResetUser godoc
// @Summary      Reset the anonymous user id
// @Description  Forgets the stored id and returns a newly created one.
// @Tags         User
// @Produce      json
// @Success      200  {object}  UserResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/user [delete]
func (h *UserHandler) HandleResetUser(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.Reset(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, UserResponse{UserID: h.identity.GetOrCreate(r.Context())})
}

// GetNotifications godoc
// @Summary      List notifications
// @Description  Returns notifications newer than the given id, oldest first.
// @Tags         User
// @Produce      json
// @Param        after  query     int  false  "Only notifications with a greater id"
// @Success      200    {array}   notify.Notification
// @Router       /v1/notifications [get]
func (h *UserHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	after, _ := strconv.ParseUint(r.URL.Query().Get("after"), 10, 64)
	respondWithJSON(w, http.StatusOK, h.notifications.Since(after))
}
