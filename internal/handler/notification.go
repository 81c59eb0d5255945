package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/rollnconnect/backend/internal/httpx"
	"github.com/rollnconnect/backend/internal/model"
	"github.com/rollnconnect/backend/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationService.ByUser(r.PathValue("userId"))
	if err != nil {
		slog.Error("failed to list notifications", "error", err, "user_id", r.PathValue("userId"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load notifications")
		return
	}

	httpx.WriteJSON(w, map[string][]*model.Notification{"notifications": notifications}, http.StatusOK)
}

// Push stores a note and returns the user's full list newest first, which is
// what the client renders after posting.
func (h *NotificationHandler) Push(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	notifications, err := h.notificationService.Push(r.PathValue("userId"), body)
	if err == service.ErrInvalidNotification {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to push notification", "error", err, "user_id", r.PathValue("userId"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to push notification")
		return
	}

	httpx.WriteJSON(w, map[string]any{"ok": true, "notifications": notifications}, http.StatusCreated)
}
