package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/rollnconnect/backend/internal/httpx"
	"github.com/rollnconnect/backend/internal/service"
)

const maxDocumentSize = 1 << 20 // 1MB cap on profile/notification documents

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	doc, err := h.profileService.ByID(r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get profile", "error", err, "profile_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	// A missing profile serializes as null, which the client treats as empty.
	httpx.WriteJSON(w, map[string]json.RawMessage{"profile": doc}, http.StatusOK)
}

func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	doc, err := h.profileService.Save(r.PathValue("id"), body)
	if err == service.ErrInvalidProfileDoc {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to save profile", "error", err, "profile_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	httpx.WriteJSON(w, map[string]any{"ok": true, "profile": doc}, http.StatusOK)
}
