package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rollnconnect/backend/internal/httpx"
	"github.com/rollnconnect/backend/internal/repository"
	"github.com/rollnconnect/backend/internal/service"
	"github.com/rollnconnect/backend/internal/validation"
)

type ClipHandler struct {
	clipService   *service.ClipService
	maxUploadSize int64
}

func NewClipHandler(clipService *service.ClipService, maxUploadSize int64) *ClipHandler {
	return &ClipHandler{
		clipService:   clipService,
		maxUploadSize: maxUploadSize,
	}
}

func (h *ClipHandler) List(w http.ResponseWriter, r *http.Request) {
	clips, err := h.clipService.Clips()
	if err != nil {
		slog.Error("failed to list clips", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load clips")
		return
	}

	httpx.WriteJSON(w, clips, http.StatusOK)
}

func (h *ClipHandler) Show(w http.ResponseWriter, r *http.Request) {
	clip, err := h.clipService.ByID(r.PathValue("id"))
	if err == repository.ErrClipNotFound {
		httpx.WriteError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		slog.Error("failed to get clip", "error", err, "clip_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load clip")
		return
	}

	httpx.WriteJSON(w, clip, http.StatusOK)
}

func (h *ClipHandler) Create(w http.ResponseWriter, r *http.Request) {
	// ParseMultipartForm's argument is only a memory threshold; the reader is
	// what actually caps the request size.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	err := r.ParseMultipartForm(h.maxUploadSize)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer func() { _ = file.Close() }()

	clipType := r.FormValue("type")

	err = validation.ValidateUpload(header, validation.ForClipType(clipType))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	clip, err := h.clipService.Create(service.CreateClipInput{
		Type:        clipType,
		Title:       formPtr(r, "title"),
		Description: formPtr(r, "description"),
		Caption:     formPtr(r, "caption"),
		UserID:      formPtr(r, "user_id"),
		ExtraJSON:   formPtr(r, "extra_json"),
	}, file, header)
	if err != nil {
		slog.Error("failed to create clip", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create clip")
		return
	}

	httpx.WriteJSON(w, clip, http.StatusCreated)
}

type updateClipRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Caption     *string `json:"caption"`
	ExtraJSON   *string `json:"extra_json"`
}

func (h *ClipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateClipRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	clip, err := h.clipService.Update(r.PathValue("id"), req.Title, req.Description, req.Caption, req.ExtraJSON)
	if err == repository.ErrClipNotFound {
		httpx.WriteError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		slog.Error("failed to update clip", "error", err, "clip_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to update clip")
		return
	}

	httpx.WriteJSON(w, clip, http.StatusOK)
}

func (h *ClipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.clipService.Delete(r.PathValue("id"))
	if err == repository.ErrClipNotFound {
		httpx.WriteError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete clip", "error", err, "clip_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to delete clip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type likeRequest struct {
	UserID string `json:"user_id"`
}

func (h *ClipHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := decodeLikeUser(w, r)
	if !ok {
		return
	}

	result, err := h.clipService.Like(r.PathValue("id"), userID)
	if err == repository.ErrClipNotFound {
		httpx.WriteError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		slog.Error("failed to like clip", "error", err, "clip_id", r.PathValue("id"), "user_id", userID)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to like clip")
		return
	}

	// Cap rejections are expected business outcomes, not errors: still 200.
	httpx.WriteJSON(w, result, http.StatusOK)
}

func (h *ClipHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := decodeLikeUser(w, r)
	if !ok {
		return
	}

	result, err := h.clipService.Unlike(r.PathValue("id"), userID)
	if err == repository.ErrClipNotFound {
		httpx.WriteError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		slog.Error("failed to unlike clip", "error", err, "clip_id", r.PathValue("id"), "user_id", userID)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to unlike clip")
		return
	}

	httpx.WriteJSON(w, result, http.StatusOK)
}

func (h *ClipHandler) Share(w http.ResponseWriter, r *http.Request) {
	total, err := h.clipService.Share(r.PathValue("id"))
	if err == repository.ErrClipNotFound {
		httpx.WriteError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		slog.Error("failed to share clip", "error", err, "clip_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to share clip")
		return
	}

	httpx.WriteJSON(w, map[string]int64{"shares_total": total}, http.StatusOK)
}

func decodeLikeUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req likeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.UserID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "user_id is required")
		return "", false
	}
	return req.UserID, true
}

// formPtr returns a pointer to a form value, or nil when the field was not
// sent (or sent empty, which the update semantics treat the same way).
func formPtr(r *http.Request, key string) *string {
	v := r.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}
