package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/rollnconnect/backend/internal/httpx"
	"github.com/rollnconnect/backend/internal/service"
	"github.com/rollnconnect/backend/internal/storage"
)

type MediaHandler struct {
	clipService *service.ClipService
}

func NewMediaHandler(clipService *service.ClipService) *MediaHandler {
	return &MediaHandler{clipService: clipService}
}

// Serve streams a blob back with its stored content type. A key with no blob
// behind it (including a dangling clip row after a partial delete) is a 404.
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	body, contentType, err := h.clipService.OpenMedia(key)
	if err == storage.ErrBlobNotFound {
		httpx.WriteError(w, http.StatusNotFound, "media not found")
		return
	}
	if err != nil {
		slog.Error("failed to open media", "error", err, "media_key", key)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load media")
		return
	}
	defer func() { _ = body.Close() }()

	w.Header().Set("Content-Type", contentType)
	_, err = io.Copy(w, body)
	if err != nil {
		// Headers already sent; nothing to do but log.
		slog.Warn("media stream interrupted", "error", err, "media_key", key)
	}
}
