package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rollnconnect/backend/internal/httpx"
	"github.com/rollnconnect/backend/internal/repository"
	"github.com/rollnconnect/backend/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.Comments(r.PathValue("id"))
	if err != nil {
		slog.Error("failed to list comments", "error", err, "clip_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load comments")
		return
	}

	httpx.WriteJSON(w, comments, http.StatusOK)
}

type createCommentRequest struct {
	UserID string `json:"user_id"`
	Body   string `json:"body"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	comment, err := h.commentService.Create(r.PathValue("id"), req.UserID, req.Body)
	if err == service.ErrMissingCommentUser || err == service.ErrMissingCommentBody {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err == repository.ErrClipNotFound {
		httpx.WriteError(w, http.StatusNotFound, "clip not found")
		return
	}
	if err != nil {
		slog.Error("failed to create comment", "error", err, "clip_id", r.PathValue("id"))
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create comment")
		return
	}

	httpx.WriteJSON(w, comment, http.StatusCreated)
}
