package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rollnconnect/backend/internal/httpx"
	"github.com/rollnconnect/backend/internal/model"
	"github.com/rollnconnect/backend/internal/service"
)

type ItemHandler struct {
	itemService *service.ItemService
}

func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.Items()
	if err != nil {
		slog.Error("failed to list items", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to load items")
		return
	}

	httpx.WriteJSON(w, map[string][]*model.Item{"items": items}, http.StatusOK)
}

type createItemRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := h.itemService.Create(req.Title, req.Description, req.Price)
	if err == service.ErrMissingItemTitle {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create item", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	httpx.WriteJSON(w, map[string]any{"ok": true, "item": item}, http.StatusCreated)
}
