package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/rollnconnect/backend/internal/httpx"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Hello reports liveness. A down database is reported in the payload rather
// than failing the request, so the client can distinguish the two.
func (h *HealthHandler) Hello(w http.ResponseWriter, r *http.Request) {
	dbStatus := "up"
	err := h.db.Ping()
	if err != nil {
		dbStatus = "down"
	}

	httpx.WriteJSON(w, map[string]string{
		"message": "backend online",
		"db":      dbStatus,
	}, http.StatusOK)
}
