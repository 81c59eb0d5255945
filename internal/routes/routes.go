package routes

import (
	"net/http"

	"github.com/rollnconnect/backend/internal/app"
	"github.com/rollnconnect/backend/internal/handler"
	"github.com/rollnconnect/backend/internal/httpx"
	"github.com/rollnconnect/backend/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	clip := handler.NewClipHandler(app.ClipService, app.Cfg.MaxUploadSize)
	comment := handler.NewCommentHandler(app.CommentService)
	media := handler.NewMediaHandler(app.ClipService)
	profile := handler.NewProfileHandler(app.ProfileService)
	item := handler.NewItemHandler(app.ItemService)
	notification := handler.NewNotificationHandler(app.NotificationService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /api/hello", health.Hello)

	// Clips feed
	mux.HandleFunc("GET /api/clips", clip.List)
	mux.HandleFunc("POST /api/clips", clip.Create)
	mux.HandleFunc("GET /api/clips/{id}", clip.Show)
	mux.HandleFunc("PUT /api/clips/{id}", clip.Update)
	mux.HandleFunc("DELETE /api/clips/{id}", clip.Delete)

	// Engagement
	mux.HandleFunc("POST /api/clips/{id}/like", clip.Like)
	mux.HandleFunc("POST /api/clips/{id}/unlike", clip.Unlike)
	mux.HandleFunc("POST /api/clips/{id}/share", clip.Share)

	// Comments
	mux.HandleFunc("GET /api/clips/{id}/comments", comment.List)
	mux.HandleFunc("POST /api/clips/{id}/comments", comment.Create)

	// Media proxy
	mux.HandleFunc("GET /media/{key}", media.Serve)

	// Profiles
	mux.HandleFunc("GET /api/profile/{id}", profile.Show)
	mux.HandleFunc("PUT /api/profile/{id}", profile.Save)

	// Marketplace
	mux.HandleFunc("GET /api/items", item.List)
	mux.HandleFunc("POST /api/items", item.Create)

	// Notifications
	mux.HandleFunc("GET /api/notifications/{userId}", notification.List)
	mux.HandleFunc("POST /api/notifications/{userId}", notification.Push)

	// 404
	mux.HandleFunc("/{path...}", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "not found")
	})

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Recover,
		middleware.CORS, // must run before routing so preflights never 404
		middleware.RequestLogging,
	)

	return h
}
