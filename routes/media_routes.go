package routes

import (
	"kindred_server/controllers"
	"kindred_server/middleware"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up routes for photo storage under /api/media
func RegisterMediaRoutes(r *mux.Router, auth *middleware.Auth, mediaService *services.MediaService) {
	controller := controllers.NewMediaController(mediaService)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()
	mediaRouter.Use(auth.RequireAuth)
	mediaRouter.HandleFunc("/upload-url", controller.HandleUploadURL).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controller.HandleReadURL).Methods("GET")
}
