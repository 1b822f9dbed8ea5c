package routes

import (
	"kindred_server/controllers"
	"kindred_server/middleware"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, auth *middleware.Auth, profileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.Use(auth.RequireAuth)
	profileRouter.HandleFunc("", controller.HandleCreateProfile).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.HandleGetProfile).Methods("GET")
	profileRouter.HandleFunc("", controller.HandleUpdateProfile).Methods("PATCH")
	profileRouter.HandleFunc("", controller.HandleDeleteProfile).Methods("DELETE")
}
