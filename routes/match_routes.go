package routes

import (
	"kindred_server/controllers"
	"kindred_server/middleware"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for matching operations under /api/matches
func RegisterMatchRoutes(r *mux.Router, auth *middleware.Auth, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(auth.RequireAuth)
	matchRouter.HandleFunc("/candidates", controller.HandleGetCandidates).Methods("GET")
	matchRouter.HandleFunc("/like", controller.HandleLike).Methods("POST")
	matchRouter.HandleFunc("/confirmed", controller.HandleConfirmedMatches).Methods("GET")
	matchRouter.HandleFunc("/block", controller.HandleBlock).Methods("POST")
	matchRouter.HandleFunc("/unblock", controller.HandleUnblock).Methods("POST")
}
