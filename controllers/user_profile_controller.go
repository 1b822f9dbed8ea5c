package controllers

import (
	"encoding/json"
	"net/http"

	"kindred_server/middleware"
	"kindred_server/models"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

type UserProfileController struct {
	Service *services.UserProfileService
}

func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{Service: service}
}

// HandleCreateProfile - provision the caller's profile
func (c *UserProfileController) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	profile.UserID = middleware.CallerID(r)

	created, err := c.Service.AddUserProfile(r.Context(), profile)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleGetProfile - fetch a profile by id
func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.Service.GetUserProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Callers only see their own full record; other profiles are served
	// in the public shape.
	if userID == middleware.CallerID(r) {
		writeJSON(w, http.StatusOK, profile)
		return
	}
	writeJSON(w, http.StatusOK, profile.Candidate())
}

// HandleUpdateProfile - partial update of the caller's profile
func (c *UserProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updated, err := c.Service.UpdateUserProfile(r.Context(), middleware.CallerID(r), updates)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleDeleteProfile - remove the caller's profile
func (c *UserProfileController) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteUserProfile(r.Context(), middleware.CallerID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Profile deleted"})
}
