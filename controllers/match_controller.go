package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"kindred_server/middleware"
	"kindred_server/models"
)

// MatchAPI is the matching surface the controller exposes over HTTP.
// *services.MatchService implements it.
type MatchAPI interface {
	GetCandidates(ctx context.Context, userID string, filters models.CandidateFilters, page, pageSize int) (*models.CandidatePage, error)
	Like(ctx context.Context, userID, targetID string) (*models.PairMatch, error)
	GetConfirmedMatches(ctx context.Context, userID string) ([]models.CandidateProfile, error)
	Block(ctx context.Context, userID, targetID string) error
	Unblock(ctx context.Context, userID, targetID string) error
}

type MatchController struct {
	Service MatchAPI
}

// NewMatchController initializes the controller
func NewMatchController(service MatchAPI) *MatchController {
	return &MatchController{Service: service}
}

// HandleGetCandidates - ranked, paginated candidate feed for the caller
func (c *MatchController) HandleGetCandidates(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CallerID(r)
	query := r.URL.Query()

	filters := models.CandidateFilters{
		Education:         query.Get("education"),
		RelationshipGoals: query.Get("relationshipGoals"),
		Interests:         query.Get("interests"),
		PersonalityType:   query.Get("personalityType"),
	}
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	result, err := c.Service.GetCandidates(r.Context(), userID, filters, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleLike - caller likes another user
func (c *MatchController) HandleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetID string `json:"targetId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	userID := middleware.CallerID(r)
	log.Printf("💖 %s liked %s", userID, request.TargetID)

	pair, err := c.Service.Like(r.Context(), userID, request.TargetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

// HandleConfirmedMatches - everyone the caller has mutually matched with
func (c *MatchController) HandleConfirmedMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := c.Service.GetConfirmedMatches(r.Context(), middleware.CallerID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

// HandleBlock - caller blocks another user
func (c *MatchController) HandleBlock(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetID string `json:"targetId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	userID := middleware.CallerID(r)
	if err := c.Service.Block(r.Context(), userID, request.TargetID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "User blocked"})
}

// HandleUnblock - caller unblocks another user
func (c *MatchController) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetID string `json:"targetId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	userID := middleware.CallerID(r)
	if err := c.Service.Unblock(r.Context(), userID, request.TargetID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "User unblocked"})
}
