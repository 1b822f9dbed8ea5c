package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kindred_server/middleware"
	"kindred_server/services"
)

type ChatController struct {
	Service *services.ChatService
}

func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{Service: service}
}

// HandleSendMessage - caller sends a message to a matched user
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetID string `json:"targetId"`
		Content  string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	message, err := c.Service.SendMessage(r.Context(), middleware.CallerID(r), request.TargetID, request.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

// HandleGetMessages - latest messages between the caller and a match
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	targetID := r.URL.Query().Get("targetId")
	if targetID == "" {
		http.Error(w, `{"error": "targetId is required"}`, http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := c.Service.GetMessages(r.Context(), middleware.CallerID(r), targetID, int32(limit))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}
