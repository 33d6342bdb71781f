// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler implements the public JSON API.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/olegiv/fitblog-go/internal/model"
	"github.com/olegiv/fitblog-go/internal/subscription"
)

// SubscribeHandler handles newsletter subscription requests.
type SubscribeHandler struct {
	svc *subscription.Service
}

// NewSubscribeHandler creates a new SubscribeHandler.
func NewSubscribeHandler(svc *subscription.Service) *SubscribeHandler {
	return &SubscribeHandler{svc: svc}
}

// subscribeResponse is the wire shape of a subscription result.
type subscribeResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Subscribe handles POST /api/subscribe. Status mapping: validation failure
// and malformed JSON are 400, persistence failure is 500, success is 200.
// Notification failures never change the response.
func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body model.Submission
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, subscribeResponse{
			Message: "Invalid request format",
			Error:   "Request body must be valid JSON",
		})
		return
	}

	result := h.svc.Process(r.Context(), body)

	switch {
	case !result.Success && len(result.Errors) > 0:
		writeJSON(w, http.StatusBadRequest, subscribeResponse{
			Message: result.Message,
			Errors:  result.Errors,
		})
	case !result.Success:
		resp := subscribeResponse{Message: result.Message}
		if result.Err != nil {
			resp.Error = result.Err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
	default:
		writeJSON(w, http.StatusOK, subscribeResponse{
			Success: true,
			Message: result.Message,
		})
	}
}

// Status handles GET /api/subscribe - health check for the subscription
// service.
func (h *SubscribeHandler) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"service":   "email-subscription",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
