package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/foodbridge/foodbridge/internal/models"
)

const defaultMaxSuggestions = 6

// PopularSuggestions handles GET /suggestions/popular?maxSuggestions={n}.
func (h *Handler) PopularSuggestions(w http.ResponseWriter, r *http.Request) {
	max := defaultMaxSuggestions
	if raw := r.URL.Query().Get("maxSuggestions"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "invalid maxSuggestions")
			return
		}
		max = parsed
	}
	suggestions, err := h.ds.PopularSuggestions(r.Context(), max)
	if err != nil {
		h.fail(w, "popular_suggestions", err)
		return
	}
	respondJSON(w, http.StatusOK, suggestions)
}

// PersonalizedSuggestions handles POST /suggestions.
func (h *Handler) PersonalizedSuggestions(w http.ResponseWriter, r *http.Request) {
	var req models.PersonalizedSuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MaxSuggestions < 1 {
		req.MaxSuggestions = defaultMaxSuggestions
	}
	suggestions, err := h.ds.PersonalizedSuggestions(r.Context(), req.LikedFoodNumbers, req.MaxSuggestions)
	if err != nil {
		h.fail(w, "personalized_suggestions", err)
		return
	}
	respondJSON(w, http.StatusOK, suggestions)
}
