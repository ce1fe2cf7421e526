package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

// LogExperience handles POST /experiences.
func (h *Handler) LogExperience(w http.ResponseWriter, r *http.Request) {
	var req models.LogExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	exp, err := h.ds.LogExperience(r.Context(), req)
	if err != nil {
		h.fail(w, "log_experience", err)
		return
	}
	respondJSON(w, http.StatusCreated, exp)
}

// UserStats handles GET /experiences/user/{userId}/stats.
func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ds.GetUserStats(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.fail(w, "user_stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// UserExperiences handles GET /experiences/user/{userId}.
func (h *Handler) UserExperiences(w http.ResponseWriter, r *http.Request) {
	exps, err := h.ds.GetUserExperiences(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.fail(w, "user_experiences", err)
		return
	}
	if exps == nil {
		exps = []models.Experience{}
	}
	respondJSON(w, http.StatusOK, exps)
}

// LikedFoods handles GET /experiences/user/{userId}/liked-foods.
func (h *Handler) LikedFoods(w http.ResponseWriter, r *http.Request) {
	numbers, err := h.ds.GetLikedFoodNumbers(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		h.fail(w, "liked_foods", err)
		return
	}
	if numbers == nil {
		numbers = []int{}
	}
	respondJSON(w, http.StatusOK, numbers)
}
