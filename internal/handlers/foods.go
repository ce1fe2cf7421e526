// Package handlers implements the FoodBridge HTTP contract for the local
// stub server, backed by a DataSource (normally the simulated corpus).
package handlers

import (
	"net/http"
	"strconv"

	"github.com/foodbridge/foodbridge/internal/datasource"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler serves the food, suggestion, and experience endpoints.
type Handler struct {
	ds     datasource.DataSource
	logger *zap.Logger
}

// New creates a handler over the data source.
func New(ds datasource.DataSource, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{ds: ds, logger: logger}
}

// Register mounts every route on the router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/foods/count", h.Count).Methods(http.MethodGet)
	r.HandleFunc("/foods/categories", h.Categories).Methods(http.MethodGet)
	r.HandleFunc("/foods/language/{lang}", h.ByLanguage).Methods(http.MethodGet)
	r.HandleFunc("/foods/search", h.Search).Methods(http.MethodGet)
	r.HandleFunc("/foods/category/{category}", h.ByCategory).Methods(http.MethodGet)
	r.HandleFunc("/foods/animal", h.AnimalFoods).Methods(http.MethodGet)
	r.HandleFunc("/foods/plant", h.PlantFoods).Methods(http.MethodGet)
	r.HandleFunc("/foods/{foodNumber:[0-9]+}", h.ByNumber).Methods(http.MethodGet)
	r.HandleFunc("/suggestions/popular", h.PopularSuggestions).Methods(http.MethodGet)
	r.HandleFunc("/suggestions", h.PersonalizedSuggestions).Methods(http.MethodPost)
	r.HandleFunc("/experiences", h.LogExperience).Methods(http.MethodPost)
	r.HandleFunc("/experiences/user/{userId}/stats", h.UserStats).Methods(http.MethodGet)
	r.HandleFunc("/experiences/user/{userId}/liked-foods", h.LikedFoods).Methods(http.MethodGet)
	r.HandleFunc("/experiences/user/{userId}", h.UserExperiences).Methods(http.MethodGet)
}

// Count handles GET /foods/count.
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.ds.Count(r.Context())
	if err != nil {
		h.fail(w, "count", err)
		return
	}
	respondJSON(w, http.StatusOK, count)
}

// Categories handles GET /foods/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.ds.ListCategories(r.Context())
	if err != nil {
		h.fail(w, "categories", err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// ByLanguage handles GET /foods/language/{lang}.
func (h *Handler) ByLanguage(w http.ResponseWriter, r *http.Request) {
	lang := models.Language(mux.Vars(r)["lang"])
	if lang != models.LanguageEnglish && lang != models.LanguageSwedish {
		respondError(w, http.StatusBadRequest, "unsupported language: "+string(lang))
		return
	}
	foods, err := h.ds.ListByLanguage(r.Context(), lang)
	if err != nil {
		h.fail(w, "by_language", err)
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(foods))
}

// Search handles GET /foods/search?name={term}.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("name")
	foods, err := h.ds.Search(r.Context(), term)
	if err != nil {
		h.fail(w, "search", err)
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(foods))
}

// ByNumber handles GET /foods/{n}.
func (h *Handler) ByNumber(w http.ResponseWriter, r *http.Request) {
	foodNumber, err := strconv.Atoi(mux.Vars(r)["foodNumber"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid food number")
		return
	}
	food, err := h.ds.GetByNumber(r.Context(), foodNumber)
	if err != nil {
		if datasource.IsNotFound(err) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.fail(w, "by_number", err)
		return
	}
	respondJSON(w, http.StatusOK, food)
}

// ByCategory handles GET /foods/category/{cat}.
func (h *Handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	foods, err := h.ds.ListByCategory(r.Context(), mux.Vars(r)["category"])
	if err != nil {
		h.fail(w, "by_category", err)
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(foods))
}

// AnimalFoods handles GET /foods/animal.
func (h *Handler) AnimalFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.ds.ListAnimalFoods(r.Context())
	if err != nil {
		h.fail(w, "animal_foods", err)
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(foods))
}

// PlantFoods handles GET /foods/plant.
func (h *Handler) PlantFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.ds.ListPlantFoods(r.Context())
	if err != nil {
		h.fail(w, "plant_foods", err)
		return
	}
	respondJSON(w, http.StatusOK, emptyIfNil(foods))
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Error("handler_error", zap.String("op", op), zap.Error(err))
	respondError(w, http.StatusInternalServerError, err.Error())
}

func emptyIfNil(foods []models.FoodRecord) []models.FoodRecord {
	if foods == nil {
		return []models.FoodRecord{}
	}
	return foods
}
