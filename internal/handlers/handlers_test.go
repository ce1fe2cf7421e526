package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foodbridge/foodbridge/internal/datasource"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/gorilla/mux"
)

// stubSource serves a three-record corpus without the simulated variant's
// artificial latency.
type stubSource struct {
	err             error
	personalizedMax int
}

var stubFoods = []models.FoodRecord{
	{ID: "1", FoodNumber: 588, Name: "Apple w/ skin", Language: models.LanguageEnglish, FoodCategory: "Fruit fresh"},
	{ID: "2", FoodNumber: 590, Name: "Banana", Language: models.LanguageEnglish, FoodCategory: "Fruit fresh"},
	{ID: "3", FoodNumber: 1200, Name: "Chicken breast grilled", Language: models.LanguageEnglish, FoodCategory: "Meat poultry"},
}

func (s *stubSource) Count(ctx context.Context) (int, error) {
	return len(stubFoods), s.err
}

func (s *stubSource) ListCategories(ctx context.Context) ([]string, error) {
	return []string{"Fruit fresh", "Meat poultry"}, s.err
}

func (s *stubSource) GetByNumber(ctx context.Context, n int) (*models.FoodRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range stubFoods {
		if stubFoods[i].FoodNumber == n {
			return &stubFoods[i], nil
		}
	}
	return nil, &datasource.NotFoundError{FoodNumber: n}
}

func (s *stubSource) ListByLanguage(ctx context.Context, lang models.Language) ([]models.FoodRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.FoodRecord
	for _, f := range stubFoods {
		if f.Language == lang {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *stubSource) ListByCategory(ctx context.Context, category string) ([]models.FoodRecord, error) {
	var out []models.FoodRecord
	for _, f := range stubFoods {
		if f.FoodCategory == category {
			out = append(out, f)
		}
	}
	return out, s.err
}

func (s *stubSource) Search(ctx context.Context, term string) ([]models.FoodRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.FoodRecord
	for _, f := range stubFoods {
		if strings.Contains(strings.ToLower(f.Name), strings.ToLower(term)) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *stubSource) ListAnimalFoods(ctx context.Context) ([]models.FoodRecord, error) {
	return stubFoods[2:], s.err
}

func (s *stubSource) ListPlantFoods(ctx context.Context) ([]models.FoodRecord, error) {
	return stubFoods[:2], s.err
}

func (s *stubSource) PopularSuggestions(ctx context.Context, max int) ([]models.Suggestion, error) {
	return []models.Suggestion{{FoodNumber: 590, FoodName: "Banana"}}, s.err
}

func (s *stubSource) PersonalizedSuggestions(ctx context.Context, liked []int, max int) ([]models.Suggestion, error) {
	s.personalizedMax = max
	return []models.Suggestion{{FoodNumber: 588, FoodName: "Apple w/ skin"}}, s.err
}

func (s *stubSource) LogExperience(ctx context.Context, req models.LogExperienceRequest) (*models.Experience, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Experience{
		ID:         "exp-1",
		UserID:     req.UserID,
		FoodNumber: req.FoodNumber,
		FoodName:   req.FoodName,
		Rating:     req.Rating,
	}, nil
}

func (s *stubSource) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	return &models.UserStats{TotalFoodsTried: 12, PositiveFoods: 8}, s.err
}

func (s *stubSource) GetUserExperiences(ctx context.Context, userID string) ([]models.Experience, error) {
	return nil, s.err
}

func (s *stubSource) GetLikedFoodNumbers(ctx context.Context, userID string) ([]int, error) {
	return []int{588}, s.err
}

func newTestRouter(ds datasource.DataSource) *mux.Router {
	r := mux.NewRouter()
	New(ds, nil).Register(r)
	return r
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestFoodRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubSource{})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "count", path: "/foods/count", wantStatus: http.StatusOK, wantBody: "3"},
		{name: "categories", path: "/foods/categories", wantStatus: http.StatusOK, wantBody: "Meat poultry"},
		{name: "by language", path: "/foods/language/en", wantStatus: http.StatusOK, wantBody: "Banana"},
		{name: "unsupported language", path: "/foods/language/de", wantStatus: http.StatusBadRequest, wantBody: "unsupported language"},
		{name: "by number", path: "/foods/588", wantStatus: http.StatusOK, wantBody: "Apple w/ skin"},
		{name: "unknown number", path: "/foods/99999", wantStatus: http.StatusNotFound, wantBody: "99999"},
		{name: "non-numeric number rejected by route", path: "/foods/banana", wantStatus: http.StatusNotFound, wantBody: ""},
		{name: "search", path: "/foods/search?name=apple", wantStatus: http.StatusOK, wantBody: "588"},
		{name: "search no hits is empty array", path: "/foods/search?name=zzz", wantStatus: http.StatusOK, wantBody: "[]"},
		{name: "by category", path: "/foods/category/Fruit%20fresh", wantStatus: http.StatusOK, wantBody: "Banana"},
		{name: "animal", path: "/foods/animal", wantStatus: http.StatusOK, wantBody: "Chicken breast grilled"},
		{name: "plant", path: "/foods/plant", wantStatus: http.StatusOK, wantBody: "Apple w/ skin"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doRequest(t, router, http.MethodGet, tt.path, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("GET %s = %d, want %d (body %s)", tt.path, rec.Code, tt.wantStatus, rec.Body)
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("GET %s body %s, want it to contain %q", tt.path, rec.Body, tt.wantBody)
			}
		})
	}
}

func TestErrorBodyShape(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubSource{err: errors.New("corpus unavailable")})
	rec := doRequest(t, router, http.MethodGet, "/foods/count", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}

	var body struct {
		Timestamp string `json:"timestamp"`
		Status    int    `json:"status"`
		Error     string `json:"error"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Error body is not JSON: %v", err)
	}
	if body.Status != 500 || body.Error != "Internal Server Error" {
		t.Errorf("Unexpected error body: %+v", body)
	}
	if body.Message != "corpus unavailable" || body.Timestamp == "" {
		t.Errorf("Unexpected error body: %+v", body)
	}
}

func TestPopularSuggestions(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubSource{})

	rec := doRequest(t, router, http.MethodGet, "/suggestions/popular", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/suggestions/popular?maxSuggestions=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unparseable maxSuggestions, got %d", rec.Code)
	}
	rec = doRequest(t, router, http.MethodGet, "/suggestions/popular?maxSuggestions=0", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for maxSuggestions below 1, got %d", rec.Code)
	}
}

func TestPersonalizedSuggestions(t *testing.T) {
	t.Parallel()

	ds := &stubSource{}
	router := newTestRouter(ds)

	body := []byte(`{"likedFoodNumbers":[588,590]}`)
	rec := doRequest(t, router, http.MethodPost, "/suggestions", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d (body %s)", rec.Code, rec.Body)
	}
	if ds.personalizedMax != defaultMaxSuggestions {
		t.Errorf("Expected default max %d when omitted, got %d", defaultMaxSuggestions, ds.personalizedMax)
	}

	rec = doRequest(t, router, http.MethodPost, "/suggestions", []byte(`{not json`))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestLogExperience(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubSource{})

	valid := []byte(`{"userId":"user_1_abc","foodNumber":590,"foodName":"Banana","rating":4}`)
	rec := doRequest(t, router, http.MethodPost, "/experiences", valid)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d (body %s)", rec.Code, rec.Body)
	}
	var exp models.Experience
	if err := json.Unmarshal(rec.Body.Bytes(), &exp); err != nil {
		t.Fatalf("Response is not an experience: %v", err)
	}
	if exp.FoodNumber != 590 || exp.Rating != 4 {
		t.Errorf("Unexpected experience: %+v", exp)
	}

	tests := []struct {
		name string
		body string
	}{
		{name: "rating out of range", body: `{"userId":"u","foodNumber":590,"foodName":"Banana","rating":6}`},
		{name: "missing food name", body: `{"userId":"u","foodNumber":590,"rating":4}`},
		{name: "missing user", body: `{"foodNumber":590,"foodName":"Banana","rating":4}`},
		{name: "malformed json", body: `{`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doRequest(t, router, http.MethodPost, "/experiences", []byte(tt.body))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d (body %s)", rec.Code, rec.Body)
			}
		})
	}
}

func TestUserRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubSource{})

	rec := doRequest(t, router, http.MethodGet, "/experiences/user/user_1_abc/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var stats models.UserStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Response is not stats: %v", err)
	}
	if stats.TotalFoodsTried != 12 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	// No experiences yet serializes as an empty array, not null.
	rec = doRequest(t, router, http.MethodGet, "/experiences/user/user_1_abc", nil)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty array, got %d %s", rec.Code, rec.Body)
	}

	rec = doRequest(t, router, http.MethodGet, "/experiences/user/user_1_abc/liked-foods", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "588") {
		t.Errorf("Unexpected liked foods response: %d %s", rec.Code, rec.Body)
	}
}
