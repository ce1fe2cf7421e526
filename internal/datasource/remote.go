package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/foodbridge/foodbridge/internal/models"
)

const (
	// DefaultBaseURL is the default address of the FoodBridge backend.
	DefaultBaseURL = "http://localhost:8083/api/api/v1"
	// defaultTimeout bounds every remote call.
	defaultTimeout = 30 * time.Second
)

// Remote is the HTTP DataSource variant. It issues one request per call
// against a fixed base address, raises APIStatusError for non-2xx responses
// and NetworkError for transport failures, and trusts the documented
// response shapes with no further validation.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote creates a Remote data source against the given base URL, or
// DefaultBaseURL when empty.
func NewRemote(baseURL string) *Remote {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Remote{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// get issues a GET and decodes the JSON body into out.
func (r *Remote) get(ctx context.Context, endpoint string, out any) error {
	return r.roundTrip(ctx, http.MethodGet, endpoint, nil, out)
}

// post issues a POST with a JSON body and decodes the JSON response into out.
func (r *Remote) post(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return r.roundTrip(ctx, http.MethodPost, endpoint, payload, out)
}

func (r *Remote) roundTrip(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return &NetworkError{Op: method + " " + endpoint, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIStatusError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Count returns the total food count.
func (r *Remote) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.get(ctx, "/foods/count", &count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListCategories returns all category names.
func (r *Remote) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.get(ctx, "/foods/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListByLanguage returns all records for one language.
func (r *Remote) ListByLanguage(ctx context.Context, lang models.Language) ([]models.FoodRecord, error) {
	var foods []models.FoodRecord
	if err := r.get(ctx, "/foods/language/"+url.PathEscape(string(lang)), &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// Search returns records matching the term.
func (r *Remote) Search(ctx context.Context, term string) ([]models.FoodRecord, error) {
	var foods []models.FoodRecord
	if err := r.get(ctx, "/foods/search?name="+url.QueryEscape(term), &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// GetByNumber returns one record. A 404 from the service is reported as a
// NotFoundError so both variants expose the same failure taxonomy.
func (r *Remote) GetByNumber(ctx context.Context, foodNumber int) (*models.FoodRecord, error) {
	var food models.FoodRecord
	err := r.get(ctx, "/foods/"+strconv.Itoa(foodNumber), &food)
	if err != nil {
		if status, ok := IsStatusError(err); ok && status == http.StatusNotFound {
			return nil, &NotFoundError{FoodNumber: foodNumber}
		}
		return nil, err
	}
	return &food, nil
}

// ListByCategory returns records in one category.
func (r *Remote) ListByCategory(ctx context.Context, category string) ([]models.FoodRecord, error) {
	var foods []models.FoodRecord
	if err := r.get(ctx, "/foods/category/"+url.PathEscape(category), &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// ListAnimalFoods returns animal-based records.
func (r *Remote) ListAnimalFoods(ctx context.Context) ([]models.FoodRecord, error) {
	var foods []models.FoodRecord
	if err := r.get(ctx, "/foods/animal", &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// ListPlantFoods returns plant-based records.
func (r *Remote) ListPlantFoods(ctx context.Context) ([]models.FoodRecord, error) {
	var foods []models.FoodRecord
	if err := r.get(ctx, "/foods/plant", &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// PopularSuggestions returns up to max popular suggestions.
func (r *Remote) PopularSuggestions(ctx context.Context, max int) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	endpoint := "/suggestions/popular?maxSuggestions=" + strconv.Itoa(max)
	if err := r.get(ctx, endpoint, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// PersonalizedSuggestions returns up to max suggestions derived from the
// liked foods.
func (r *Remote) PersonalizedSuggestions(ctx context.Context, likedFoodNumbers []int, max int) ([]models.Suggestion, error) {
	req := models.PersonalizedSuggestionsRequest{
		LikedFoodNumbers: likedFoodNumbers,
		MaxSuggestions:   max,
	}
	var suggestions []models.Suggestion
	if err := r.post(ctx, "/suggestions", req, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// LogExperience records one caregiver reaction.
func (r *Remote) LogExperience(ctx context.Context, req models.LogExperienceRequest) (*models.Experience, error) {
	var exp models.Experience
	if err := r.post(ctx, "/experiences", req, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// GetUserStats returns the aggregated stats for a user.
func (r *Remote) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	var stats models.UserStats
	endpoint := "/experiences/user/" + url.PathEscape(userID) + "/stats"
	if err := r.get(ctx, endpoint, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetUserExperiences returns every experience a user has logged.
func (r *Remote) GetUserExperiences(ctx context.Context, userID string) ([]models.Experience, error) {
	var exps []models.Experience
	if err := r.get(ctx, "/experiences/user/"+url.PathEscape(userID), &exps); err != nil {
		return nil, err
	}
	return exps, nil
}

// GetLikedFoodNumbers returns the food numbers a user rated positively.
func (r *Remote) GetLikedFoodNumbers(ctx context.Context, userID string) ([]int, error) {
	var numbers []int
	endpoint := "/experiences/user/" + url.PathEscape(userID) + "/liked-foods"
	if err := r.get(ctx, endpoint, &numbers); err != nil {
		return nil, err
	}
	return numbers, nil
}
