package suggest

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/foodbridge/foodbridge/internal/datasource"
	"github.com/foodbridge/foodbridge/internal/models"
)

type recordingSource struct {
	personalizedLiked []int
	personalizedMax   int
	personalizedCalls int
	popularMax        int
	popularCalls      int
	suggestions       []models.Suggestion

	logged      []models.LogExperienceRequest
	logErr      error
	statsUserID string
}

func (r *recordingSource) PersonalizedSuggestions(ctx context.Context, liked []int, max int) ([]models.Suggestion, error) {
	r.personalizedCalls++
	r.personalizedLiked = liked
	r.personalizedMax = max
	return r.suggestions, nil
}

func (r *recordingSource) PopularSuggestions(ctx context.Context, max int) ([]models.Suggestion, error) {
	r.popularCalls++
	r.popularMax = max
	return r.suggestions, nil
}

func (r *recordingSource) LogExperience(ctx context.Context, req models.LogExperienceRequest) (*models.Experience, error) {
	if r.logErr != nil {
		return nil, r.logErr
	}
	r.logged = append(r.logged, req)
	return &models.Experience{
		ID:         "exp-test",
		UserID:     req.UserID,
		FoodNumber: req.FoodNumber,
		FoodName:   req.FoodName,
		Rating:     req.Rating,
		Notes:      req.Notes,
		Context:    req.Context,
	}, nil
}

func (r *recordingSource) Count(ctx context.Context) (int, error)               { return 0, nil }
func (r *recordingSource) ListCategories(ctx context.Context) ([]string, error) { return nil, nil }
func (r *recordingSource) GetByNumber(ctx context.Context, n int) (*models.FoodRecord, error) {
	return nil, nil
}
func (r *recordingSource) ListByLanguage(ctx context.Context, lang models.Language) ([]models.FoodRecord, error) {
	return nil, nil
}
func (r *recordingSource) ListByCategory(ctx context.Context, c string) ([]models.FoodRecord, error) {
	return nil, nil
}
func (r *recordingSource) Search(ctx context.Context, term string) ([]models.FoodRecord, error) {
	return nil, nil
}
func (r *recordingSource) ListAnimalFoods(ctx context.Context) ([]models.FoodRecord, error) {
	return nil, nil
}
func (r *recordingSource) ListPlantFoods(ctx context.Context) ([]models.FoodRecord, error) {
	return nil, nil
}
func (r *recordingSource) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	r.statsUserID = userID
	return &models.UserStats{TotalFoodsTried: 12}, nil
}
func (r *recordingSource) GetUserExperiences(ctx context.Context, userID string) ([]models.Experience, error) {
	return nil, nil
}
func (r *recordingSource) GetLikedFoodNumbers(ctx context.Context, userID string) ([]int, error) {
	return nil, nil
}

type recordingNotifier struct {
	titles   []string
	messages []string
	errors   []bool
}

func (n *recordingNotifier) Notify(title, message string, isError bool) {
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
	n.errors = append(n.errors, isError)
}

func testUserID() string { return "user_1700000000000_abc12345" }

func TestRequestSuggestionsPersonalized(t *testing.T) {
	t.Parallel()

	ds := &recordingSource{suggestions: []models.Suggestion{{FoodNumber: 590}}}
	w := NewWorkflow(ds, testUserID, &recordingNotifier{}, nil)

	inputs := []SelectionInput{
		ByNumber(588),
		ByRecord(&models.FoodRecord{FoodNumber: 1200, Name: "Chicken breast grilled"}),
	}
	got, err := w.RequestSuggestions(context.Background(), inputs, 0)
	if err != nil {
		t.Fatalf("RequestSuggestions failed: %v", err)
	}
	if len(got) != 1 || got[0].FoodNumber != 590 {
		t.Errorf("Unexpected suggestions: %+v", got)
	}
	if ds.popularCalls != 0 {
		t.Error("Popular path must not be taken for a non-empty selection")
	}
	if ds.personalizedCalls != 1 {
		t.Fatalf("Expected one personalized call, got %d", ds.personalizedCalls)
	}
	if !reflect.DeepEqual(ds.personalizedLiked, []int{588, 1200}) {
		t.Errorf("Expected liked numbers [588 1200], got %v", ds.personalizedLiked)
	}
	if ds.personalizedMax != PersonalizedCap {
		t.Errorf("Expected default cap %d, got %d", PersonalizedCap, ds.personalizedMax)
	}
}

func TestRequestSuggestionsPopularFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		inputs []SelectionInput
	}{
		{name: "no selection", inputs: nil},
		{name: "only empty entries", inputs: []SelectionInput{ByNumber(0), ByRecord(&models.FoodRecord{})}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ds := &recordingSource{}
			w := NewWorkflow(ds, testUserID, &recordingNotifier{}, nil)

			if _, err := w.RequestSuggestions(context.Background(), tt.inputs, 0); err != nil {
				t.Fatalf("RequestSuggestions failed: %v", err)
			}
			if ds.personalizedCalls != 0 {
				t.Error("Personalized path must not be taken for an empty selection")
			}
			if ds.popularCalls != 1 || ds.popularMax != PopularCap {
				t.Errorf("Expected one popular call with cap %d, got %d calls with max %d",
					PopularCap, ds.popularCalls, ds.popularMax)
			}
		})
	}
}

func TestRequestSuggestionsExplicitMax(t *testing.T) {
	t.Parallel()

	ds := &recordingSource{}
	w := NewWorkflow(ds, testUserID, &recordingNotifier{}, nil)

	if _, err := w.RequestSuggestions(context.Background(), []SelectionInput{ByNumber(588)}, 2); err != nil {
		t.Fatalf("RequestSuggestions failed: %v", err)
	}
	if ds.personalizedMax != 2 {
		t.Errorf("Expected explicit max 2, got %d", ds.personalizedMax)
	}
}

func TestReactOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		outcome    Outcome
		wantRating int
		wantNote   string
	}{
		{name: "loved", outcome: OutcomeLoved, wantRating: 5, wantNote: "Child liked this suggestion!"},
		{name: "neutral", outcome: OutcomeNeutral, wantRating: 3, wantNote: "Child wasn't interested in this suggestion"},
		{name: "rejected", outcome: OutcomeRejected, wantRating: 1, wantNote: "Child wasn't interested in this suggestion"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ds := &recordingSource{}
			notifier := &recordingNotifier{}
			w := NewWorkflow(ds, testUserID, notifier, nil)
			sg := &models.Suggestion{FoodNumber: 590, FoodName: "Banana"}

			draft := w.React(context.Background(), sg, tt.outcome)

			if len(ds.logged) != 1 {
				t.Fatalf("Expected one logged experience, got %d", len(ds.logged))
			}
			req := ds.logged[0]
			if req.Rating != tt.wantRating {
				t.Errorf("Expected rating %d, got %d", tt.wantRating, req.Rating)
			}
			if req.Notes != tt.wantNote {
				t.Errorf("Expected note %q, got %q", tt.wantNote, req.Notes)
			}
			if req.Context != models.ContextSuggestion {
				t.Errorf("Expected suggestion context, got %q", req.Context)
			}
			if req.UserID != testUserID() {
				t.Errorf("Expected session user id, got %q", req.UserID)
			}

			want := DetailDraft{FoodNumber: 590, FoodName: "Banana", Rating: tt.wantRating}
			if draft != want {
				t.Errorf("Expected draft %+v, got %+v", want, draft)
			}
			if len(notifier.errors) != 1 || notifier.errors[0] {
				t.Errorf("Expected one non-error notification, got %+v", notifier.errors)
			}
		})
	}
}

func TestReactLogFailureStillReturnsDraft(t *testing.T) {
	t.Parallel()

	ds := &recordingSource{logErr: &datasource.NetworkError{Op: "log experience", Err: errors.New("connection refused")}}
	notifier := &recordingNotifier{}
	w := NewWorkflow(ds, testUserID, notifier, nil)

	draft := w.React(context.Background(), &models.Suggestion{FoodNumber: 590, FoodName: "Banana"}, OutcomeLoved)

	if draft.FoodNumber != 590 || draft.Rating != 5 {
		t.Errorf("Expected draft despite log failure, got %+v", draft)
	}
	if len(notifier.errors) != 1 || !notifier.errors[0] {
		t.Errorf("Expected one error notification, got %+v", notifier.errors)
	}
}

func TestSubmitDetailedLog(t *testing.T) {
	t.Parallel()

	ds := &recordingSource{}
	notifier := &recordingNotifier{}
	w := NewWorkflow(ds, testUserID, notifier, nil)

	exp, err := w.SubmitDetailedLog(context.Background(), 590, "Banana", 4, "Ate half of it")
	if err != nil {
		t.Fatalf("SubmitDetailedLog failed: %v", err)
	}
	if exp.Context != models.ContextManualLog {
		t.Errorf("Expected manual_log context, got %q", exp.Context)
	}
	if len(ds.logged) != 1 || ds.logged[0].Notes != "Ate half of it" {
		t.Errorf("Unexpected logged request: %+v", ds.logged)
	}
	if len(notifier.errors) != 1 || notifier.errors[0] {
		t.Errorf("Expected one success notification, got %+v", notifier.errors)
	}
}

func TestSubmitDetailedLogValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		foodNumber int
		foodName   string
		rating     int
	}{
		{name: "missing food number", foodNumber: 0, foodName: "Banana", rating: 4},
		{name: "missing food name", foodNumber: 590, foodName: "", rating: 4},
		{name: "rating too low", foodNumber: 590, foodName: "Banana", rating: 0},
		{name: "rating too high", foodNumber: 590, foodName: "Banana", rating: 6},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ds := &recordingSource{}
			notifier := &recordingNotifier{}
			w := NewWorkflow(ds, testUserID, notifier, nil)

			_, err := w.SubmitDetailedLog(context.Background(), tt.foodNumber, tt.foodName, tt.rating, "")
			if !datasource.IsValidation(err) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			// Validation fails before anything is sent.
			if len(ds.logged) != 0 {
				t.Errorf("Expected no logged experience, got %+v", ds.logged)
			}
			if len(notifier.errors) != 1 || !notifier.errors[0] {
				t.Errorf("Expected one error notification, got %+v", notifier.errors)
			}
		})
	}
}

func TestStatsUsesSessionUser(t *testing.T) {
	t.Parallel()

	ds := &recordingSource{}
	w := NewWorkflow(ds, testUserID, &recordingNotifier{}, nil)

	if _, err := w.Stats(context.Background()); err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if ds.statsUserID != testUserID() {
		t.Errorf("Expected session user id, got %q", ds.statsUserID)
	}
}
