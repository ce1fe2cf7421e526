package datasource

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/google/uuid"
)

// Per-operation artificial latency, in units of the latency unit (default
// 1ms). Values mirror typical round-trip times so UI behavior in simulated
// mode stays representative of network timing.
const (
	delayCount         = 500
	delayCategories    = 300
	delayByLanguage    = 800
	delaySearch        = 400
	delayByNumber      = 200
	delayByCategory    = 600
	delayAnimalPlant   = 500
	delayPopular       = 600
	delayPersonalized  = 800
	delayLogExperience = 400
	delayStats         = 400
	delayExperiences   = 500
	delayLikedFoods    = 300
)

// Category keyword heuristics for the coarse animal/plant classification.
// Fixed token sets; anything matching neither is unclassified.
var (
	animalKeywords = []string{"meat", "fish", "poultry", "dairy", "milk", "cheese"}
	plantKeywords  = []string{"fruit", "vegetable", "cereal", "pasta", "rice", "bread"}
)

// Simulated is the in-memory DataSource variant. It operates over a fixed,
// hand-authored corpus, answers deterministically, and delays every call to
// model a network round trip. Experiences logged during a run are folded
// into the corpus state so stats and liked foods reflect them.
//
// The corpus models a single-profile installation: experience reads are not
// partitioned by user id.
type Simulated struct {
	mu          sync.Mutex
	foods       []models.FoodRecord
	categories  []string
	suggestions []models.Suggestion
	experiences []models.Experience
	stats       models.UserStats
	seeded      int // number of pre-seeded experiences
	latencyUnit time.Duration
	now         func() time.Time
}

// NewSimulated creates a Simulated data source over the built-in corpus.
func NewSimulated() *Simulated {
	return newSimulated(time.Millisecond)
}

// newSimulated lets tests collapse the artificial latency to zero.
func newSimulated(unit time.Duration) *Simulated {
	now := time.Now
	return &Simulated{
		foods:       corpusFoods(),
		categories:  corpusCategories(),
		suggestions: corpusSuggestions(now().UTC()),
		experiences: corpusExperiences(),
		stats:       corpusStats(),
		seeded:      len(corpusExperiences()),
		latencyUnit: unit,
		now:         now,
	}
}

func (s *Simulated) pause(ctx context.Context, units int) error {
	d := time.Duration(units) * s.latencyUnit
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Count returns the corpus size.
func (s *Simulated) Count(ctx context.Context) (int, error) {
	if err := s.pause(ctx, delayCount); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.foods), nil
}

// ListCategories returns the fixed category list.
func (s *Simulated) ListCategories(ctx context.Context) ([]string, error) {
	if err := s.pause(ctx, delayCategories); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

// ListByLanguage returns the records in one localized catalog.
func (s *Simulated) ListByLanguage(ctx context.Context, lang models.Language) ([]models.FoodRecord, error) {
	if err := s.pause(ctx, delayByLanguage); err != nil {
		return nil, err
	}
	return s.filterFoods(func(f *models.FoodRecord) bool {
		return f.Language == lang
	}), nil
}

// Search matches the term case-insensitively against name, alt name, and
// category.
func (s *Simulated) Search(ctx context.Context, term string) ([]models.FoodRecord, error) {
	if err := s.pause(ctx, delaySearch); err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	return s.filterFoods(func(f *models.FoodRecord) bool {
		return strings.Contains(strings.ToLower(f.Name), needle) ||
			strings.Contains(strings.ToLower(f.AltName), needle) ||
			strings.Contains(strings.ToLower(f.FoodCategory), needle)
	}), nil
}

// GetByNumber returns the first record with the given food number, or a
// NotFoundError.
func (s *Simulated) GetByNumber(ctx context.Context, foodNumber int) (*models.FoodRecord, error) {
	if err := s.pause(ctx, delayByNumber); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.foods {
		if s.foods[i].FoodNumber == foodNumber {
			rec := s.foods[i]
			return &rec, nil
		}
	}
	return nil, &NotFoundError{FoodNumber: foodNumber}
}

// ListByCategory returns records whose category matches exactly.
func (s *Simulated) ListByCategory(ctx context.Context, category string) ([]models.FoodRecord, error) {
	if err := s.pause(ctx, delayByCategory); err != nil {
		return nil, err
	}
	return s.filterFoods(func(f *models.FoodRecord) bool {
		return f.FoodCategory == category
	}), nil
}

// ListAnimalFoods returns records whose category contains an animal keyword.
func (s *Simulated) ListAnimalFoods(ctx context.Context) ([]models.FoodRecord, error) {
	if err := s.pause(ctx, delayAnimalPlant); err != nil {
		return nil, err
	}
	return s.filterFoods(categoryMatchesAny(animalKeywords)), nil
}

// ListPlantFoods returns records whose category contains a plant keyword.
func (s *Simulated) ListPlantFoods(ctx context.Context) ([]models.FoodRecord, error) {
	if err := s.pause(ctx, delayAnimalPlant); err != nil {
		return nil, err
	}
	return s.filterFoods(categoryMatchesAny(plantKeywords)), nil
}

func categoryMatchesAny(keywords []string) func(*models.FoodRecord) bool {
	return func(f *models.FoodRecord) bool {
		cat := strings.ToLower(f.FoodCategory)
		for _, kw := range keywords {
			if strings.Contains(cat, kw) {
				return true
			}
		}
		return false
	}
}

func (s *Simulated) filterFoods(keep func(*models.FoodRecord) bool) []models.FoodRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FoodRecord
	for i := range s.foods {
		if keep(&s.foods[i]) {
			out = append(out, s.foods[i])
		}
	}
	return out
}

// PopularSuggestions returns the first max canned suggestions.
func (s *Simulated) PopularSuggestions(ctx context.Context, max int) ([]models.Suggestion, error) {
	if err := s.pause(ctx, delayPopular); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return capSuggestions(s.suggestions, max), nil
}

// PersonalizedSuggestions prefers suggestions derived from any of the liked
// foods; when none are relevant it falls back to the full canned list.
func (s *Simulated) PersonalizedSuggestions(ctx context.Context, likedFoodNumbers []int, max int) ([]models.Suggestion, error) {
	if err := s.pause(ctx, delayPersonalized); err != nil {
		return nil, err
	}
	liked := make(map[int]bool, len(likedFoodNumbers))
	for _, n := range likedFoodNumbers {
		liked[n] = true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var relevant []models.Suggestion
	for _, sg := range s.suggestions {
		for _, basedOn := range sg.BasedOnFoods {
			if liked[basedOn] {
				relevant = append(relevant, sg)
				break
			}
		}
	}
	if len(relevant) == 0 {
		relevant = s.suggestions
	}
	return capSuggestions(relevant, max), nil
}

func capSuggestions(in []models.Suggestion, max int) []models.Suggestion {
	if max < 0 {
		max = 0
	}
	if max > len(in) {
		max = len(in)
	}
	out := make([]models.Suggestion, max)
	copy(out, in[:max])
	return out
}

// LogExperience appends the reaction to the in-memory experience log and
// returns the stored record.
func (s *Simulated) LogExperience(ctx context.Context, req models.LogExperienceRequest) (*models.Experience, error) {
	if err := s.pause(ctx, delayLogExperience); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	exp := models.Experience{
		ID:         "sim-" + uuid.NewString(),
		UserID:     req.UserID,
		FoodNumber: req.FoodNumber,
		FoodName:   req.FoodName,
		Rating:     req.Rating,
		Notes:      req.Notes,
		Context:    req.Context,
		ChildAge:   "3-5",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.experiences = append(s.experiences, exp)
	return &exp, nil
}

// GetUserStats returns the canned stats blob until the run logs its own
// experiences, then recomputes from the full experience log.
func (s *Simulated) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	if err := s.pause(ctx, delayStats); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.experiences) == s.seeded {
		stats := s.stats
		return &stats, nil
	}
	return s.computeStats(), nil
}

func (s *Simulated) computeStats() *models.UserStats {
	tried := make(map[int]bool)
	positive := make(map[int]bool)
	days := make(map[string]bool)
	for _, exp := range s.experiences {
		tried[exp.FoodNumber] = true
		if exp.Rating >= models.RatingLikedThreshold {
			positive[exp.FoodNumber] = true
		}
		days[exp.CreatedAt.Format("2006-01-02")] = true
	}
	stats := &models.UserStats{
		TotalFoodsTried:    len(tried),
		PositiveFoods:      len(positive),
		RecentAchievements: s.stats.RecentAchievements,
	}
	if stats.TotalFoodsTried > 0 {
		stats.PositivePercentage = stats.PositiveFoods * 100 / stats.TotalFoodsTried
	}
	// Streak: consecutive days with at least one log, counting back from
	// the most recent logged day.
	var day time.Time
	for _, exp := range s.experiences {
		if exp.CreatedAt.After(day) {
			day = exp.CreatedAt
		}
	}
	for days[day.Format("2006-01-02")] {
		stats.Streak++
		day = day.AddDate(0, 0, -1)
	}
	return stats
}

// GetUserExperiences returns the full experience log.
func (s *Simulated) GetUserExperiences(ctx context.Context, userID string) ([]models.Experience, error) {
	if err := s.pause(ctx, delayExperiences); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Experience, len(s.experiences))
	copy(out, s.experiences)
	return out, nil
}

// GetLikedFoodNumbers returns the food numbers with at least one positive
// rating.
func (s *Simulated) GetLikedFoodNumbers(ctx context.Context, userID string) ([]int, error) {
	if err := s.pause(ctx, delayLikedFoods); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	liked := make([]int, 0, len(s.experiences))
	for _, exp := range s.experiences {
		if exp.Rating >= models.RatingLikedThreshold {
			liked = append(liked, exp.FoodNumber)
		}
	}
	return liked, nil
}
