package datasource

import (
	"context"

	"github.com/foodbridge/foodbridge/internal/models"
)

// DataSource is the full data-access capability of the client. Two
// interchangeable implementations exist: Simulated (in-memory fixture with
// artificial latency) and Remote (HTTP contract client). The variant is
// chosen once at process start and never switched mid-session.
type DataSource interface {
	// Count returns the total number of records in the catalog.
	Count(ctx context.Context) (int, error)

	// ListCategories returns every food category name.
	ListCategories(ctx context.Context) ([]string, error)

	// ListByLanguage returns all records in one localized catalog.
	ListByLanguage(ctx context.Context, lang models.Language) ([]models.FoodRecord, error)

	// Search returns records whose name, alt name, or category contains
	// the term, case-insensitively.
	Search(ctx context.Context, term string) ([]models.FoodRecord, error)

	// GetByNumber returns the record for one food number. A missing
	// record is a NotFoundError.
	GetByNumber(ctx context.Context, foodNumber int) (*models.FoodRecord, error)

	// ListByCategory returns records whose category matches exactly.
	ListByCategory(ctx context.Context, category string) ([]models.FoodRecord, error)

	// ListAnimalFoods returns records classified as animal-based.
	ListAnimalFoods(ctx context.Context) ([]models.FoodRecord, error)

	// ListPlantFoods returns records classified as plant-based.
	ListPlantFoods(ctx context.Context) ([]models.FoodRecord, error)

	// PopularSuggestions returns up to max generally popular suggestions.
	PopularSuggestions(ctx context.Context, max int) ([]models.Suggestion, error)

	// PersonalizedSuggestions returns up to max suggestions derived from
	// the given liked food numbers.
	PersonalizedSuggestions(ctx context.Context, likedFoodNumbers []int, max int) ([]models.Suggestion, error)

	// LogExperience records one caregiver reaction and returns the stored
	// experience.
	LogExperience(ctx context.Context, req models.LogExperienceRequest) (*models.Experience, error)

	// GetUserStats returns the aggregated stats for a user.
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)

	// GetUserExperiences returns every experience a user has logged.
	GetUserExperiences(ctx context.Context, userID string) ([]models.Experience, error)

	// GetLikedFoodNumbers returns the food numbers a user rated 4 or
	// higher.
	GetLikedFoodNumbers(ctx context.Context, userID string) ([]int, error)
}

// Variant names accepted by the registry.
const (
	VariantSimulated = "simulated"
	VariantRemote    = "remote"
)

// Factory constructs a DataSource variant from configuration values.
type Factory func(config map[string]string) (DataSource, error)

// Registry stores available DataSource variants by name.
type Registry struct {
	variants map[string]Factory
}

// NewRegistry creates an empty variant registry.
func NewRegistry() *Registry {
	return &Registry{variants: make(map[string]Factory)}
}

// Register registers a variant factory under a name.
func (r *Registry) Register(name string, factory Factory) {
	r.variants[name] = factory
}

// Get constructs the named variant, or fails if none is registered.
func (r *Registry) Get(name string, config map[string]string) (DataSource, error) {
	factory, ok := r.variants[name]
	if !ok {
		return nil, &ErrVariantNotFound{Name: name}
	}
	return factory(config)
}

// ErrVariantNotFound is returned when no variant is registered under the
// requested name.
type ErrVariantNotFound struct {
	Name string
}

func (e *ErrVariantNotFound) Error() string {
	return "data source variant not found: " + e.Name
}

// DefaultRegistry returns a registry with both built-in variants wired.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(VariantSimulated, func(config map[string]string) (DataSource, error) {
		return NewSimulated(), nil
	})
	r.Register(VariantRemote, func(config map[string]string) (DataSource, error) {
		return NewRemote(config["base_url"]), nil
	})
	return r
}
