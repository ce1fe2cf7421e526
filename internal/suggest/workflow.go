// Package suggest drives the selection -> suggestion -> feedback loop:
// requesting suggestions for the caregiver's selection and turning reactions
// into logged experiences.
package suggest

import (
	"context"

	"github.com/foodbridge/foodbridge/internal/datasource"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Suggestion caps. The selector flow asks for fewer suggestions than the
// API defaults because its screen shows at most four cards.
const (
	PersonalizedCap        = 4
	PersonalizedCapDefault = 5
	PopularCap             = 4
	PopularCapDefault      = 6
)

// Outcome is a caregiver's quick reaction to a suggestion.
type Outcome string

const (
	OutcomeLoved    Outcome = "loved"
	OutcomeNeutral  Outcome = "neutral"
	OutcomeRejected Outcome = "rejected"
)

// Rating maps an outcome onto the 1..5 rating scale.
func (o Outcome) Rating() int {
	switch o {
	case OutcomeLoved:
		return 5
	case OutcomeNeutral:
		return 3
	default:
		return 1
	}
}

func (o Outcome) note() string {
	if o.Rating() >= models.RatingLikedThreshold {
		return "Child liked this suggestion!"
	}
	return "Child wasn't interested in this suggestion"
}

// SelectionInput is one selected food, supplied either as a bare food
// number (browsing grid) or as a full record (quick-start cards). The two
// callers produce different shapes; the workflow normalizes both.
type SelectionInput struct {
	foodNumber int
	record     *models.FoodRecord
}

// ByNumber wraps a bare food number.
func ByNumber(foodNumber int) SelectionInput {
	return SelectionInput{foodNumber: foodNumber}
}

// ByRecord wraps a food record.
func ByRecord(record *models.FoodRecord) SelectionInput {
	return SelectionInput{record: record}
}

// normalize reduces inputs to food numbers, dropping empty entries.
func normalize(inputs []SelectionInput) []int {
	numbers := make([]int, 0, len(inputs))
	for _, in := range inputs {
		switch {
		case in.record != nil && in.record.FoodNumber != 0:
			numbers = append(numbers, in.record.FoodNumber)
		case in.record == nil && in.foodNumber != 0:
			numbers = append(numbers, in.foodNumber)
		}
	}
	return numbers
}

// Notifier is the UI collaborator that surfaces one notification per
// workflow outcome.
type Notifier interface {
	Notify(title, message string, isError bool)
}

// DetailDraft pre-populates the free-text follow-up step after a reaction.
type DetailDraft struct {
	FoodNumber int
	FoodName   string
	Rating     int
}

// Workflow requests suggestions and logs the caregiver's reactions.
type Workflow struct {
	ds       datasource.DataSource
	userID   func() string
	notifier Notifier
	validate *validator.Validate
	logger   *zap.Logger
}

// NewWorkflow creates a workflow. userID supplies the session's stable
// anonymous id on demand.
func NewWorkflow(ds datasource.DataSource, userID func() string, notifier Notifier, logger *zap.Logger) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{
		ds:       ds,
		userID:   userID,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
	}
}

// RequestSuggestions returns personalized suggestions for a non-empty
// selection, or popular ones otherwise. max <= 0 selects the cap for the
// path taken.
func (w *Workflow) RequestSuggestions(ctx context.Context, inputs []SelectionInput, max int) ([]models.Suggestion, error) {
	numbers := normalize(inputs)
	if len(numbers) > 0 {
		if max <= 0 {
			max = PersonalizedCap
		}
		w.logger.Debug("requesting_personalized_suggestions",
			zap.Ints("liked_food_numbers", numbers),
			zap.Int("max", max),
		)
		return w.ds.PersonalizedSuggestions(ctx, numbers, max)
	}
	if max <= 0 {
		max = PopularCap
	}
	w.logger.Debug("requesting_popular_suggestions", zap.Int("max", max))
	return w.ds.PopularSuggestions(ctx, max)
}

// React logs the caregiver's quick reaction to a suggestion with a canned
// note and the "suggestion" context, notifies the UI of the result, and
// returns a draft for the detailed follow-up step. A logging failure does
// not block the follow-up: the draft is returned either way.
func (w *Workflow) React(ctx context.Context, sg *models.Suggestion, outcome Outcome) DetailDraft {
	rating := outcome.Rating()
	req := models.LogExperienceRequest{
		UserID:     w.userID(),
		FoodNumber: sg.FoodNumber,
		FoodName:   sg.FoodName,
		Rating:     rating,
		Notes:      outcome.note(),
		Context:    models.ContextSuggestion,
	}

	if _, err := w.ds.LogExperience(ctx, req); err != nil {
		w.logger.Warn("reaction_log_failed",
			zap.Int("food_number", sg.FoodNumber),
			zap.Error(err),
		)
		w.notifier.Notify("Something went wrong",
			"We couldn't save your feedback, but you can still try the food!", true)
	} else if rating >= models.RatingLikedThreshold {
		w.notifier.Notify("Great choice!",
			"We'll suggest more foods like this one!", false)
	} else {
		w.notifier.Notify("Thanks for trying!",
			"We'll learn from this to suggest better foods next time.", false)
	}

	return DetailDraft{
		FoodNumber: sg.FoodNumber,
		FoodName:   sg.FoodName,
		Rating:     rating,
	}
}

// SubmitDetailedLog validates and logs a detailed experience with the
// "manual_log" context. Missing food information fails validation before
// any call is attempted.
func (w *Workflow) SubmitDetailedLog(ctx context.Context, foodNumber int, foodName string, rating int, notes string) (*models.Experience, error) {
	if foodNumber == 0 {
		err := &datasource.ValidationError{Field: "foodNumber", Reason: "required"}
		w.notifier.Notify("Missing information",
			"We need food information to log this experience.", true)
		return nil, err
	}
	if foodName == "" {
		err := &datasource.ValidationError{Field: "foodName", Reason: "required"}
		w.notifier.Notify("Missing information",
			"We need food information to log this experience.", true)
		return nil, err
	}

	req := models.LogExperienceRequest{
		UserID:     w.userID(),
		FoodNumber: foodNumber,
		FoodName:   foodName,
		Rating:     rating,
		Notes:      notes,
		Context:    models.ContextManualLog,
	}
	if err := w.validate.Struct(req); err != nil {
		w.notifier.Notify("Missing information",
			"Please rate the experience from 1 to 5.", true)
		return nil, &datasource.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	exp, err := w.ds.LogExperience(ctx, req)
	if err != nil {
		w.logger.Warn("detailed_log_failed",
			zap.Int("food_number", foodNumber),
			zap.Error(err),
		)
		w.notifier.Notify("Failed to save",
			"We couldn't save your experience. Please try again.", true)
		return nil, err
	}
	w.notifier.Notify("Food experience logged!",
		"Your notes help us suggest better foods for your child.", false)
	return exp, nil
}

// Stats returns the session user's aggregated stats.
func (w *Workflow) Stats(ctx context.Context) (*models.UserStats, error) {
	return w.ds.GetUserStats(ctx, w.userID())
}

// Experiences returns the session user's logged experiences.
func (w *Workflow) Experiences(ctx context.Context) ([]models.Experience, error) {
	return w.ds.GetUserExperiences(ctx, w.userID())
}

// LikedFoodNumbers returns the foods the session user rated positively.
func (w *Workflow) LikedFoodNumbers(ctx context.Context) ([]int, error) {
	return w.ds.GetLikedFoodNumbers(ctx, w.userID())
}
