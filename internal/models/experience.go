package models

import "time"

// Experience context tags. "suggestion" marks a quick reaction to a proposed
// food; "manual_log" marks a detailed entry from the logging screen.
const (
	ContextSuggestion = "suggestion"
	ContextManualLog  = "manual_log"
)

// Rating bounds for a logged experience.
const (
	RatingMin = 1
	RatingMax = 5
	// RatingLikedThreshold is the lowest rating counted as a positive
	// outcome.
	RatingLikedThreshold = 4
)

// Experience is one logged caregiver reaction to a specific food. The client
// creates it exactly once and never mutates it afterwards.
type Experience struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	FoodNumber int       `json:"foodNumber"`
	FoodName   string    `json:"foodName"`
	Rating     int       `json:"rating"`
	Notes      string    `json:"notes,omitempty"`
	Context    string    `json:"context,omitempty"`
	ChildAge   string    `json:"childAge,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LogExperienceRequest is the body of a POST /experiences call.
type LogExperienceRequest struct {
	UserID     string `json:"userId" validate:"required"`
	FoodNumber int    `json:"foodNumber" validate:"required"`
	FoodName   string `json:"foodName" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Notes      string `json:"notes,omitempty"`
	Context    string `json:"context,omitempty"`
}

// UserStats is the aggregated view of a caregiver's logged experiences.
// Derived externally; the client treats it as read-only.
type UserStats struct {
	TotalFoodsTried    int      `json:"totalFoodsTried"`
	PositiveFoods      int      `json:"positiveFoods"`
	PositivePercentage int      `json:"positivePercentage"`
	Streak             int      `json:"streak"`
	RecentAchievements []string `json:"recentAchievements"`
}

// RatingLabel returns the human-readable label for a 1..5 rating, or an
// empty string for anything outside the domain.
func RatingLabel(rating int) string {
	switch rating {
	case 1:
		return "Didn't like it"
	case 2:
		return "Not very interested"
	case 3:
		return "It was okay"
	case 4:
		return "Liked it!"
	case 5:
		return "Loved it!"
	default:
		return ""
	}
}
