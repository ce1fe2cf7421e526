package models

import "time"

// Suggestion is a system-proposed food with rationale and confidence,
// derived from foods the caregiver marked as enjoyed. Immutable once
// received.
type Suggestion struct {
	FoodNumber      int       `json:"foodNumber"`
	FoodName        string    `json:"foodName"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	Tags            []string  `json:"tags"`
	Reason          string    `json:"reason"`
	ConfidenceScore float64   `json:"confidenceScore"`
	BasedOnFoods    []int     `json:"basedOnFoods"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// PersonalizedSuggestionsRequest is the body of a POST /suggestions call.
type PersonalizedSuggestionsRequest struct {
	LikedFoodNumbers []int `json:"likedFoodNumbers"`
	MaxSuggestions   int   `json:"maxSuggestions"`
}
