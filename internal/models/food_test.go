package models

import (
	"reflect"
	"testing"
)

func TestDisplayName(t *testing.T) {
	t.Parallel()

	withAlt := FoodRecord{Name: "Apple w/ skin", AltName: "Apple"}
	if got := withAlt.DisplayName(); got != "Apple" {
		t.Errorf("Expected alternative name, got %q", got)
	}

	plain := FoodRecord{Name: "Banana"}
	if got := plain.DisplayName(); got != "Banana" {
		t.Errorf("Expected name, got %q", got)
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record FoodRecord
		want   []string
	}{
		{
			name:   "english with category",
			record: FoodRecord{FoodCategory: "Fruit fresh", Language: LanguageEnglish},
			want:   []string{"Fruit fresh", "English"},
		},
		{
			name:   "swedish with category",
			record: FoodRecord{FoodCategory: "Frukt färsk", Language: LanguageSwedish},
			want:   []string{"Frukt färsk", "Svenska"},
		},
		{
			name:   "missing category",
			record: FoodRecord{Language: LanguageEnglish},
			want:   []string{"English"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.record.Tags(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRatingLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rating int
		want   string
	}{
		{rating: 1, want: "Didn't like it"},
		{rating: 3, want: "It was okay"},
		{rating: 5, want: "Loved it!"},
		{rating: 0, want: ""},
		{rating: 6, want: ""},
	}
	for _, tt := range tests {
		tt := tt
		if got := RatingLabel(tt.rating); got != tt.want {
			t.Errorf("RatingLabel(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}
