package models

// Language identifies which localized food catalog a record belongs to.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSwedish Language = "sv"
	// LanguageAll is a filter value only; no record carries it.
	LanguageAll Language = "all"
)

// FoodRecord is one localized entry in the food catalog. The same FoodNumber
// may appear once per language as distinct records; (FoodNumber, Language)
// is unique across the catalog.
type FoodRecord struct {
	ID             string   `json:"id"`
	FoodNumber     int      `json:"foodNumber"`
	Name           string   `json:"name"`
	AltName        string   `json:"altName,omitempty"`
	ScientificName string   `json:"scientificName,omitempty"`
	Language       Language `json:"language"`
	FoodCategory   string   `json:"foodCategory"`
	ImageURL       string   `json:"imageUrl,omitempty"`
}

// DisplayName returns the short name shown on cards, preferring the
// friendlier alternative name when one exists.
func (f *FoodRecord) DisplayName() string {
	if f.AltName != "" {
		return f.AltName
	}
	return f.Name
}

// Tags returns the badge labels for a record: its category plus a
// human-readable language indicator.
func (f *FoodRecord) Tags() []string {
	tags := make([]string, 0, 2)
	if f.FoodCategory != "" {
		tags = append(tags, f.FoodCategory)
	}
	if f.Language == LanguageEnglish {
		tags = append(tags, "English")
	} else {
		tags = append(tags, "Svenska")
	}
	return tags
}
