// Package images builds display URLs for food and suggestion records and
// defines the fallback chain used when an image fails to load.
package images

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"unicode"
)

const (
	// DefaultImageBaseURL is where the backend serves catalog images from.
	// Image references in records are relative to it, e.g.
	// "image/foods/588_Apple.jpg".
	DefaultImageBaseURL = "http://localhost:8083/api/"

	placeholderURL = "https://via.placeholder.com/64/f3f4f6/9ca3af?text="

	// FallbackChainLength bounds the fallback chain: one bundled-image
	// retry, then the terminal generated image. A display instance never
	// advances past the terminal step, so the chain cannot loop.
	FallbackChainLength = 2
)

// bundledImages are the packaged fallback assets, indexed by card position.
var bundledImages = []string{
	"assets/food-banana.png",
	"assets/food-pasta.png",
	"assets/food-apple.png",
	"assets/food-carrot.png",
}

// Resolver composes display URLs against a fixed image-serving prefix.
type Resolver struct {
	baseURL string
}

// NewResolver creates a resolver against the given image base URL, or
// DefaultImageBaseURL when empty.
func NewResolver(baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	return &Resolver{baseURL: baseURL}
}

// Resolve returns the display URL for a record: its image reference
// composed with the serving prefix, or a placeholder encoding the first
// letter of the name when the record has no image.
func (r *Resolver) Resolve(name, imageRef string) string {
	if imageRef != "" {
		return r.baseURL + imageRef
	}
	return placeholderURL + url.QueryEscape(firstLetter(name))
}

// Fallback returns the URL for one step of the fallback chain after a load
// failure. Attempt 0 selects a bundled image by card position; any later
// attempt returns the terminal generated image. Deterministic for a given
// record, position, and attempt.
func (r *Resolver) Fallback(position, attempt int, name string) string {
	if attempt <= 0 {
		return bundledImages[position%len(bundledImages)]
	}
	return GeneratedImage(name)
}

// GeneratedImage is the terminal fallback: an inline SVG data URL showing a
// circle with the record's first letter. Used where no bundled asset set is
// available, e.g. dynamically rendered suggestion cards.
func GeneratedImage(name string) string {
	letter := firstLetter(name)
	svg := fmt.Sprintf(`<svg width="64" height="64" xmlns="http://www.w3.org/2000/svg">`+
		`<circle cx="32" cy="32" r="30" fill="#f3f4f6" stroke="#9ca3af" stroke-width="2"/>`+
		`<text x="32" y="40" text-anchor="middle" font-family="Arial, sans-serif" font-size="24" font-weight="bold" fill="#6b7280">%s</text>`+
		`</svg>`, letter)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

func firstLetter(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return "?"
}
