// Package catalog composes search, language and category filtering,
// deduplication, and pagination into displayable pages of food records.
package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/foodbridge/foodbridge/internal/datasource"
	"github.com/foodbridge/foodbridge/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is the number of records shown per page.
	DefaultPageSize = 12

	// minSearchLength is the term length above which the search path is
	// taken. At or below it, browsing with category filtering stays
	// active.
	minSearchLength = 2
)

// quickStartKeywords pick out child-friendly records for the home screen's
// quick-selection grid.
var (
	quickStartNames      = []string{"apple", "banana", "pasta", "rice", "chicken", "cheese", "bread", "milk"}
	quickStartCategories = []string{"fruit", "dairy"}
)

// ErrSuperseded reports that a refresh settled after its inputs were
// replaced; its result was discarded and the engine state is untouched.
var ErrSuperseded = errors.New("catalog query superseded")

// Page is one displayable slice of the narrowed catalog.
type Page struct {
	Items      []models.FoodRecord
	Number     int
	TotalPages int
	// TotalItems is the full deduplicated count, for UI messaging.
	TotalItems int
}

// Engine narrows the catalog by search term, language, and category, then
// deduplicates and paginates. Input changes reset the page to 1. At most one
// fetch is in flight per logical query key, and a response settling for a
// superseded key never overwrites current state: every refresh is stamped
// with a generation, and only a result whose generation is still current is
// applied.
type Engine struct {
	ds       datasource.DataSource
	logger   *zap.Logger
	pageSize int

	mu         sync.Mutex
	searchTerm string
	language   models.Language
	category   string
	page       int
	generation uint64
	inflight   map[string]chan struct{}
	filtered   []models.FoodRecord
	loaded     bool
	lastErr    error
}

// NewEngine creates an engine over the data source. pageSize <= 0 selects
// DefaultPageSize.
func NewEngine(ds datasource.DataSource, pageSize int, logger *zap.Logger) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		ds:       ds,
		logger:   logger,
		pageSize: pageSize,
		language: models.LanguageEnglish,
		category: "all",
		page:     1,
		inflight: make(map[string]chan struct{}),
	}
}

// SetSearchTerm replaces the search term and resets to page 1.
func (e *Engine) SetSearchTerm(term string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if term == e.searchTerm {
		return
	}
	e.searchTerm = term
	e.page = 1
	e.generation++
}

// SetLanguage replaces the language filter and resets to page 1.
func (e *Engine) SetLanguage(lang models.Language) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if lang == e.language {
		return
	}
	e.language = lang
	e.page = 1
	e.generation++
}

// SetCategory replaces the category filter ("all" disables it) and resets
// to page 1.
func (e *Engine) SetCategory(category string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if category == e.category {
		return
	}
	e.category = category
	e.page = 1
	e.generation++
}

// SearchActive reports whether the current term is long enough to take the
// search path.
func (e *Engine) SearchActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return searchActive(e.searchTerm)
}

func searchActive(term string) bool {
	return utf8.RuneCountInString(term) > minSearchLength
}

// GoToPage moves to the requested page, clamped into the valid range.
// Navigation outside it is a no-op, not an error.
func (e *Engine) GoToPage(page int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.page = clampPage(page, e.totalPagesLocked())
}

// NextPage advances one page, clamped.
func (e *Engine) NextPage() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.page = clampPage(e.page+1, e.totalPagesLocked())
}

// PrevPage goes back one page, clamped.
func (e *Engine) PrevPage() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.page = clampPage(e.page-1, e.totalPagesLocked())
}

func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

type querySnapshot struct {
	searchTerm string
	language   models.Language
	category   string
	generation uint64
}

// key identifies the logical query. Distinct terms and filters get distinct
// keys so a slow earlier response can be told apart from the current one.
func (q querySnapshot) key() string {
	if searchActive(q.searchTerm) {
		return "search:" + q.searchTerm
	}
	return "browse:" + string(q.language) + ":" + q.category
}

// Refresh fetches records for the current inputs, narrows them, and applies
// the result. If the inputs changed while the fetch was in flight the
// settled result is discarded and ErrSuperseded is returned. If another
// refresh for the same key is already in flight, Refresh waits for it
// instead of issuing a second request.
func (e *Engine) Refresh(ctx context.Context) (Page, error) {
	e.mu.Lock()
	snap := querySnapshot{
		searchTerm: e.searchTerm,
		language:   e.language,
		category:   e.category,
		generation: e.generation,
	}
	key := snap.key()
	if ch, ok := e.inflight[key]; ok {
		e.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return Page{}, ctx.Err()
		}
		return e.Current()
	}
	done := make(chan struct{})
	e.inflight[key] = done
	e.mu.Unlock()

	records, err := e.fetch(ctx, snap)

	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inflight, key)
	close(done)

	if snap.generation != e.generation {
		e.logger.Debug("stale_catalog_response_dropped",
			zap.String("key", key),
			zap.Uint64("generation", snap.generation),
		)
		return Page{}, ErrSuperseded
	}
	if err != nil {
		// Degrade to an explicit error state; inputs are preserved so
		// the caller can retry.
		e.lastErr = err
		e.filtered = nil
		e.loaded = false
		return Page{}, err
	}

	e.filtered = dedupeByFoodNumber(records)
	e.loaded = true
	e.lastErr = nil
	e.page = clampPage(e.page, e.totalPagesLocked())
	return e.pageLocked(), nil
}

// Current returns the last settled page, or the error state left by a
// failed refresh.
func (e *Engine) Current() (Page, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastErr != nil {
		return Page{}, e.lastErr
	}
	return e.pageLocked(), nil
}

// fetch pulls the raw records for a snapshot. While a search is active the
// category filter is ignored; otherwise browsing narrows by language and
// then category.
func (e *Engine) fetch(ctx context.Context, snap querySnapshot) ([]models.FoodRecord, error) {
	if searchActive(snap.searchTerm) {
		return e.ds.Search(ctx, snap.searchTerm)
	}

	var records []models.FoodRecord
	if snap.language == models.LanguageAll {
		en, err := e.ds.ListByLanguage(ctx, models.LanguageEnglish)
		if err != nil {
			return nil, err
		}
		sv, err := e.ds.ListByLanguage(ctx, models.LanguageSwedish)
		if err != nil {
			return nil, err
		}
		records = append(en, sv...)
	} else {
		var err error
		records, err = e.ds.ListByLanguage(ctx, snap.language)
		if err != nil {
			return nil, err
		}
	}

	if snap.category != "all" && snap.category != "" {
		kept := records[:0:0]
		for _, rec := range records {
			if rec.FoodCategory == snap.category {
				kept = append(kept, rec)
			}
		}
		records = kept
	}
	return records, nil
}

// dedupeByFoodNumber keeps the first record per food number in source
// order. Chiefly relevant when both languages are concatenated and every
// food appears twice.
func dedupeByFoodNumber(records []models.FoodRecord) []models.FoodRecord {
	seen := make(map[int]bool, len(records))
	out := make([]models.FoodRecord, 0, len(records))
	for _, rec := range records {
		if seen[rec.FoodNumber] {
			continue
		}
		seen[rec.FoodNumber] = true
		out = append(out, rec)
	}
	return out
}

func (e *Engine) totalPagesLocked() int {
	return (len(e.filtered) + e.pageSize - 1) / e.pageSize
}

func (e *Engine) pageLocked() Page {
	total := e.totalPagesLocked()
	page := clampPage(e.page, total)
	start := (page - 1) * e.pageSize
	end := start + e.pageSize
	if start > len(e.filtered) {
		start = len(e.filtered)
	}
	if end > len(e.filtered) {
		end = len(e.filtered)
	}
	items := make([]models.FoodRecord, end-start)
	copy(items, e.filtered[start:end])
	return Page{
		Items:      items,
		Number:     page,
		TotalPages: total,
		TotalItems: len(e.filtered),
	}
}

// QuickStart returns up to max child-friendly English records for the home
// screen's quick-selection grid.
func (e *Engine) QuickStart(ctx context.Context, max int) ([]models.FoodRecord, error) {
	records, err := e.ds.ListByLanguage(ctx, models.LanguageEnglish)
	if err != nil {
		return nil, err
	}
	var out []models.FoodRecord
	for _, rec := range records {
		if len(out) >= max {
			break
		}
		if isQuickStartFood(&rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func isQuickStartFood(rec *models.FoodRecord) bool {
	name := strings.ToLower(rec.Name)
	for _, kw := range quickStartNames {
		if strings.Contains(name, kw) {
			return true
		}
	}
	category := strings.ToLower(rec.FoodCategory)
	for _, kw := range quickStartCategories {
		if strings.Contains(category, kw) {
			return true
		}
	}
	return false
}
