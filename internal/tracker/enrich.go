package tracker

import (
	"context"
	"log"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vrsandeep/mango-marks/internal/models"
)

// Enricher resolves cover art and subtype for normalized titles.
type Enricher struct {
	Provider models.MetadataProvider
}

// NewEnricher creates an enricher backed by provider. A nil provider makes
// every lookup return the fallback.
func NewEnricher(provider models.MetadataProvider) *Enricher {
	return &Enricher{Provider: provider}
}

// Lookup never fails: transport errors, bad payloads, empty results and
// provider panics all degrade to models.FallbackSeriesInfo.
func (e *Enricher) Lookup(ctx context.Context, title string) (info models.SeriesInfo) {
	info = models.FallbackSeriesInfo()
	if e == nil || e.Provider == nil || strings.TrimSpace(title) == "" {
		return info
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Metadata lookup for %q panicked: %v", title, r)
			info = models.FallbackSeriesInfo()
		}
	}()

	candidates, err := e.Provider.Search(ctx, title)
	if err != nil {
		log.Printf("Metadata lookup for %q failed: %v", title, err)
		return info
	}
	if len(candidates) == 0 {
		return info
	}

	best := bestMatch(title, candidates)
	cover := best.CoverURL
	if cover == "" {
		cover = models.DefaultPortrait
	}
	return models.SeriesInfo{Cover: cover, Subtype: subtypeOf(best.Subtype)}
}

// LookupAll issues one lookup per distinct title, all at once, and waits
// for every one of them. There is no concurrency cap.
func (e *Enricher) LookupAll(ctx context.Context, titles []string) map[string]models.SeriesInfo {
	var distinct []string
	seen := make(map[string]bool)
	for _, t := range titles {
		if !seen[t] {
			seen[t] = true
			distinct = append(distinct, t)
		}
	}

	results := make([]models.SeriesInfo, len(distinct))
	var g errgroup.Group
	for i, title := range distinct {
		g.Go(func() error {
			results[i] = e.Lookup(ctx, title)
			return nil
		})
	}
	_ = g.Wait() // lookups never return errors

	out := make(map[string]models.SeriesInfo, len(distinct))
	for i, title := range distinct {
		out[title] = results[i]
	}
	return out
}

// bestMatch picks the first candidate with a title equal to the query once
// both are normalized, falling back to the first candidate.
func bestMatch(title string, candidates []models.SearchResult) models.SearchResult {
	want := NormalizeForMatch(title)
	for _, c := range candidates {
		for _, t := range c.Titles() {
			if NormalizeForMatch(t) == want {
				return c
			}
		}
	}
	return candidates[0]
}

func subtypeOf(t models.SeriesType) models.SeriesType {
	switch t {
	case models.Manhwa, models.Manhua:
		return t
	default:
		return models.Manga
	}
}

// NormalizeForMatch lower-cases s, folds accents and keeps only ASCII
// letters and digits.
func NormalizeForMatch(s string) string {
	// Transformers keep state, so each call builds its own chain.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
