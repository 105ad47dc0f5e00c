// A mock provider for development and testing purposes. It answers
// searches from a small built-in catalogue without making network calls.
package mockadex

import (
	"context"
	"fmt"
	"strings"

	"github.com/vrsandeep/mango-marks/internal/models"
)

type entry struct {
	title   string
	alts    []string
	subtype models.SeriesType
}

var catalogue = []entry{
	{"One Piece", nil, models.Manga},
	{"Berserk", nil, models.Manga},
	{"Na Honjaman Level Up", []string{"Solo Leveling"}, models.Manhwa},
	{"Tower of God", []string{"Sin-ui Tap"}, models.Manhwa},
	{"Wu Dong Qian Kun", []string{"Martial Universe"}, models.Manhua},
	{"Martial Peak", []string{"Wu Lian Dian Feng"}, models.Manhua},
}

type MockadexProvider struct{}

func New() *MockadexProvider {
	return &MockadexProvider{}
}

func (p *MockadexProvider) GetInfo() models.ProviderInfo {
	return models.ProviderInfo{
		ID:   "mockadex",
		Name: "Mockadex",
	}
}

// Search returns catalogue entries whose titles contain the query, ignoring
// case. Unmatched queries get a single generated result.
func (p *MockadexProvider) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, nil
	}

	var results []models.SearchResult
	for i, e := range catalogue {
		if !matches(e, needle) {
			continue
		}
		results = append(results, models.SearchResult{
			Title:      e.title,
			AltTitles:  e.alts,
			CoverURL:   fmt.Sprintf("https://placehold.co/400x600/2a2a2a/f0f0f0?text=Cover+%d", i+1),
			Subtype:    e.subtype,
			Identifier: fmt.Sprintf("mock-series-%d", i+1),
		})
	}
	if len(results) == 0 {
		results = append(results, models.SearchResult{
			Title:      query,
			CoverURL:   "https://placehold.co/400x600/2a2a2a/f0f0f0?text=" + strings.ReplaceAll(query, " ", "+"),
			Subtype:    models.Manga,
			Identifier: "mock-series-0",
		})
	}
	return results, nil
}

func matches(e entry, needle string) bool {
	if strings.Contains(strings.ToLower(e.title), needle) {
		return true
	}
	for _, alt := range e.alts {
		if strings.Contains(strings.ToLower(alt), needle) {
			return true
		}
	}
	return false
}
