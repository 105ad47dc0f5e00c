package models

import "context"

// ProviderInfo contains static information about a metadata provider.
type ProviderInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchResult represents a single candidate series returned by a provider.
type SearchResult struct {
	Title      string     `json:"title"`
	AltTitles  []string   `json:"alt_titles,omitempty"`
	CoverURL   string     `json:"cover_url"`
	Subtype    SeriesType `json:"subtype"`
	Identifier string     `json:"identifier"` // Unique ID for the series on the source site
}

// Titles returns the primary title followed by every alternate title.
func (r SearchResult) Titles() []string {
	titles := make([]string, 0, len(r.AltTitles)+1)
	if r.Title != "" {
		titles = append(titles, r.Title)
	}
	for _, t := range r.AltTitles {
		if t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

// SeriesInfo is the enrichment applied to a normalized title.
type SeriesInfo struct {
	Cover   string     `json:"cover"`
	Subtype SeriesType `json:"subtype"`
}

// FallbackSeriesInfo is returned whenever a lookup cannot produce a match.
func FallbackSeriesInfo() SeriesInfo {
	return SeriesInfo{Cover: DefaultPortrait, Subtype: Unknown}
}

// MetadataProvider defines the contract every metadata source must implement.
type MetadataProvider interface {
	GetInfo() ProviderInfo
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
