// Package kitsu looks series up in the Kitsu manga catalogue.
package kitsu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vrsandeep/mango-marks/internal/models"
)

const DefaultBaseURL = "https://kitsu.io"

// KitsuProvider implements models.MetadataProvider for Kitsu.
type KitsuProvider struct {
	client  *http.Client
	baseURL string
}

// New creates a provider talking to the public Kitsu API.
func New() *KitsuProvider {
	return NewWithBaseURL(DefaultBaseURL, 20*time.Second)
}

// NewWithBaseURL creates a provider against another host, such as a test server.
func NewWithBaseURL(baseURL string, timeout time.Duration) *KitsuProvider {
	return &KitsuProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (p *KitsuProvider) GetInfo() models.ProviderInfo {
	return models.ProviderInfo{
		ID:   "kitsu",
		Name: "Kitsu",
	}
}

// Search queries the manga text filter and returns the candidates in the
// order Kitsu ranks them.
func (p *KitsuProvider) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/edge/manga", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("filter[text]", query)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/vnd.api+json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kitsu search returned status %d", resp.StatusCode)
	}

	var apiResponse MangaListResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("failed to decode kitsu response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(apiResponse.Data))
	for _, manga := range apiResponse.Data {
		attrs := manga.Attributes
		var alts []string
		for _, lang := range []string{"en", "en_jp", "ja_jp"} {
			if t := attrs.Titles[lang]; t != "" {
				alts = append(alts, t)
			}
		}
		alts = append(alts, attrs.AbbreviatedTitles...)

		cover := ""
		if attrs.PosterImage != nil {
			cover = attrs.PosterImage.Small
			if cover == "" {
				cover = attrs.PosterImage.Original
			}
		}

		results = append(results, models.SearchResult{
			Title:      attrs.CanonicalTitle,
			AltTitles:  alts,
			CoverURL:   cover,
			Subtype:    subtype(attrs.Subtype),
			Identifier: manga.ID,
		})
	}
	return results, nil
}

func subtype(s string) models.SeriesType {
	switch strings.ToLower(s) {
	case "manhwa":
		return models.Manhwa
	case "manhua":
		return models.Manhua
	default:
		return models.Manga
	}
}
