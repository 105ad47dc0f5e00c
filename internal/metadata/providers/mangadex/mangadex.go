package mangadex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/vrsandeep/mango-marks/internal/models"
)

const (
	DefaultAPIBaseURL      = "https://api.mangadex.org"
	DefaultCoverArtBaseURL = "https://uploads.mangadex.org"
)

// MangaDexProvider implements models.MetadataProvider for MangaDex.
type MangaDexProvider struct {
	client          *http.Client
	apiBaseURL      string
	coverArtBaseURL string
}

// New creates a new instance of the MangaDexProvider.
func New() *MangaDexProvider {
	return NewWithBaseURL(DefaultAPIBaseURL, DefaultCoverArtBaseURL, 20*time.Second)
}

// NewWithBaseURL points the provider at other API and cover hosts.
func NewWithBaseURL(apiBaseURL, coverArtBaseURL string, timeout time.Duration) *MangaDexProvider {
	return &MangaDexProvider{
		client:          &http.Client{Timeout: timeout},
		apiBaseURL:      strings.TrimRight(apiBaseURL, "/"),
		coverArtBaseURL: strings.TrimRight(coverArtBaseURL, "/"),
	}
}

// GetInfo returns static information about this provider.
func (p *MangaDexProvider) GetInfo() models.ProviderInfo {
	return models.ProviderInfo{
		ID:   "mangadex",
		Name: "MangaDex",
	}
}

// Search sends a request to the MangaDex API to search for manga.
func (p *MangaDexProvider) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/manga", p.apiBaseURL), nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Add("title", query)
	q.Add("limit", "10")
	q.Add("includes[]", "cover_art")
	req.URL.RawQuery = q.Encode()

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mangadex search returned status %d", resp.StatusCode)
	}

	var apiResponse MangaListResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("failed to decode mangadex response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(apiResponse.Data))
	for _, mangaData := range apiResponse.Data {
		attrs := mangaData.Attributes
		title := attrs.Title.Get("en") // Default to English title
		if title == "" {
			title = firstValue(attrs.Title)
		}

		var alts []string
		for _, alt := range attrs.AltTitles {
			for _, t := range alt {
				alts = append(alts, t)
			}
		}

		coverFileName := ""
		for _, rel := range mangaData.Relationships {
			if rel.Type == "cover_art" {
				coverFileName = rel.Attributes.FileName
				break
			}
		}

		coverURL := ""
		if coverFileName != "" {
			coverURL = fmt.Sprintf("%s/covers/%s/%s.256.jpg", p.coverArtBaseURL, mangaData.ID, coverFileName)
		}

		results = append(results, models.SearchResult{
			Title:      title,
			AltTitles:  alts,
			CoverURL:   coverURL,
			Subtype:    subtypeFromLanguage(attrs.OriginalLanguage),
			Identifier: mangaData.ID,
		})
	}

	return results, nil
}

// firstValue picks a title deterministically when no English one exists.
func firstValue(mls MultiLingualString) string {
	langs := make([]string, 0, len(mls))
	for lang := range mls {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	if len(langs) == 0 {
		return ""
	}
	return mls[langs[0]]
}

func subtypeFromLanguage(lang string) models.SeriesType {
	switch strings.ToLower(lang) {
	case "ko":
		return models.Manhwa
	case "zh", "zh-hk":
		return models.Manhua
	default:
		return models.Manga
	}
}
