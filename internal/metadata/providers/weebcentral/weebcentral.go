package weebcentral

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/vrsandeep/mango-marks/internal/models"
)

const DefaultBaseURL = "https://weebcentral.com"

// WeebCentralProvider implements models.MetadataProvider by scraping the
// WeebCentral quick search.
type WeebCentralProvider struct {
	client  *http.Client
	baseURL string
}

func New() *WeebCentralProvider {
	return NewWithBaseURL(DefaultBaseURL, 30*time.Second)
}

func NewWithBaseURL(baseURL string, timeout time.Duration) *WeebCentralProvider {
	return &WeebCentralProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (p *WeebCentralProvider) GetInfo() models.ProviderInfo {
	return models.ProviderInfo{
		ID:   "weebcentral",
		Name: "WeebCentral",
	}
}

// Search posts the quick-search form and reads the result fragment. The
// site does not expose a subtype, so results leave it empty.
func (p *WeebCentralProvider) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	searchURL := fmt.Sprintf("%s/search/simple?location=main", p.baseURL)
	form := url.Values{}
	form.Set("text", query)
	body := bytes.NewBufferString(form.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, searchURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Trigger", "quick-search-input")
	req.Header.Set("HX-Trigger-Name", "text")
	req.Header.Set("HX-Target", "quick-search-result")
	req.Header.Set("HX-Current-URL", p.baseURL+"/")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weebcentral search returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var results []models.SearchResult
	doc.Find("#quick-search-result > div > a").Each(func(i int, s *goquery.Selection) {
		link, exists := s.Attr("href")
		if !exists {
			return
		}
		title := strings.TrimSpace(s.Find(".flex-1").Text())
		var image string
		if src, ok := s.Find("source").Attr("srcset"); ok {
			image = src
		} else if src, ok := s.Find("img").Attr("src"); ok {
			image = src
		}
		// Links look like '/series/{id}/{slug}'
		idPart := ""
		parts := strings.Split(link, "/series/")
		if len(parts) > 1 {
			idPart = strings.Split(parts[1], "/")[0]
		}
		if idPart == "" || title == "" {
			return
		}
		results = append(results, models.SearchResult{
			Title:      title,
			CoverURL:   image,
			Identifier: idPart,
		})
	})
	return results, nil
}
