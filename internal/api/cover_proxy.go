package api

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// handleProxyCover fetches a cover image on behalf of the dashboard. Some
// cover hosts refuse hotlinked requests, so the request carries a Referer
// for the image's own site.
//
// Query parameters:
//   - url: (required) The cover URL to proxy
//   - referer: (optional) Referer header value, defaults to the cover's origin
func (s *Server) handleProxyCover(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	coverURL := query.Get("url")
	if coverURL == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing 'url' parameter")
		return
	}

	parsedURL, err := url.Parse(coverURL)
	if err != nil || parsedURL.Host == "" {
		RespondWithError(w, http.StatusBadRequest, "Invalid URL")
		return
	}

	// Only allow http/https URLs
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		RespondWithError(w, http.StatusBadRequest, "Only http and https URLs are allowed")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, coverURL, nil)
	if err != nil {
		log.Printf("Error creating cover request: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to create request")
		return
	}
	referer := query.Get("referer")
	if referer == "" {
		referer = parsedURL.Scheme + "://" + parsedURL.Host + "/"
	}
	req.Header.Set("Referer", referer)

	resp, err := s.coverClient.Do(req)
	if err != nil {
		log.Printf("Error fetching cover: %v", err)
		RespondWithError(w, http.StatusBadGateway, "Failed to fetch cover")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Cover host returned status %d for URL: %s", resp.StatusCode, coverURL)
		RespondWithError(w, http.StatusBadGateway, "Cover host returned error")
		return
	}

	// Trim any charset or other parameters
	contentType := strings.TrimSpace(strings.Split(resp.Header.Get("Content-Type"), ";")[0])
	if contentType == "" {
		contentType = inferContentType(parsedURL.Path)
	}
	if !strings.HasPrefix(contentType, "image/") {
		RespondWithError(w, http.StatusUnsupportedMediaType, "Resource is not an image")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400") // 1 day

	if _, err := io.Copy(w, resp.Body); err != nil {
		// Response already started, can't send error
		log.Printf("Error copying cover data: %v", err)
	}
}

// inferContentType tries to infer an image type from the URL extension.
func inferContentType(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
