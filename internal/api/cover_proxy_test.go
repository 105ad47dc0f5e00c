package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupMockCoverServer simulates a cover host that refuses hotlinking.
func setupMockCoverServer() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/covers/cover.jpg", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Referer") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg; charset=binary")
		w.Write([]byte("fake-image-data"))
	})
	mux.HandleFunc("/covers/untyped.webp", func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress sniffing
		w.Write([]byte("webp-data"))
	})
	mux.HandleFunc("/page.html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>Not a cover</body></html>`))
	})
	mux.HandleFunc("/missing.jpg", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return httptest.NewServer(mux)
}

func TestHandleProxyCover(t *testing.T) {
	server, _ := setupTestServer(t)
	router := server.Router()

	covers := setupMockCoverServer()
	defer covers.Close()

	proxy := func(target string) string {
		return "/api/covers?url=" + url.QueryEscape(target)
	}

	t.Run("Image with default Referer", func(t *testing.T) {
		rr := doRequest(t, router, "GET", proxy(covers.URL+"/covers/cover.jpg"), "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
		assert.Equal(t, "public, max-age=86400", rr.Header().Get("Cache-Control"))
		assert.Equal(t, "fake-image-data", rr.Body.String())
	})

	t.Run("Content type inferred from extension", func(t *testing.T) {
		rr := doRequest(t, router, "GET", proxy(covers.URL+"/covers/untyped.webp"), "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/webp", rr.Header().Get("Content-Type"))
	})

	t.Run("Non-image is refused", func(t *testing.T) {
		rr := doRequest(t, router, "GET", proxy(covers.URL+"/page.html"), "")
		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})

	t.Run("Upstream error", func(t *testing.T) {
		rr := doRequest(t, router, "GET", proxy(covers.URL+"/missing.jpg"), "")
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("Bad URLs", func(t *testing.T) {
		for _, target := range []string{"", "ftp://example.com/cover.jpg", "/relative.jpg"} {
			rr := doRequest(t, router, "GET", proxy(target), "")
			assert.Equal(t, http.StatusBadRequest, rr.Code, target)
		}
	})
}

func TestInferContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", inferContentType("/a/b.JPEG"))
	assert.Equal(t, "image/png", inferContentType("x.png"))
	assert.Equal(t, "application/octet-stream", inferContentType("x"))
}
