// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vrsandeep/mango-marks/internal/assets"
	"github.com/vrsandeep/mango-marks/internal/core"
	"github.com/vrsandeep/mango-marks/internal/models"
)

// Server holds the dependencies for our API.
type Server struct {
	app         *core.App
	coverClient *http.Client
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	return &Server{
		app:         app,
		coverClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(s.corsMiddleware())

	r.Get("/api/version", s.handleGetVersion)
	r.Get("/api/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		// Bookmark ingestion and the resulting table
		r.Post("/bookmarks", s.handlePostBookmarks)
		r.Get("/items", s.handleListItems)
		r.Get("/items/options", s.handleItemOptions)
		r.Get("/loads", s.handleListLoads)

		// Metadata providers
		r.Get("/providers", s.handleListProviders)
		r.Get("/providers/{providerID}/lookup", s.handleProviderLookup)
		r.Get("/covers", s.handleProxyCover)

		// Browser extension
		r.Get("/extension/compat", s.handleExtensionCompat)
		r.Get("/extension/protocol", s.handleExtensionProtocol)
	})

	// WebSocket route
	r.Get("/ws/view", func(w http.ResponseWriter, r *http.Request) {
		s.app.WsHub().ServeWs(w, r)
	})

	// Placeholder cover for series without metadata
	r.Get(models.DefaultPortrait, func(w http.ResponseWriter, r *http.Request) {
		file, err := assets.WebFS.Open(assets.DefaultPortraitFile)
		if err != nil {
			http.NotFound(w, r)
			log.Printf("Error serving embedded file %s: %v", assets.DefaultPortraitFile, err)
			return
		}
		defer file.Close()
		w.Header().Set("Cache-Control", "public, max-age=86400")
		http.ServeContent(w, r, "default-portrait.jpg", time.Time{}, file.(io.ReadSeeker))
	})

	return r
}
