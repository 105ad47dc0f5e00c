package api

// This file contains the cross-origin policy. The browser extension and
// dashboards served from other hosts post bookmarks to the API.

import (
	"net/http"

	"github.com/go-chi/cors"
)

func (s *Server) corsMiddleware() func(http.Handler) http.Handler {
	origins := s.app.Config().CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}
