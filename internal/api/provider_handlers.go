package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vrsandeep/mango-marks/internal/metadata/providers"
	"github.com/vrsandeep/mango-marks/internal/tracker"
)

func (s *Server) handleListProviders(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"default":   s.app.Provider().GetInfo().ID,
		"providers": providers.GetAll(),
	})
}

// handleProviderLookup resolves one title the way the pipeline would. The
// response is always a SeriesInfo; failed lookups return the fallback.
func (s *Server) handleProviderLookup(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing 'title' parameter")
		return
	}

	provider, ok := providers.Get(providerID)
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Provider not found")
		return
	}

	info := tracker.NewEnricher(provider).Lookup(r.Context(), title)
	RespondWithJSON(w, http.StatusOK, info)
}
