package api

import (
	"net/http"
	"strings"

	"github.com/vrsandeep/mango-marks/internal/extension"
)

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"version": s.app.Version()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"clients": s.app.WsHub().ClientCount(),
		"pending": s.app.View().Pending(),
	})
}

// handleExtensionCompat tells the extension whether its version is accepted.
func (s *Server) handleExtensionCompat(w http.ResponseWriter, r *http.Request) {
	version := strings.TrimSpace(r.URL.Query().Get("version"))
	if version == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing 'version' parameter")
		return
	}
	if !extension.IsValidVersion(version) {
		RespondWithError(w, http.StatusBadRequest, "Invalid 'version' parameter")
		return
	}
	compat, err := extension.CheckCompatibility(version, s.app.Config().Extension.MinVersion)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, compat)
}

// handleExtensionProtocol lists the message actions the dashboard uses to
// talk to the extension.
func (s *Server) handleExtensionProtocol(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{
		"request_bookmarks": extension.ActionGetBookmarks,
		"bookmarks_data":    extension.ActionBookmarksData,
		"probe":             extension.ActionProbe,
		"detected":          extension.ActionDetected,
	})
}
