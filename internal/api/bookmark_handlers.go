package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/vrsandeep/mango-marks/internal/bookmarks"
	"github.com/vrsandeep/mango-marks/internal/models"
	"github.com/vrsandeep/mango-marks/internal/view"
)

// maxBookmarkBody caps uploaded bookmark trees.
const maxBookmarkBody = 16 << 20

const sourceAPI = "api"

type loadResponse struct {
	Token   uint64               `json:"token"`
	Applied bool                 `json:"applied"`
	Items   []models.DisplayItem `json:"items"`
	Total   int                  `json:"total"`
}

// handlePostBookmarks accepts a bookmark tree. By default the load runs in
// the background and only its token is returned; with ?wait=true the
// response carries the resulting table.
func (s *Server) handlePostBookmarks(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBookmarkBody)
	nodes, err := bookmarks.DecodeJSON(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			RespondWithError(w, http.StatusRequestEntityTooLarge, "Bookmark payload too large")
		case errors.Is(err, bookmarks.ErrEmptyInput):
			RespondWithError(w, http.StatusBadRequest, "Empty bookmark payload")
		default:
			log.Printf("Rejected bookmark payload: %v", err)
			RespondWithError(w, http.StatusBadRequest, "Invalid bookmark payload")
		}
		return
	}

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if !wait {
		token := s.app.Loads().Start(r.Context(), sourceAPI, nodes)
		RespondWithJSON(w, http.StatusAccepted, map[string]uint64{"token": token})
		return
	}

	state, applied := s.app.Loads().Run(r.Context(), sourceAPI, nodes)
	RespondWithJSON(w, http.StatusOK, loadResponse{
		Token:   state.Token,
		Applied: applied,
		Items:   state.Items,
		Total:   len(state.Items),
	})
}

type itemsResponse struct {
	Token   uint64               `json:"token"`
	Source  string               `json:"source"`
	Items   []models.DisplayItem `json:"items"`
	Total   int                  `json:"total"`
	Loading bool                 `json:"loading"`
}

// getFilter extracts the table filters from the query string.
func getFilter(r *http.Request) view.Filter {
	q := r.URL.Query()
	return view.Filter{
		Search:  q.Get("search"),
		Type:    q.Get("type"),
		Site:    q.Get("site"),
		Chapter: q.Get("chapter"),
		Sort:    q.Get("sort"),
	}
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	store := s.app.View()
	state := store.Current()
	items := view.Apply(state.Items, getFilter(r))
	RespondWithJSON(w, http.StatusOK, itemsResponse{
		Token:   state.Token,
		Source:  state.Source,
		Items:   items,
		Total:   len(items),
		Loading: store.Loading(),
	})
}

func (s *Server) handleItemOptions(w http.ResponseWriter, r *http.Request) {
	types, sites := view.Options(s.app.View().Current().Items)
	RespondWithJSON(w, http.StatusOK, map[string][]string{
		"types": types,
		"sites": sites,
	})
}

func (s *Server) handleListLoads(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, s.app.Loads().Status())
}
