package view

import (
	"sort"
	"strings"

	"github.com/vrsandeep/mango-marks/internal/models"
	"github.com/vrsandeep/mango-marks/internal/tracker"
)

const (
	SortName    = "name"
	SortChapter = "chapter"
)

// Filter narrows the table. Empty fields match everything.
type Filter struct {
	Search  string
	Type    string
	Site    string
	Chapter string
	Sort    string
}

// Apply returns the items matching f. The input slice is not modified.
func Apply(items []models.DisplayItem, f Filter) []models.DisplayItem {
	search := strings.ToLower(f.Search)
	out := make([]models.DisplayItem, 0, len(items))
	for _, item := range items {
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		if f.Type != "" && string(item.Type) != f.Type {
			continue
		}
		if f.Site != "" && item.SiteName != f.Site {
			continue
		}
		if f.Chapter != "" && item.Chapter != f.Chapter {
			continue
		}
		out = append(out, item)
	}

	switch f.Sort {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return naturalLess(out[i].Name, out[j].Name) })
	case SortChapter:
		sort.SliceStable(out, func(i, j int) bool { return chapterLess(out[i].Chapter, out[j].Chapter) })
	}
	return out
}

// chapterLess orders chapters highest first, with unresolved chapters last.
func chapterLess(a, b string) bool {
	va, okA := tracker.ParseChapter(a)
	vb, okB := tracker.ParseChapter(b)
	switch {
	case okA && okB:
		return va > vb
	case okA:
		return true
	default:
		return false
	}
}

// Options returns the distinct non-empty types and site names, in the
// order they first appear.
func Options(items []models.DisplayItem) (types, sites []string) {
	types, sites = []string{}, []string{}
	seenType := make(map[string]bool)
	seenSite := make(map[string]bool)
	for _, item := range items {
		if t := string(item.Type); t != "" && !seenType[t] {
			seenType[t] = true
			types = append(types, t)
		}
		if s := item.SiteName; s != "" && !seenSite[s] {
			seenSite[s] = true
			sites = append(sites, s)
		}
	}
	return types, sites
}
