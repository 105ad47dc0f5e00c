package tracker

import (
	"github.com/vrsandeep/mango-marks/internal/models"
)

// Group buckets entries by cleaned title, keeping first-seen group order
// and input order within each group. Entries whose cleaned title is empty
// never share a group: each one becomes its own singleton.
func Group(entries []models.ClassifiedEntry) []models.Group {
	var groups []models.Group
	index := make(map[string]int)
	for _, e := range entries {
		if e.CleanTitle == "" {
			groups = append(groups, models.Group{Key: "", Entries: []models.ClassifiedEntry{e}})
			continue
		}
		i, ok := index[e.CleanTitle]
		if !ok {
			i = len(groups)
			index[e.CleanTitle] = i
			groups = append(groups, models.Group{Key: e.CleanTitle})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// Reconcile returns a copy of groups in which every entry without a chapter
// borrows the highest chapter found in its group. Entries that already have
// a chapter keep it. Groups with no resolved chapter stay unresolved.
func Reconcile(groups []models.Group) []models.Group {
	out := make([]models.Group, len(groups))
	for gi, g := range groups {
		best := maxChapter(g.Entries)
		entries := make([]models.ClassifiedEntry, len(g.Entries))
		for i, e := range g.Entries {
			if _, ok := ParseChapter(e.Chapter); !ok {
				e.Chapter = best
			}
			entries[i] = e
		}
		out[gi] = models.Group{Key: g.Key, Entries: entries}
	}
	return out
}

// maxChapter returns the chapter string with the largest numeric value, or
// models.NoChapter when none of the entries has one.
func maxChapter(entries []models.ClassifiedEntry) string {
	best := models.NoChapter
	var bestVal float64
	for _, e := range entries {
		v, ok := ParseChapter(e.Chapter)
		if !ok {
			continue
		}
		if best == models.NoChapter || v > bestVal {
			best, bestVal = e.Chapter, v
		}
	}
	return best
}
