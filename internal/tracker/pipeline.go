package tracker

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/vrsandeep/mango-marks/internal/bookmarks"
	"github.com/vrsandeep/mango-marks/internal/models"
)

// Pipeline runs a bookmark tree through every normalization stage.
type Pipeline struct {
	Classifier *Classifier
	Cleaner    *Cleaner
	Enricher   *Enricher
	// DropUnknown removes entries of unknown type before grouping. When
	// false they are kept and flagged.
	DropUnknown bool
}

// NewPipeline wires a pipeline from its parts. Nil parts get defaults.
func NewPipeline(classifier *Classifier, cleaner *Cleaner, enricher *Enricher, dropUnknown bool) *Pipeline {
	if classifier == nil {
		classifier = NewClassifier(DefaultKeywords())
	}
	if cleaner == nil {
		cleaner = NewCleaner(nil)
	}
	if enricher == nil {
		enricher = NewEnricher(nil)
	}
	return &Pipeline{
		Classifier:  classifier,
		Cleaner:     cleaner,
		Enricher:    enricher,
		DropUnknown: dropUnknown,
	}
}

// Run flattens the tree and produces the table rows, in bookmark order.
func (p *Pipeline) Run(ctx context.Context, nodes []models.RawNode) []models.DisplayItem {
	entries := p.Prepare(bookmarks.Flatten(nodes))
	groups := Reconcile(Group(entries))

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.Key != "" {
			keys = append(keys, g.Key)
		}
	}
	infos := p.Enricher.LookupAll(ctx, keys)

	var resolved []models.ClassifiedEntry
	for _, g := range groups {
		resolved = append(resolved, g.Entries...)
	}
	sort.SliceStable(resolved, func(i, j int) bool { return resolved[i].Seq < resolved[j].Seq })

	items := make([]models.DisplayItem, 0, len(resolved))
	for _, e := range resolved {
		info, ok := infos[e.CleanTitle]
		if !ok {
			info = models.FallbackSeriesInfo()
		}
		items = append(items, project(e, info))
	}
	return items
}

// Prepare classifies, cleans and extracts the chapter of each bookmark,
// dropping unknown types when configured to.
func (p *Pipeline) Prepare(list []models.Bookmark) []models.ClassifiedEntry {
	entries := make([]models.ClassifiedEntry, 0, len(list))
	for i, b := range list {
		t := p.Classifier.Classify(b)
		if t == models.Unknown && p.DropUnknown {
			continue
		}
		chapter := ExtractChapter(b.Title + " " + b.URL)
		if chapter == models.NoChapter {
			if _, ok := ParseChapter(b.Chapter); ok {
				chapter = b.Chapter
			}
		}
		entries = append(entries, models.ClassifiedEntry{
			Bookmark:   b,
			Seq:        i,
			SeriesType: t,
			CleanTitle: p.Cleaner.Clean(b.Title),
			Chapter:    chapter,
		})
	}
	return entries
}

func project(e models.ClassifiedEntry, info models.SeriesInfo) models.DisplayItem {
	name := e.CleanTitle
	if name == "" {
		name = strings.TrimSpace(e.Title)
	}

	t := info.Subtype
	if t == models.Unknown {
		t = e.SeriesType
	}

	portrait := info.Cover
	if portrait == "" {
		portrait = models.DefaultPortrait
	}

	site := SiteName(e.URL)
	return models.DisplayItem{
		ID:       e.ID,
		Name:     name,
		Chapter:  e.Chapter,
		Portrait: portrait,
		Site:     site,
		Type:     t,
		SiteName: site,
		URL:      e.URL,
		Flagged:  e.SeriesType == models.Unknown,
	}
}

// SiteName returns the URL's host without a leading "www.", or the raw
// string when it is not an absolute URL.
func SiteName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
