// Package tracker implements the bookmark normalization pipeline: it
// classifies bookmarks, cleans their titles into series names, extracts
// chapter numbers, reconciles duplicates and enriches the result with
// cover art from a metadata provider.
package tracker

import (
	"strings"

	"github.com/vrsandeep/mango-marks/internal/models"
)

// KeywordSet lists the substrings that identify each series type. They are
// checked in the order Manhwa, Manhua, Manga.
type KeywordSet struct {
	Manhwa []string `mapstructure:"manhwa"`
	Manhua []string `mapstructure:"manhua"`
	Manga  []string `mapstructure:"manga"`
}

// DefaultKeywords returns the keyword set used when none is configured.
func DefaultKeywords() KeywordSet {
	return KeywordSet{
		Manhwa: []string{"manhwa", "webtoons"},
		Manhua: []string{"manhua"},
		Manga:  []string{"manga"},
	}
}

// Classifier maps bookmarks to a series type.
type Classifier struct {
	Keywords KeywordSet
}

// NewClassifier creates a classifier; an empty keyword set falls back to
// the defaults.
func NewClassifier(keywords KeywordSet) *Classifier {
	if len(keywords.Manhwa) == 0 && len(keywords.Manhua) == 0 && len(keywords.Manga) == 0 {
		keywords = DefaultKeywords()
	}
	return &Classifier{Keywords: lowerKeywords(keywords)}
}

// Classify returns the bookmark's explicit type when it names a known type.
// Otherwise each type's keywords are tried against the lower-cased title and
// then the lower-cased URL; the first type with a hit wins.
func (c *Classifier) Classify(b models.Bookmark) models.SeriesType {
	if t := models.ParseSeriesType(b.Type); t != models.Unknown {
		return t
	}
	title, url := strings.ToLower(b.Title), strings.ToLower(b.URL)
	switch {
	case containsAny(c.Keywords.Manhwa, title, url):
		return models.Manhwa
	case containsAny(c.Keywords.Manhua, title, url):
		return models.Manhua
	case containsAny(c.Keywords.Manga, title, url):
		return models.Manga
	}
	return models.Unknown
}

func containsAny(keywords []string, texts ...string) bool {
	for _, text := range texts {
		for _, k := range keywords {
			if k != "" && strings.Contains(text, k) {
				return true
			}
		}
	}
	return false
}

func lowerKeywords(k KeywordSet) KeywordSet {
	lower := func(in []string) []string {
		out := make([]string, len(in))
		for i, s := range in {
			out[i] = strings.ToLower(s)
		}
		return out
	}
	return KeywordSet{Manhwa: lower(k.Manhwa), Manhua: lower(k.Manhua), Manga: lower(k.Manga)}
}
