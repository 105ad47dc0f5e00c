// This file defines the core data structures (models) for the tracker.
// They describe a bookmark as it moves from the raw browser tree to a
// row in the dashboard table.

package models

import "strings"

// SeriesType is the coarse content classification of a series.
type SeriesType string

const (
	Manga   SeriesType = "Manga"
	Manhwa  SeriesType = "Manhwa"
	Manhua  SeriesType = "Manhua"
	Unknown SeriesType = "Unknown"
)

// ParseSeriesType maps a case-insensitive type name to a SeriesType.
// Anything that is not one of the three known types is Unknown.
func ParseSeriesType(s string) SeriesType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manga":
		return Manga
	case "manhwa":
		return Manhwa
	case "manhua":
		return Manhua
	default:
		return Unknown
	}
}

// DefaultPortrait is served when no cover art could be resolved.
const DefaultPortrait = "/default-portrait.jpg"

// NoChapter marks an entry without a resolved chapter number.
const NoChapter = "-"

// RawNode is a single node of the bookmark tree supplied by the browser.
// Title and URL are pointers so a missing field is distinguishable from
// an empty one.
type RawNode struct {
	ID       string    `json:"id,omitempty"`
	Title    *string   `json:"title,omitempty"`
	URL      *string   `json:"url,omitempty"`
	Chapter  string    `json:"chapter,omitempty"`
	Portrait string    `json:"portrait,omitempty"`
	Type     string    `json:"type,omitempty"`
	Children []RawNode `json:"children,omitempty"`
}

// Bookmark is a flattened leaf of the bookmark tree.
type Bookmark struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Chapter  string `json:"chapter,omitempty"`
	Portrait string `json:"portrait,omitempty"`
	Type     string `json:"type,omitempty"`
}

// ClassifiedEntry is a bookmark after classification, title cleaning
// and chapter extraction.
type ClassifiedEntry struct {
	Bookmark
	Seq        int        `json:"seq"` // position in the flattened list
	SeriesType SeriesType `json:"series_type"`
	CleanTitle string     `json:"clean_title"`
	Chapter    string     `json:"chapter"`
}

// Group holds every entry sharing the same cleaned title, in input order.
type Group struct {
	Key     string            `json:"key"`
	Entries []ClassifiedEntry `json:"entries"`
}

// DisplayItem is the final projection consumed by the table.
type DisplayItem struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Chapter  string     `json:"chapter"`
	Portrait string     `json:"portrait"`
	Site     string     `json:"site"`
	Type     SeriesType `json:"type"`
	SiteName string     `json:"siteName"`
	URL      string     `json:"url"`
	Flagged  bool       `json:"flagged,omitempty"` // type could not be detected
}

// StringPtr is a small helper for building RawNode values.
func StringPtr(s string) *string {
	return &s
}
