package kitsu

// --- Manga Search Types ---
type MangaListResponse struct {
	Data []MangaData `json:"data"`
}

type MangaData struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes MangaAttributes `json:"attributes"`
}

type MangaAttributes struct {
	CanonicalTitle    string            `json:"canonicalTitle"`
	Titles            map[string]string `json:"titles"`
	AbbreviatedTitles []string          `json:"abbreviatedTitles"`
	Subtype           string            `json:"subtype"`
	PosterImage       *PosterImage      `json:"posterImage"`
}

type PosterImage struct {
	Tiny     string `json:"tiny"`
	Small    string `json:"small"`
	Medium   string `json:"medium"`
	Large    string `json:"large"`
	Original string `json:"original"`
}
