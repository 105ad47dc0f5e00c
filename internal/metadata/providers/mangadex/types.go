package mangadex

// --- Common Types ---
type Relationship struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes struct {
		FileName string `json:"fileName"`
	} `json:"attributes"`
}

type MultiLingualString map[string]string

func (mls MultiLingualString) Get(lang string) string {
	if val, ok := mls[lang]; ok {
		return val
	}
	return ""
}

// --- Manga Search Types ---
type MangaListResponse struct {
	Data []MangaData `json:"data"`
}
type MangaData struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Attributes    MangaAttributes `json:"attributes"`
	Relationships []Relationship  `json:"relationships"`
}
type MangaAttributes struct {
	Title            MultiLingualString   `json:"title"`
	AltTitles        []MultiLingualString `json:"altTitles"`
	OriginalLanguage string               `json:"originalLanguage"`
}
