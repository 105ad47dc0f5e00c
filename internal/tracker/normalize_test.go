package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vrsandeep/mango-marks/internal/models"
)

func TestCleanerClean(t *testing.T) {
	c := NewCleaner(nil)
	tests := []struct {
		in   string
		want string
	}{
		{"Manga: One Piece Chapter 1050 - mangareader", "One Piece"},
		{"One Piece Ch 1049", "One Piece"},
		{"Solo Leveling Chapter 110 | Manhwa Online Free", "Solo Leveling"},
		{"Omniscient Reader's Viewpoint Ch. 150.5 - Nitro Scans", "Omniscient Reader's Viewpoint"},
		{"The Beginning After the End 175", "The Beginning After the End"},
		{"Manga: Berserk", "Berserk"},
		{"manga:   Vagabond", "Vagabond"},
		{"Chainsaw Man Chapter 150 English - 1st Kiss Manga", "Chainsaw Man"},
		{"Lookism - Chapter 480 | Toonily.net", "Lookism"},
		{"Boruto ch.80", "Boruto"},
		{"Kingdom chapter 790 raw", "Kingdom"},
		{"One Piece", "One Piece"},
		// Only the trailing noise segment is popped; inner separators survive.
		{"Tower of God - Chapter break - Webtoons", "Tower of God -  - Webtoons"},
		{"Manhwa", ""},
		{"Chapter 12", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Clean(tt.in))
		})
	}
}

func TestCleanerIdempotent(t *testing.T) {
	c := NewCleaner(nil)
	for _, in := range []string{
		"Manga: One Piece Chapter 1050 - mangareader",
		"Solo Leveling Chapter 110 | Manhwa Online Free",
		"Omniscient Reader's Viewpoint Ch. 150.5 - Nitro Scans",
		"Kingdom chapter 790 raw",
		"Tower of God - 550",
		"One Piece",
	} {
		once := c.Clean(in)
		assert.Equal(t, once, c.Clean(once), "clean(clean(%q))", in)
	}
}

// Stripping one trailing number can expose another, so titles that end in
// a number are not stable under a second pass.
func TestCleanerTrailingNumbers(t *testing.T) {
	c := NewCleaner(nil)
	assert.Equal(t, "Mob Psycho", c.Clean("Mob Psycho 100"))

	tests := []struct {
		in, once, twice string
	}{
		{"Mob Psycho 100 - 5", "Mob Psycho 100", "Mob Psycho"},
		{"Kaiju No. 8 - 100", "Kaiju No. 8", "Kaiju No."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			once := c.Clean(tt.in)
			assert.Equal(t, tt.once, once)
			assert.Equal(t, tt.twice, c.Clean(once))
		})
	}
}

func TestCleanerCustomTokens(t *testing.T) {
	c := NewCleaner([]string{"asura scans"})
	assert.Equal(t, "Solo Leveling", c.Clean("Solo Leveling - Asura Scans"))
	// "manga" is no longer noise with a custom list.
	assert.Equal(t, "Manga Dogs", c.Clean("Manga Dogs"))
	assert.Equal(t, []string{"asura scans"}, c.Tokens())

	none := NewCleaner([]string{})
	assert.Equal(t, "Berserk - mangareader", none.Clean("Berserk - mangareader"))
}

func TestCleanerTokensAreLiteral(t *testing.T) {
	c := NewCleaner([]string{"toonily.net"})
	// The dot must not act as a wildcard.
	assert.Equal(t, "Lookism toonilyXnet", c.Clean("Lookism toonilyXnet"))
	assert.Equal(t, "Lookism", c.Clean("Lookism toonily.net"))
}

func TestExtractChapter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"One Piece Chapter 1050", "1050"},
		{"One Piece 1050", "1050"},
		{"One Piece", models.NoChapter},
		{"One Piece Ch 1049 https://mangareader.to/y", "1049"},
		{"Vol.2 Ch. 2.5", "2.5"},
		{"Boruto ch.80", "80"},
		{"Chapter12.5 read", "12.5"},
		{"Berserk https://mangadex.org/chapter/12", "12"},
		{"Solo Leveling 110   ", "110"},
		{"", models.NoChapter},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractChapter(tt.in))
		})
	}
}

func TestParseChapter(t *testing.T) {
	v, ok := ParseChapter("12.5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	for _, s := range []string{models.NoChapter, "", "abc", "-3", "1e3"} {
		_, ok := ParseChapter(s)
		assert.False(t, ok, s)
	}
}

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	tests := []struct {
		name string
		b    models.Bookmark
		want models.SeriesType
	}{
		{"explicit type wins", models.Bookmark{Title: "Cool Manhwa", Type: "Manga"}, models.Manga},
		{"unknown explicit type is ignored", models.Bookmark{Title: "Cool Manhwa", Type: "comic"}, models.Manhwa},
		{"title keyword", models.Bookmark{Title: "Martial Peak Manhua", URL: "https://x.example"}, models.Manhua},
		{"url keyword", models.Bookmark{Title: "Tower of God", URL: "https://www.webtoons.com/tog"}, models.Manhwa},
		{"manhwa before manga", models.Bookmark{Title: "One Piece manga", URL: "https://webtoons.com"}, models.Manhwa},
		{"manga", models.Bookmark{Title: "One Piece", URL: "https://mangareader.to/x"}, models.Manga},
		{"case insensitive", models.Bookmark{Title: "BERSERK MANGA"}, models.Manga},
		{"unknown", models.Bookmark{Title: "Go docs", URL: "https://go.dev"}, models.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.b))
		})
	}
}

func TestClassifyCustomKeywords(t *testing.T) {
	c := NewClassifier(KeywordSet{Manhwa: []string{"ASURA"}})
	assert.Equal(t, models.Manhwa, c.Classify(models.Bookmark{URL: "https://asura.gg/x"}))
	assert.Equal(t, models.Unknown, c.Classify(models.Bookmark{Title: "One Piece manga"}))
}
