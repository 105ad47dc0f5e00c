package tracker

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vrsandeep/mango-marks/internal/models"
)

var (
	chapterRegex        = regexp.MustCompile(`(?i)ch(?:apter)?\.?\s?(\d+(?:\.\d+)?)`)
	trailingNumberRegex = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*$`)
	chapterValueRegex   = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// ExtractChapter finds a chapter number in free text. A "ch"/"chapter"
// marker wins over a bare trailing number; without either it returns
// models.NoChapter.
func ExtractChapter(text string) string {
	if m := chapterRegex.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := trailingNumberRegex.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		return m[1]
	}
	return models.NoChapter
}

// ParseChapter converts a chapter string to a number. The NoChapter
// sentinel and anything unparsable report ok=false.
func ParseChapter(s string) (float64, bool) {
	if !chapterValueRegex.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
