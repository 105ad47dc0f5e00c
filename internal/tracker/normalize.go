package tracker

import (
	"regexp"
	"strings"
)

// DefaultNoiseTokens are site names, scanlation groups and marketing
// phrases that commonly pollute bookmark titles.
var DefaultNoiseTokens = []string{
	"night comic", "1st kiss manga", "manga english", "new chapters", "online free",
	"manhwa", "manhua", "manga galaxy", "manga", "toonily.net", "manga tx", "manga online team",
	"nitro scans", "eng-li",
}

var (
	mangaPrefixRegex   = regexp.MustCompile(`(?i)^Manga:\s*`)
	chapterMarkerRegex = regexp.MustCompile(`(?i)ch(?:apter)?[^\w\d]*\d+([^\w\d-]\w+)*[^\w\d-]*`)
	chapterBreakRegex  = regexp.MustCompile(`(?i)Chapter break`)
	separatorRegex     = regexp.MustCompile(`[-|]`)
	trailingNumRegex   = regexp.MustCompile(`\d+(\.\d+)?$`)
	trailingDashRegex  = regexp.MustCompile(`[-\s]+$`)
)

// Cleaner reduces a noisy bookmark title to a canonical series name.
type Cleaner struct {
	tokens  []string // lower-cased
	removal []*regexp.Regexp
}

// NewCleaner builds a cleaner for the given noise tokens. A nil slice uses
// DefaultNoiseTokens; an empty non-nil slice disables token removal.
func NewCleaner(tokens []string) *Cleaner {
	if tokens == nil {
		tokens = DefaultNoiseTokens
	}
	c := &Cleaner{}
	for _, t := range tokens {
		if t == "" {
			continue
		}
		c.tokens = append(c.tokens, strings.ToLower(t))
		c.removal = append(c.removal, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(t)))
	}
	return c
}

// Tokens returns the noise tokens in use.
func (c *Cleaner) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

// Clean applies the title heuristics in a fixed order; reordering the steps
// changes the output. It may return an empty string.
func (c *Cleaner) Clean(raw string) string {
	title := mangaPrefixRegex.ReplaceAllString(raw, "")
	title = chapterMarkerRegex.ReplaceAllString(title, "")
	title = chapterBreakRegex.ReplaceAllString(title, "")

	parts := separatorRegex.Split(title, -1)
	for len(parts) > 1 && c.isNoise(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	title = strings.TrimSpace(strings.Join(parts, "-"))

	for _, re := range c.removal {
		title = re.ReplaceAllString(title, "")
	}

	title = trailingNumRegex.ReplaceAllString(title, "")
	title = trailingDashRegex.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// isNoise reports whether segment contains any noise token.
func (c *Cleaner) isNoise(segment string) bool {
	lower := strings.ToLower(segment)
	for _, t := range c.tokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
