package view

import (
	"regexp"
	"strings"
)

var tokenizer = regexp.MustCompile(`(\d+|\D+)`)

type naturalSortToken struct {
	str   string
	isNum bool
}

func tokenize(s string) []naturalSortToken {
	parts := tokenizer.FindAllString(s, -1)
	tokens := make([]naturalSortToken, len(parts))
	for i, p := range parts {
		if p[0] >= '0' && p[0] <= '9' {
			// Compared by length then digits, so long runs never overflow.
			tokens[i] = naturalSortToken{str: strings.TrimLeft(p, "0"), isNum: true}
		} else {
			tokens[i] = naturalSortToken{str: strings.ToLower(p)}
		}
	}
	return tokens
}

// naturalLess compares two names so that "Vol 2" sorts before "Vol 10".
func naturalLess(s1, s2 string) bool {
	t1 := tokenize(s1)
	t2 := tokenize(s2)
	minLen := min(len(t1), len(t2))

	for i := 0; i < minLen; i++ {
		// If one is a number and the other isn't, the number comes first.
		if t1[i].isNum != t2[i].isNum {
			return t1[i].isNum
		}
		a, b := t1[i].str, t2[i].str
		if t1[i].isNum && len(a) != len(b) {
			return len(a) < len(b)
		}
		if a != b {
			return a < b
		}
	}

	// If all tokens so far are equal, the shorter string comes first.
	return len(t1) < len(t2)
}
