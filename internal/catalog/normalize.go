package catalog

import (
	"strings"
	"unicode"
)

// NormalizeName lowercases s and drops everything except letters and digits,
// so "Meta Platforms, Inc." and "metaplatformsinc" compare equal.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// nameWords splits s into lowercase runs of letters and digits.
func nameWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsWordRun reports whether key is the concatenation of one or more
// consecutive words, so "meta" matches "Meta Platforms" but not "Metabase".
func containsWordRun(words []string, key string) bool {
	if key == "" {
		return false
	}
	for start := range words {
		joined := ""
		for _, w := range words[start:] {
			joined += w
			if joined == key {
				return true
			}
			if !strings.HasPrefix(key, joined) {
				break
			}
		}
	}
	return false
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
