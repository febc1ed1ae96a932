// Package trigger compiles the skill registry's keyword table into the
// regular-expression triggers the matcher runs against free-text prompts.
//
// One pattern is compiled per (concept, language) pair. The compilation rules
// differ by language family: English and Spanish patterns carry word-boundary
// anchors, while Korean, Japanese, and Chinese patterns match as plain
// substrings because those scripts do not mark lexical boundaries in a way
// ASCII \b understands.
package trigger

import (
	"regexp"
	"strings"

	"github.com/skillscout/cli/internal/registry"
)

// Pattern is one compiled (concept, language) matcher. ID identifies the
// pattern in recommendation output as "concept/lang".
type Pattern struct {
	ID string
	re *regexp.Regexp
}

// Matches reports whether the pattern matches anywhere in text.
func (p Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

// Compile turns one keyword list into a single case-insensitive pattern.
// Returns false when the list is empty (a concept with no keywords for this
// language produces no pattern, not an empty one).
//
// Every keyword is escaped literally; whitespace runs inside a multi-word
// keyword become \s+ so "not working" also matches "not  working".
func Compile(keywords []string, lang registry.Language) (*regexp.Regexp, bool) {
	bounded := lang.SpaceDelimited()
	alts := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		words := strings.Fields(kw)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alt := strings.Join(words, `\s+`)
		if bounded {
			// \b only matches at a word/non-word transition, so a keyword
			// edge that is itself a non-word rune (the "+" in "c++") gets
			// no anchor on that side or it could never match before a
			// space.
			runes := []rune(kw)
			if isWordRune(runes[0]) {
				alt = `\b` + alt
			}
			if isWordRune(runes[len(runes)-1]) {
				alt += `\b`
			}
		}
		alts = append(alts, alt)
	}
	if len(alts) == 0 {
		return nil, false
	}

	// All metacharacters are quoted above, so compilation cannot fail.
	return regexp.MustCompile(`(?i)(?:` + strings.Join(alts, "|") + `)`), true
}

// isWordRune mirrors RE2's \b word-character class, which is ASCII-only.
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
