// Package util provides shared utility functions for the CLI.
package util

import "strings"

// SanitizeForFilename converts a string to a CLI-safe, filesystem-safe
// name: lowercased, word gaps become single hyphens, anything outside
// [a-z0-9-_] is dropped, and the result never starts or ends with a
// hyphen.
//
// Example: "Systematic Debugging (v2)" → "systematic-debugging-v2"
func SanitizeForFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	gap := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			// A pending gap becomes one hyphen, but never a leading one.
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '\t':
			gap = true
		}
		// Other runes are dropped without opening a gap.
	}
	return b.String()
}
