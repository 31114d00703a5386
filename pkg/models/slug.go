package models

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe identifier from a recipe title: lowercase,
// punctuation (hyphens included) stripped, whitespace runs collapsed to a
// single underscore, leading/trailing underscores trimmed. Dataset tooling
// uses the result to name recipe files; at runtime the filename stem is
// authoritative and Slugify only backs the loader when a stem is unusable.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(strings.ToLower(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
		// Anything else (punctuation, symbols) is dropped.
	}
	fields := strings.Fields(b.String())
	return strings.Trim(strings.Join(fields, "_"), "_")
}
