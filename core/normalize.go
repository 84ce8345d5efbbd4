// Place for pure domain logic (no Gin/GORM/Redis), easy to unit test.
package core

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Placeholder is the cell value spreadsheets use for "nothing here".
const Placeholder = "-"

// Casing follows Spanish rules; the source lists are Spanish names and labels.
var casingTag = language.Spanish

// TitleCase splits s on whitespace runs and hyphens and capitalizes each part:
// first rune title-cased, the rest lower-cased. Words are re-joined with one space.
//
//	TitleCase("MARÍA-JOSÉ  de la cruz") == "María-José De La Cruz"
func TitleCase(s string) string {
	// Casers keep state, so every call gets its own pair.
	title := cases.Title(casingTag)
	lower := cases.Lower(casingTag)

	words := strings.Fields(s)
	for i, w := range words {
		parts := strings.Split(w, "-")
		for j, p := range parts {
			if p == "" {
				continue
			}
			_, size := utf8.DecodeRuneInString(p)
			// a title-cased rune may expand ("ŉ" -> "ʼN"); only its first rune stays upper
			head := title.String(p[:size])
			_, hsize := utf8.DecodeRuneInString(head)
			parts[j] = head[:hsize] + lower.String(head[hsize:]+p[size:])
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}

// CleanField trims s, maps blank or "-" to "" and title-cases everything else.
func CleanField(s string) string {
	t := blankCell(s)
	if t == "" {
		return ""
	}
	return TitleCase(t)
}

// blankCell trims and maps the placeholder to "".
func blankCell(s string) string {
	t := strings.TrimSpace(s)
	if t == Placeholder {
		return ""
	}
	return t
}

// lowerKey lower-cases with the same locale used for title casing.
func lowerKey(s string) string {
	return cases.Lower(casingTag).String(s)
}

// FoldKey builds an accent-insensitive, lower-case search key:
// "José Núñez" -> "jose nunez".
func FoldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return lowerKey(out)
}
