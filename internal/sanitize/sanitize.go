// Package sanitize derives compact, filesystem-safe tokens from free-text
// names (document titles, folder names, question-bank labels). Tokens are
// used as filename components, so they are bounded in length and contain
// only letters, digits and capitalized word boundaries.
package sanitize

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DocPrefixMaxLen bounds the token derived from a source document name.
	DocPrefixMaxLen = 20
	// BankLabelMaxLen bounds the question-bank label token.
	BankLabelMaxLen = 15

	// FallbackDocPrefix is returned when a document name cleans to nothing.
	FallbackDocPrefix = "PDF"
	// FallbackBankLabel is returned when a bank label cleans to nothing.
	FallbackBankLabel = "BancoPreguntas"
	// FallbackFolderPrefix is returned when a folder name cleans to nothing.
	FallbackFolderPrefix = "Carpeta"
)

var (
	disallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s-]+`)
	separators = regexp.MustCompile(`[\s_-]+`)

	// foldDiacritics strips combining marks so "Sesión" becomes "Sesion"
	// before the character-class filter runs.
	foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// words cleans a free-text string down to its word fragments: diacritics
// folded, disallowed characters removed, runs of whitespace/hyphen/underscore
// treated as a single separator. Empty fragments are dropped.
func words(s string) []string {
	if folded, _, err := transform.String(foldDiacritics, s); err == nil {
		s = folded
	}
	s = disallowed.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "_")

	var out []string
	for _, w := range strings.Split(s, "_") {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// capitalize uppercases the first rune and lowercases the remainder.
func capitalize(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return ""
	}
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}

// camel joins word fragments into a single CamelCase token.
func camel(ws []string) string {
	var b strings.Builder
	for _, w := range ws {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// truncate hard-limits a token to limit runes.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit])
	}
	return s
}

// Token cleans s into a CamelCase token of at most limit runes,
// hard-truncating when necessary. It never returns an empty string:
// when s cleans to nothing, fallback is returned. Deterministic for a
// given input and limit.
func Token(s string, limit int, fallback string) string {
	token := truncate(camel(words(s)), limit)
	if token == "" {
		return fallback
	}
	return token
}

// abbreviate shortens an over-long token by abbreviating its source words:
// only words longer than 3 runes count; up to 3 of them contribute their
// first 4 capitalized runes, more than 3 means the first 4 words contribute
// 3 runes each. Returns "" when no word qualifies.
func abbreviate(ws []string) string {
	var important []string
	for _, w := range ws {
		if len([]rune(w)) > 3 {
			important = append(important, w)
		}
	}
	if len(important) == 0 {
		return ""
	}

	var b strings.Builder
	if len(important) <= 3 {
		for _, w := range important {
			b.WriteString(truncate(capitalize(w), 4))
		}
	} else {
		for _, w := range important[:4] {
			b.WriteString(truncate(capitalize(w), 3))
		}
	}
	return b.String()
}

// DocPrefix derives the document-prefix token from a source file path.
// The base name (extension removed) is cleaned and camel-cased; when the
// result exceeds DocPrefixMaxLen an abbreviation of the significant words
// is preferred over blind truncation.
func DocPrefix(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	ws := words(base)
	token := camel(ws)
	if len([]rune(token)) > DocPrefixMaxLen {
		if abbr := abbreviate(ws); abbr != "" {
			token = abbr
		}
		token = truncate(token, DocPrefixMaxLen)
	}
	if token == "" {
		return FallbackDocPrefix
	}
	return token
}

// BankLabel derives the question-bank label token. Unlike DocPrefix there
// is no abbreviation step, just a hard truncation.
func BankLabel(s string) string {
	return Token(s, BankLabelMaxLen, FallbackBankLabel)
}

// FolderPrefix derives a prefix token from a folder path, for batch renames.
func FolderPrefix(path string) string {
	return Token(filepath.Base(filepath.Clean(path)), DocPrefixMaxLen, FallbackFolderPrefix)
}
