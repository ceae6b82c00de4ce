// Package filename recognizes and builds the image filename grammar:
//
//	NNN_<BankLabel>_<DocPrefix>_Pregunta_<tag>_<Category>_Pag<page>.<ext>
//
// Parsing is lenient: each metadata field is matched independently and a
// missing field is left empty rather than treated as an error.
package filename

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eduextract/bancoimg/models"
)

var (
	questionRe = regexp.MustCompile(`(?i)Pregunta[_ ](\d+)`)
	typeRe     = regexp.MustCompile(`(?i)(Cientifica)`)
	pageRe     = regexp.MustCompile(`(?i)Pag(\d+)`)
)

// Parse extracts question number, content type and page number from a
// filename (extension already removed). Absent patterns leave the
// corresponding field empty.
func Parse(name string) models.ParsedFilename {
	var parsed models.ParsedFilename

	if m := questionRe.FindStringSubmatch(name); m != nil {
		parsed.Question = m[1]
	}
	if m := typeRe.FindStringSubmatch(name); m != nil {
		parsed.Type = capitalize(m[1])
	}
	if m := pageRe.FindStringSubmatch(name); m != nil {
		parsed.Page = m[1]
	}
	return parsed
}

// Synthesize builds the output filename for one extracted image.
// questionTag is already of the form "Pregunta_<n>" (or the unknown
// sentinel), format is the lowercase extension without a dot.
func Synthesize(seq int, bankLabel, docPrefix, questionTag string, category models.ContentCategory, page int, format string) string {
	return fmt.Sprintf("%03d_%s_%s_%s_%s_Pag%d.%s",
		seq, bankLabel, docPrefix, questionTag, category, page, format)
}

// Rebuild assembles a renamed filename from parsed metadata, skipping the
// parts that were not present in the original name.
func Rebuild(seq int, prefix string, parsed models.ParsedFilename, ext string) string {
	parts := []string{fmt.Sprintf("%03d", seq), prefix}

	if parsed.Question != "" {
		parts = append(parts, "Pregunta_"+parsed.Question)
	}
	if parsed.Type != "" {
		parts = append(parts, parsed.Type)
	}
	if parsed.Page != "" {
		parts = append(parts, "Pag"+parsed.Page)
	}
	return strings.Join(parts, "_") + "." + ext
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
