// Package classify assigns a question tag and a content category to an
// image from the text found around it. Both are heuristics tuned to the
// question-bank document family: they are intentionally imprecise, and a
// wrong-but-plausible answer is preferred over no answer.
package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// UnknownQuestion is the sentinel tag used when no heuristic produces a
// question number. It is a designed fallback, not an error.
const UnknownQuestion = "Pregunta_Desconocida"

// questionRule is one step of the identification cascade: a pattern plus
// the capture group holding the question number.
type questionRule struct {
	pattern *regexp.Regexp
	group   int
}

// questionRules is evaluated in fixed priority order, most specific
// first. Every rule prefers the last match in the text, on the
// assumption that later mentions sit closer to the image in reading
// order.
var questionRules = []questionRule{
	// Section numbering followed by the question header: "1.21 Pregunta 21".
	{regexp.MustCompile(`(?i)\d+\.(\d+)\s+Pregunta\s+(\d+)`), 2},
	// Plain header: "Pregunta 21".
	{regexp.MustCompile(`(?i)Pregunta\s+(\d+)`), 1},
	// Stray number before the header: "21 Pregunta 21".
	{regexp.MustCompile(`(?i)(\d+)\s+Pregunta\s+(\d+)`), 2},
	// Header with missing or collapsed whitespace: "Pregunta21".
	{regexp.MustCompile(`(?i)Pregunta\s*(\d+)`), 1},
}

var (
	lineQuestionRe  = regexp.MustCompile(`(?i)Pregunta\s+(\d+)`)
	lineNumberingRe = regexp.MustCompile(`1\.(\d+)`)
	smallNumberRe   = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// IdentifyQuestion determines which question the surrounding text refers
// to. The result is always "Pregunta_<n>" or UnknownQuestion. The final
// numeric fallback picks the last 1–2 digit number in [1, 50] found
// anywhere in the text; false positives from unrelated numbers are an
// accepted trade-off of that stage.
func IdentifyQuestion(text string) string {
	for _, rule := range questionRules {
		matches := rule.pattern.FindAllStringSubmatch(text, -1)
		if len(matches) > 0 {
			return "Pregunta_" + matches[len(matches)-1][rule.group]
		}
	}

	// Line-by-line scan for headers the flat patterns missed.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "Pregunta") {
			if m := lineQuestionRe.FindStringSubmatch(line); m != nil {
				return "Pregunta_" + m[1]
			}
		}
		// "1.<n>" line numbering convention of this document family.
		if m := lineNumberingRe.FindStringSubmatch(line); m != nil {
			return "Pregunta_" + m[1]
		}
	}

	// Best-effort guess: the last small number that could plausibly be a
	// question number.
	var last string
	for _, m := range smallNumberRe.FindAllString(text, -1) {
		n, err := strconv.Atoi(m)
		if err == nil && n >= 1 && n <= 50 {
			last = m
		}
	}
	if last != "" {
		return "Pregunta_" + last
	}

	return UnknownQuestion
}
