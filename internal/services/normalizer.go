package services

import (
	"regexp"
	"strings"
)

var (
	controlCharsRegex = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f--]")
	blankLinesRegex   = regexp.MustCompile(`\n\s*\n`)
	spaceRunsRegex    = regexp.MustCompile(` +`)
)

// NormalizeText cleans raw text extracted from a résumé file. It strips
// control characters, collapses whitespace runs and drops lines shorter than
// 3 characters, which are almost always PDF extraction noise. The function is
// total and idempotent; empty input yields "".
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	text = controlCharsRegex.ReplaceAllString(text, "")
	text = blankLinesRegex.ReplaceAllString(text, "\n\n")
	text = spaceRunsRegex.ReplaceAllString(text, " ")

	var cleanedLines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 2 {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
