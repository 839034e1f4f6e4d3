package services

import (
	"regexp"
	"strings"

	"smartcv/analyzer/internal/models"
)

var sentenceEndRegex = regexp.MustCompile(`[.!?]+`)

const readingWordsPerMinute = 200

// ComputeContentStats derives read-only statistics from the current résumé
// text. Nothing is cached; callers recompute per document.
func ComputeContentStats(content string) models.ContentStats {
	if content == "" {
		return models.ContentStats{}
	}

	words := strings.Fields(content)

	sentences := 0
	for _, s := range sentenceEndRegex.Split(content, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	paragraphs := 0
	for _, p := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	avgWords := 0.0
	if sentences > 0 {
		avgWords = float64(len(words)) / float64(sentences)
	} else {
		avgWords = float64(len(words))
	}

	readingTime := len(words) / readingWordsPerMinute
	if readingTime < 1 {
		readingTime = 1
	}

	return models.ContentStats{
		Characters:          len(content),
		CharactersNoSpaces:  len(strings.ReplaceAll(content, " ", "")),
		Words:               len(words),
		Sentences:           sentences,
		Paragraphs:          paragraphs,
		AvgWordsPerSentence: avgWords,
		ReadingTimeMinutes:  readingTime,
	}
}
