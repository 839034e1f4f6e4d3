package services

import (
	"fmt"
	"regexp"
	"strings"

	"smartcv/analyzer/internal/models"
)

var nonWordCharsRegex = regexp.MustCompile(`[^\w\s]`)

// minTextualChars is the minimum number of word characters that must remain
// after stripping symbols; it guards against documents that are mostly noise.
const minTextualChars = 30

// ValidateContent decides whether normalized résumé text is worth sending for
// analysis. It is a pure predicate: either nil or a ContentRejectedError
// explaining why the text was turned away.
func ValidateContent(content string, minLength, maxLength int) error {
	trimmed := strings.TrimSpace(content)

	if trimmed == "" {
		return &models.ContentRejectedError{Reason: "empty content"}
	}

	if len(trimmed) < minLength {
		return &models.ContentRejectedError{
			Reason: "too short",
			Detail: fmt.Sprintf("minimum %d characters, got %d", minLength, len(trimmed)),
		}
	}

	if len(trimmed) > maxLength {
		return &models.ContentRejectedError{
			Reason: "too long",
			Detail: fmt.Sprintf("maximum %d characters, got %d", maxLength, len(trimmed)),
		}
	}

	textual := strings.TrimSpace(nonWordCharsRegex.ReplaceAllString(content, ""))
	if len(textual) < minTextualChars {
		return &models.ContentRejectedError{
			Reason: "insufficient textual content",
			Detail: fmt.Sprintf("at least %d word characters required", minTextualChars),
		}
	}

	return nil
}
