package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"smartcv/analyzer/internal/models"
)

const responseExcerptLimit = 500

var analysisRequiredKeys = []string{
	"overallScore", "clarity", "structure", "keywords", "improvements", "strengths", "summary",
}

var analysisScoreFields = []string{
	"overallScore", "clarity.score", "structure.score", "keywords.score",
}

var analysisArrayFields = []string{
	"improvements", "strengths",
	"clarity.suggestions", "structure.suggestions",
	"keywords.suggestions", "keywords.missing", "keywords.present",
}

// ParseAnalysisResponse turns a raw Gemini reply into a validated
// AnalysisResult. All checks run in a fixed order and the first failure
// rejects the whole response; partial results are never returned.
func ParseAnalysisResponse(raw string) (*models.AnalysisResult, error) {
	clean := stripCodeFence(raw)

	var doc map[string]any
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, &models.MalformedResponseError{
			Cause:   err.Error(),
			Excerpt: excerpt(clean, responseExcerptLimit),
		}
	}

	for _, key := range analysisRequiredKeys {
		if _, ok := doc[key]; !ok {
			return nil, &models.SchemaViolationError{Detail: "missing key: " + key}
		}
	}

	for _, section := range []string{"clarity", "structure"} {
		obj, ok := doc[section].(map[string]any)
		if !ok {
			return nil, &models.SchemaViolationError{Detail: fmt.Sprintf("field %s must be an object", section)}
		}
		for _, subKey := range []string{"score", "feedback", "suggestions"} {
			if _, ok := obj[subKey]; !ok {
				return nil, &models.SchemaViolationError{Detail: fmt.Sprintf("missing key: %s.%s", section, subKey)}
			}
		}
	}

	keywords, ok := doc["keywords"].(map[string]any)
	if !ok {
		return nil, &models.SchemaViolationError{Detail: "field keywords must be an object"}
	}
	for _, subKey := range []string{"score", "missing", "present", "suggestions"} {
		if _, ok := keywords[subKey]; !ok {
			return nil, &models.SchemaViolationError{Detail: "missing key: keywords." + subKey}
		}
	}

	for _, field := range analysisScoreFields {
		score, ok := lookupField(doc, field).(float64)
		if !ok || score < 0 || score > 100 {
			return nil, &models.SchemaViolationError{
				Detail: fmt.Sprintf("field %s out of range or non-numeric", field),
			}
		}
	}

	for _, field := range analysisArrayFields {
		if _, ok := lookupField(doc, field).([]any); !ok {
			return nil, &models.SchemaViolationError{
				Detail: fmt.Sprintf("field %s must be an array", field),
			}
		}
	}

	clarity := doc["clarity"].(map[string]any)
	structure := doc["structure"].(map[string]any)

	return &models.AnalysisResult{
		OverallScore: doc["overallScore"].(float64),
		Clarity: models.DimensionFeedback{
			Score:       clarity["score"].(float64),
			Feedback:    stringValue(clarity["feedback"]),
			Suggestions: stringItems(clarity["suggestions"].([]any)),
		},
		Structure: models.DimensionFeedback{
			Score:       structure["score"].(float64),
			Feedback:    stringValue(structure["feedback"]),
			Suggestions: stringItems(structure["suggestions"].([]any)),
		},
		Keywords: models.KeywordAnalysis{
			Score:       keywords["score"].(float64),
			Missing:     stringItems(keywords["missing"].([]any)),
			Present:     stringItems(keywords["present"].([]any)),
			Suggestions: stringItems(keywords["suggestions"].([]any)),
		},
		Improvements: stringItems(doc["improvements"].([]any)),
		Strengths:    stringItems(doc["strengths"].([]any)),
		Summary:      stringValue(doc["summary"]),
	}, nil
}

// stripCodeFence removes a leading "```json" marker and a trailing "```"
// marker. It only matches at the very start and end of the text; fences in
// the middle are left alone.
func stripCodeFence(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// lookupField resolves a dotted path ("clarity.score") against the parsed
// document. Paths are at most one level deep.
func lookupField(doc map[string]any, field string) any {
	if section, key, ok := strings.Cut(field, "."); ok {
		obj, isObj := doc[section].(map[string]any)
		if !isObj {
			return nil
		}
		return obj[key]
	}
	return doc[field]
}

// stringItems converts array entries to strings. Element types are not
// validated upstream, so anything non-string is formatted as-is.
func stringItems(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringValue(item))
	}
	return out
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func excerpt(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
