package models

// AnalysisResult is the validated evaluation of a single résumé. It is built
// once by the response parser and never mutated afterwards.
type AnalysisResult struct {
	OverallScore float64           `json:"overallScore"`
	Clarity      DimensionFeedback `json:"clarity"`
	Structure    DimensionFeedback `json:"structure"`
	Keywords     KeywordAnalysis   `json:"keywords"`
	Improvements []string          `json:"improvements"`
	Strengths    []string          `json:"strengths"`
	Summary      string            `json:"summary"`
}

// DimensionFeedback holds the score and feedback for a single evaluation
// dimension (clarity, structure).
type DimensionFeedback struct {
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

type KeywordAnalysis struct {
	Score       float64  `json:"score"`
	Missing     []string `json:"missing"`
	Present     []string `json:"present"`
	Suggestions []string `json:"suggestions"`
}

// ScoreBadge describes how a numeric score should be presented.
type ScoreBadge struct {
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
	Level       string `json:"level"`
	Class       string `json:"class"`
	Description string `json:"description"`
}

// ContentStats are derived from the normalized résumé text on demand.
type ContentStats struct {
	Characters          int     `json:"characters"`
	CharactersNoSpaces  int     `json:"characters_no_spaces"`
	Words               int     `json:"words"`
	Sentences           int     `json:"sentences"`
	Paragraphs          int     `json:"paragraphs"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	ReadingTimeMinutes  int     `json:"reading_time_minutes"`
}
