package models

import "time"

// ScoreBadges groups the presentation info for the four score fields.
type ScoreBadges struct {
	Overall   ScoreBadge `json:"overall"`
	Clarity   ScoreBadge `json:"clarity"`
	Structure ScoreBadge `json:"structure"`
	Keywords  ScoreBadge `json:"keywords"`
}

type AnalyzeResponse struct {
	ID       string          `json:"id"`
	Filename string          `json:"filename"`
	Analysis *AnalysisResult `json:"analysis"`
	Badges   ScoreBadges     `json:"badges"`
	Stats    ContentStats    `json:"stats"`
}

type ResultResponse struct {
	ID        string          `json:"id"`
	Filename  string          `json:"filename"`
	Analysis  *AnalysisResult `json:"analysis"`
	Badges    ScoreBadges     `json:"badges"`
	Stats     ContentStats    `json:"stats"`
	CreatedAt time.Time       `json:"created_at"`
}

type StatsResponse struct {
	ID    string       `json:"id"`
	Stats ContentStats `json:"stats"`
}
