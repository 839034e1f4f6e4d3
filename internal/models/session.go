package models

import (
	"time"

	"github.com/google/uuid"
)

// Session owns the outcome of one analysis request. The analysis result is
// immutable after validation; the session only ever reads it.
type Session struct {
	ID        uuid.UUID       `json:"id"`
	Filename  string          `json:"filename"`
	Analysis  *AnalysisResult `json:"analysis"`
	Stats     ContentStats    `json:"stats"`
	CreatedAt time.Time       `json:"created_at"`
}
