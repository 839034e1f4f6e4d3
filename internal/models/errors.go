package models

import (
	"errors"
	"fmt"
)

// ErrServiceUnavailable is returned when the Gemini API cannot be reached or
// refuses the request (network, auth, quota).
var ErrServiceUnavailable = errors.New("analysis service unavailable")

// ExtractionError reports a whole-document text extraction failure.
// Per-page failures are skipped and never surface as this error.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ContentRejectedError means the résumé text failed content validation and
// was never sent for analysis.
type ContentRejectedError struct {
	Reason string
	Detail string
}

func (e *ContentRejectedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("content rejected: %s (%s)", e.Reason, e.Detail)
	}
	return fmt.Sprintf("content rejected: %s", e.Reason)
}

// MalformedResponseError means the Gemini reply was not valid JSON. Excerpt
// carries the first 500 characters of the offending text for diagnostics.
type MalformedResponseError struct {
	Cause   string
	Excerpt string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed analysis response: %s", e.Cause)
}

// SchemaViolationError means the reply parsed as JSON but does not match the
// required analysis shape. Detail names the first offending key or field.
type SchemaViolationError struct {
	Detail string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation: %s", e.Detail)
}
