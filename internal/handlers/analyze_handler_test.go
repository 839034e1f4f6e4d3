package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"smartcv/analyzer/internal/config"
	"smartcv/analyzer/internal/models"
	"smartcv/analyzer/internal/repositories"
	"smartcv/analyzer/internal/services"
)

type stubGemini struct {
	response string
	err      error
}

func (s *stubGemini) GenerateText(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGemini) ModelName() string { return "stub-model" }

const testMaxFileSize = 10 * 1024 * 1024

// validGeminiResponse is what a well-behaved model returns, fences included.
func validGeminiResponse() string {
	return "```json\n" + `{
  "overallScore": 82,
  "clarity": {"score": 80, "feedback": "Readable throughout.", "suggestions": ["Shorten the intro"]},
  "structure": {"score": 85, "feedback": "Sections flow well.", "suggestions": ["Move education lower"]},
  "keywords": {"score": 78, "missing": ["Kubernetes"], "present": ["Go", "PostgreSQL"], "suggestions": ["Mention orchestration tools"]},
  "improvements": ["Add metrics to achievements", "Quantify team size"],
  "strengths": ["Clear chronology", "Relevant stack"],
  "summary": "A solid résumé with room to quantify impact."
}` + "\n```"
}

func sampleResumeText() string {
	return strings.Repeat("Senior software engineer with experience building distributed systems in Go. ", 4)
}

func newTestApp(t *testing.T, gemini services.GeminiService) (*fiber.App, repositories.SessionRepository) {
	t.Helper()

	sessionRepo := repositories.NewSessionRepository()
	storage := services.NewStorageService(t.TempDir(), []string{"pdf", "txt"})
	if err := storage.EnsureUploadDir(); err != nil {
		t.Fatalf("failed to prepare upload dir: %v", err)
	}

	analyzer := services.NewAnalyzerService(
		sessionRepo,
		gemini,
		services.NewPDFParserService(),
		config.AnalysisConfig{MinContentLength: 50, MaxContentLength: 50000, RateLimitPerHour: 10},
	)

	analyzeHandler := NewAnalyzeHandler(storage, analyzer, testMaxFileSize)
	resultHandler := NewResultHandler(sessionRepo)
	reportHandler := NewReportHandler(sessionRepo)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/result/:id", resultHandler.HandleGetResult)
	api.Get("/stats/:id", resultHandler.HandleGetStats)
	api.Get("/report/:id", reportHandler.HandleGetReport)

	return app, sessionRepo
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/api/v1/analyze", &body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func TestHandleAnalyzeAcceptsTextResume(t *testing.T) {
	app, _ := newTestApp(t, &stubGemini{response: validGeminiResponse()})

	resp, err := app.Test(uploadRequest(t, "resume.txt", sampleResumeText()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body models.AnalyzeResponse
	decodeBody(t, resp, &body)

	if body.ID == "" {
		t.Fatalf("expected a session ID in the response")
	}
	if body.Filename != "resume.txt" {
		t.Fatalf("unexpected filename: %q", body.Filename)
	}
	if body.Analysis == nil || body.Analysis.OverallScore != 82 {
		t.Fatalf("unexpected analysis: %+v", body.Analysis)
	}
	if body.Badges.Overall.Level == "" {
		t.Fatalf("expected a classified overall badge")
	}
	if body.Stats.Words == 0 {
		t.Fatalf("expected non-zero content stats")
	}
}

func TestHandleAnalyzeMissingFile(t *testing.T) {
	app, _ := newTestApp(t, &stubGemini{response: validGeminiResponse()})

	req, err := http.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandleAnalyzeRejectsUnsupportedExtension(t *testing.T) {
	app, _ := newTestApp(t, &stubGemini{response: validGeminiResponse()})

	resp, err := app.Test(uploadRequest(t, "resume.docx", sampleResumeText()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if !strings.Contains(body["error"], "unsupported file type") {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestHandleAnalyzeRejectsShortContent(t *testing.T) {
	app, _ := newTestApp(t, &stubGemini{response: validGeminiResponse()})

	resp, err := app.Test(uploadRequest(t, "resume.txt", "Too short to analyze."), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["reason"] != "too short" {
		t.Fatalf("unexpected rejection reason: %q", body["reason"])
	}
}

func TestHandleAnalyzeServiceUnavailable(t *testing.T) {
	gemini := &stubGemini{err: fmt.Errorf("request failed: %w", models.ErrServiceUnavailable)}
	app, _ := newTestApp(t, gemini)

	resp, err := app.Test(uploadRequest(t, "resume.txt", sampleResumeText()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestHandleAnalyzeMalformedModelResponse(t *testing.T) {
	app, _ := newTestApp(t, &stubGemini{response: "this is not JSON at all"})

	resp, err := app.Test(uploadRequest(t, "resume.txt", sampleResumeText()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}

func TestHandleAnalyzeSchemaViolation(t *testing.T) {
	// Valid JSON but the score is out of range.
	response := strings.Replace(validGeminiResponse(), `"overallScore": 82`, `"overallScore": 140`, 1)
	app, _ := newTestApp(t, &stubGemini{response: response})

	resp, err := app.Test(uploadRequest(t, "resume.txt", sampleResumeText()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.StatusCode)
	}
}
