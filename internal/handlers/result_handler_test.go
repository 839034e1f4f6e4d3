package handlers

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartcv/analyzer/internal/models"
	"smartcv/analyzer/internal/repositories"
)

func seedSession(t *testing.T, repo repositories.SessionRepository) *models.Session {
	t.Helper()

	session := &models.Session{
		ID:       uuid.New(),
		Filename: "resume.pdf",
		Analysis: &models.AnalysisResult{
			OverallScore: 91,
			Clarity: models.DimensionFeedback{
				Score:       88,
				Feedback:    "Easy to follow.",
				Suggestions: []string{"Trim the objective"},
			},
			Structure: models.DimensionFeedback{
				Score:       92,
				Feedback:    "Well organized.",
				Suggestions: []string{},
			},
			Keywords: models.KeywordAnalysis{
				Score:       85,
				Missing:     []string{"Terraform"},
				Present:     []string{"Go"},
				Suggestions: []string{"Add infrastructure keywords"},
			},
			Improvements: []string{"Quantify outcomes"},
			Strengths:    []string{"Strong project history"},
			Summary:      "An excellent résumé overall.",
		},
		Stats: models.ContentStats{
			Characters: 1200,
			Words:      220,
			Sentences:  18,
		},
		CreatedAt: time.Now(),
	}

	if err := repo.Create(session); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	return session
}

func getRequest(t *testing.T, path string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	return req
}

func TestHandleGetResult(t *testing.T) {
	app, repo := newTestApp(t, &stubGemini{})
	session := seedSession(t, repo)

	resp, err := app.Test(getRequest(t, "/api/v1/result/"+session.ID.String()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body models.ResultResponse
	decodeBody(t, resp, &body)
	if body.ID != session.ID.String() {
		t.Fatalf("unexpected ID: %q", body.ID)
	}
	if body.Analysis.OverallScore != 91 {
		t.Fatalf("unexpected overall score: %v", body.Analysis.OverallScore)
	}
	if body.Badges.Overall.Level != "Excellent" {
		t.Fatalf("unexpected overall badge level: %q", body.Badges.Overall.Level)
	}
}

func TestHandleGetResultInvalidID(t *testing.T) {
	app, _ := newTestApp(t, &stubGemini{})

	resp, err := app.Test(getRequest(t, "/api/v1/result/not-a-uuid"), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandleGetResultUnknownID(t *testing.T) {
	app, _ := newTestApp(t, &stubGemini{})

	resp, err := app.Test(getRequest(t, "/api/v1/result/"+uuid.New().String()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHandleGetStats(t *testing.T) {
	app, repo := newTestApp(t, &stubGemini{})
	session := seedSession(t, repo)

	resp, err := app.Test(getRequest(t, "/api/v1/stats/"+session.ID.String()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body models.StatsResponse
	decodeBody(t, resp, &body)
	if body.Stats.Words != 220 {
		t.Fatalf("unexpected word count: %d", body.Stats.Words)
	}
}

func TestHandleGetReportDetailed(t *testing.T) {
	app, repo := newTestApp(t, &stubGemini{})
	session := seedSession(t, repo)

	resp, err := app.Test(getRequest(t, "/api/v1/report/"+session.ID.String()), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "SmartCV_Report_") {
		t.Fatalf("unexpected content disposition: %q", cd)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	report := string(data)
	if !strings.Contains(report, "resume.pdf") {
		t.Fatalf("report should mention the original filename")
	}
	if !strings.Contains(report, "Quantify outcomes") {
		t.Fatalf("report should contain the improvement items")
	}
}

func TestHandleGetReportSummary(t *testing.T) {
	app, repo := newTestApp(t, &stubGemini{})
	session := seedSession(t, repo)

	resp, err := app.Test(getRequest(t, "/api/v1/report/"+session.ID.String()+"?format=summary"), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "SmartCV_Summary_") {
		t.Fatalf("unexpected content disposition: %q", cd)
	}
}

func TestHandleGetReportInvalidFormat(t *testing.T) {
	app, repo := newTestApp(t, &stubGemini{})
	session := seedSession(t, repo)

	resp, err := app.Test(getRequest(t, "/api/v1/report/"+session.ID.String()+"?format=pdf"), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
