package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartcv/analyzer/internal/config"
	"smartcv/analyzer/internal/models"
	"smartcv/analyzer/internal/repositories"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, filePath, originalName string) (*models.Session, error)
}

type analyzerService struct {
	sessionRepo   repositories.SessionRepository
	geminiService GeminiService
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	analysisCfg   config.AnalysisConfig
}

func NewAnalyzerService(
	sessionRepo repositories.SessionRepository,
	geminiService GeminiService,
	pdfParser PDFParserService,
	analysisCfg config.AnalysisConfig,
) AnalyzerService {
	return &analyzerService{
		sessionRepo:   sessionRepo,
		geminiService: geminiService,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		analysisCfg:   analysisCfg,
	}
}

// Analyze runs the whole pipeline for one uploaded résumé: extract,
// normalize, validate, prompt, parse and store. Every failure is terminal
// for the request; no partially validated result is ever kept.
func (a *analyzerService) Analyze(ctx context.Context, filePath, originalName string) (*models.Session, error) {
	log.Printf("🔄 Starting analysis for %s\n", originalName)

	// Step 1: Extract text
	rawText, err := a.extractText(filePath)
	if err != nil {
		return nil, err
	}

	// Step 2: Normalize and validate content
	content := NormalizeText(rawText)
	if err := ValidateContent(content, a.analysisCfg.MinContentLength, a.analysisCfg.MaxContentLength); err != nil {
		return nil, err
	}

	stats := ComputeContentStats(content)
	log.Printf("📊 Content ready: %d words, %d characters\n", stats.Words, stats.Characters)

	// Step 3: Send for analysis
	prompt := a.promptBuilder.BuildAnalysisPrompt(content)
	log.Printf("🤖 Analyzing résumé with Gemini (prompt: %d characters)\n", len(prompt))

	response, err := a.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Step 4: Validate the response
	analysis, err := ParseAnalysisResponse(response)
	if err != nil {
		return nil, err
	}

	// Step 5: Store the result in a fresh session
	session := &models.Session{
		ID:        uuid.New(),
		Filename:  originalName,
		Analysis:  analysis,
		Stats:     stats,
		CreatedAt: time.Now(),
	}

	if err := a.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	log.Printf("✅ Analysis completed for %s (session %s, score %.0f)\n",
		originalName, session.ID, analysis.OverallScore)
	return session, nil
}

func (a *analyzerService) extractText(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return a.pdfParser.ExtractText(filePath)
	case ".txt":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", &models.ExtractionError{Reason: "failed to read text file", Err: err}
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", &models.ExtractionError{Reason: "text file is empty"}
		}
		return string(data), nil
	default:
		return "", &models.ExtractionError{
			Reason: fmt.Sprintf("unsupported file extension: %s", filepath.Ext(filePath)),
		}
	}
}
