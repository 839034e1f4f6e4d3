package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"smartcv/analyzer/internal/models"
	"smartcv/analyzer/internal/services"
)

type AnalyzeHandler struct {
	storageService services.StorageService
	analyzer       services.AnalyzerService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	storageService services.StorageService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		storageService: storageService,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze: one multipart "resume" file runs the
// whole pipeline synchronously and the validated result comes back with a
// session ID for later report downloads.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No résumé uploaded. Send the file in the 'resume' form field.",
		})
	}

	if file.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Uploaded file is empty",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large: %.1fMB (max: %dMB)",
				float64(file.Size)/1024/1024, h.maxFileSize/1024/1024),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	// The upload is only needed for the duration of this request
	defer h.storageService.DeleteFile(filename)

	session, err := h.analyzer.Analyze(c.Context(), filePath, file.Filename)
	if err != nil {
		return respondPipelineError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.AnalyzeResponse{
		ID:       session.ID.String(),
		Filename: session.Filename,
		Analysis: session.Analysis,
		Badges:   badgesFor(session.Analysis),
		Stats:    session.Stats,
	})
}

func badgesFor(analysis *models.AnalysisResult) models.ScoreBadges {
	return models.ScoreBadges{
		Overall:   services.ClassifyScore(analysis.OverallScore),
		Clarity:   services.ClassifyScore(analysis.Clarity.Score),
		Structure: services.ClassifyScore(analysis.Structure.Score),
		Keywords:  services.ClassifyScore(analysis.Keywords.Score),
	}
}
