package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartcv/analyzer/internal/repositories"
	"smartcv/analyzer/internal/services"
)

type ReportHandler struct {
	sessionRepo     repositories.SessionRepository
	reportGenerator *services.ReportGenerator
}

func NewReportHandler(sessionRepo repositories.SessionRepository) *ReportHandler {
	return &ReportHandler{
		sessionRepo:     sessionRepo,
		reportGenerator: services.NewReportGenerator(),
	}
}

// HandleGetReport handles GET /report/:id?format=detailed|summary and serves
// the rendered report as a plain-text download.
func (h *ReportHandler) HandleGetReport(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	format := c.Query("format", "detailed")
	if format != "detailed" && format != "summary" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid format. Use 'detailed' or 'summary'.",
		})
	}

	detailed := format == "detailed"
	now := time.Now()

	var report string
	if detailed {
		report = h.reportGenerator.Detailed(session.Analysis, session.Filename, now)
	} else {
		report = h.reportGenerator.Summary(session.Analysis, session.Filename, now)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, h.reportGenerator.FileName(detailed, now)))

	return c.SendString(report)
}
