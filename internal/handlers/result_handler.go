package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartcv/analyzer/internal/models"
	"smartcv/analyzer/internal/repositories"
)

type ResultHandler struct {
	sessionRepo repositories.SessionRepository
}

func NewResultHandler(sessionRepo repositories.SessionRepository) *ResultHandler {
	return &ResultHandler{
		sessionRepo: sessionRepo,
	}
}

// HandleGetResult handles GET /result/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
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

	return c.JSON(models.ResultResponse{
		ID:        session.ID.String(),
		Filename:  session.Filename,
		Analysis:  session.Analysis,
		Badges:    badgesFor(session.Analysis),
		Stats:     session.Stats,
		CreatedAt: session.CreatedAt,
	})
}

// HandleGetStats handles GET /stats/:id
func (h *ResultHandler) HandleGetStats(c *fiber.Ctx) error {
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

	return c.JSON(models.StatsResponse{
		ID:    session.ID.String(),
		Stats: session.Stats,
	})
}
