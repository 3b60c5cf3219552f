package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func sessionResponse(session services.SessionController) models.SessionResponse {
	state := session.State()
	return models.SessionResponse{
		Session: state,
		View:    models.Project(state, session.Contract()),
	}
}

func respondSession(c *fiber.Ctx, status int, session services.SessionController) error {
	return c.Status(status).JSON(sessionResponse(session))
}

// lookupSession resolves :id. On failure it has already written the error
// response and returns a nil session.
func lookupSession(c *fiber.Ctx, manager services.SessionManager) (services.SessionController, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := manager.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	return session, nil
}
