package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type ChatHandler struct {
	manager services.SessionManager
}

func NewChatHandler(manager services.SessionManager) *ChatHandler {
	return &ChatHandler{
		manager: manager,
	}
}

// HandleChat handles POST /sessions/:id/chat. A failed answer still
// returns 200: the failure is part of the transcript.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	session, err := lookupSession(c, h.manager)
	if session == nil {
		return err
	}

	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := session.SendChatMessage(c.UserContext(), req.Message); err != nil {
		if errors.Is(err, services.ErrChatInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		log.Printf("⚠️  Chat for session %s failed: %v\n", session.ID(), err)
	}

	return respondSession(c, fiber.StatusOK, session)
}
