package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type SessionHandler struct {
	manager services.SessionManager
}

func NewSessionHandler(manager services.SessionManager) *SessionHandler {
	return &SessionHandler{
		manager: manager,
	}
}

// HandleJobRoles handles GET /job-roles
func (h *SessionHandler) HandleJobRoles(c *fiber.Ctx) error {
	return c.JSON(models.JobRolesResponse{
		Roles:   models.JobRoles(),
		Default: models.DefaultJobRole,
	})
}

// HandleCreate handles POST /sessions
func (h *SessionHandler) HandleCreate(c *fiber.Ctx) error {
	session, err := h.manager.Create()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}
	return respondSession(c, fiber.StatusCreated, session)
}

// HandleGet handles GET /sessions/:id
func (h *SessionHandler) HandleGet(c *fiber.Ctx) error {
	session, err := lookupSession(c, h.manager)
	if session == nil {
		return err
	}
	return respondSession(c, fiber.StatusOK, session)
}

// HandleDelete handles DELETE /sessions/:id
func (h *SessionHandler) HandleDelete(c *fiber.Ctx) error {
	session, err := lookupSession(c, h.manager)
	if session == nil {
		return err
	}
	if err := h.manager.Delete(session.ID()); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSelectJobRole handles PUT /sessions/:id/job-role
func (h *SessionHandler) HandleSelectJobRole(c *fiber.Ctx) error {
	session, err := lookupSession(c, h.manager)
	if session == nil {
		return err
	}

	var req models.SetJobRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := session.SelectJobRole(req.JobRole); err != nil {
		if errors.Is(err, models.ErrInvalidJobRole) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "job_role must be one of the listed job roles",
				"roles": models.JobRoles(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return respondSession(c, fiber.StatusOK, session)
}

// HandleSetChatInput handles PUT /sessions/:id/chat/input
func (h *SessionHandler) HandleSetChatInput(c *fiber.Ctx) error {
	session, err := lookupSession(c, h.manager)
	if session == nil {
		return err
	}

	var req models.ChatInputRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	session.SetChatInput(req.Text)
	return respondSession(c, fiber.StatusOK, session)
}
