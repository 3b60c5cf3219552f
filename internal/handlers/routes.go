package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the API onto app under /api/v1.
func RegisterRoutes(
	app *fiber.App,
	sessionHandler *SessionHandler,
	uploadHandler *UploadHandler,
	chatHandler *ChatHandler,
) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/job-roles", sessionHandler.HandleJobRoles)

	api.Post("/sessions", sessionHandler.HandleCreate)
	api.Get("/sessions/:id", sessionHandler.HandleGet)
	api.Delete("/sessions/:id", sessionHandler.HandleDelete)
	api.Put("/sessions/:id/job-role", sessionHandler.HandleSelectJobRole)
	api.Put("/sessions/:id/chat/input", sessionHandler.HandleSetChatInput)
	api.Post("/sessions/:id/resume", uploadHandler.HandleUpload)
	api.Post("/sessions/:id/chat", chatHandler.HandleChat)
}
