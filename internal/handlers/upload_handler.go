package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type UploadHandler struct {
	manager services.SessionManager
	worker  services.Worker
}

func NewUploadHandler(
	manager services.SessionManager,
	worker services.Worker,
) *UploadHandler {
	return &UploadHandler{
		manager: manager,
		worker:  worker,
	}
}

// HandleUpload handles POST /sessions/:id/resume. Validation happens here;
// the call to the analysis service runs on the worker and the page polls
// the session until is_processing drops.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	session, err := lookupSession(c, h.manager)
	if session == nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files, err := services.ReadUploads(form.File["file"])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	job, err := session.BeginResumeUpload(files)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrUploadInProgress):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.As(err, &validationErr):
			return respondSession(c, fiber.StatusUnprocessableEntity, session)
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	if job == nil {
		return respondSession(c, fiber.StatusOK, session)
	}

	if err := h.worker.EnqueueJob(job); err != nil {
		log.Printf("❌ Failed to enqueue upload for session %s: %v\n", session.ID(), err)
		job.Abort(err)
		return respondSession(c, fiber.StatusServiceUnavailable, session)
	}

	return c.Status(fiber.StatusAccepted).JSON(models.UploadAcceptedResponse{
		JobID:   job.ID.String(),
		Session: sessionResponse(session),
	})
}
