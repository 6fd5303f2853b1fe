package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/domain"
)

// JobApplicationsHandler exposes the careers form and the admin review endpoints.
type JobApplicationsHandler struct {
	applications JobApplicationManager
}

// NewJobApplicationsHandler constructs handler.
func NewJobApplicationsHandler(applications JobApplicationManager) *JobApplicationsHandler {
	return &JobApplicationsHandler{applications: applications}
}

// Submit handles POST /api/job-applications.
func (h *JobApplicationsHandler) Submit(c *fiber.Ctx) error {
	var req dto.JobApplicationRequest
	if err := dto.Bind(c, &req); err != nil {
		return err
	}
	app, err := h.applications.Submit(c.UserContext(), req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Application submitted",
		"data":    dto.NewJobApplicationResponse(app),
	})
}

// List handles GET /api/admin/job-applications.
func (h *JobApplicationsHandler) List(c *fiber.Ctx) error {
	var status *domain.JobApplicationStatus
	if val := c.Query("status"); val != "" {
		s := domain.JobApplicationStatus(val)
		status = &s
	}
	apps, err := h.applications.List(c.UserContext(), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobApplicationResponses(apps)})
}

// Get handles GET /api/admin/job-applications/:id.
func (h *JobApplicationsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	app, err := h.applications.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobApplicationResponse(app)})
}

// UpdateStatus handles PATCH /api/admin/job-applications/:id.
func (h *JobApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.JobApplicationStatusRequest
	if err := dto.Bind(c, &req); err != nil {
		return err
	}
	app, err := h.applications.UpdateStatus(c.UserContext(), id, req.Status, actorID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Application status updated",
		"data":    dto.NewJobApplicationResponse(app),
	})
}

// Delete handles DELETE /api/admin/job-applications/:id.
func (h *JobApplicationsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.applications.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
