package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/survey-service/internal/api/dto"
	"github.com/spec-kit/survey-service/internal/service"
	apperrors "github.com/spec-kit/survey-service/pkg/util"
)

// SurveyHandler manages entry submission, export and reset endpoints.
type SurveyHandler struct {
	service        *service.SurveyService
	exportFilename string
}

// NewSurveyHandler constructs handler.
func NewSurveyHandler(surveyService *service.SurveyService, exportFilename string) *SurveyHandler {
	return &SurveyHandler{service: surveyService, exportFilename: exportFilename}
}

// SubmitEntry POST /api/v1/entries.
func (h *SurveyHandler) SubmitEntry(c *fiber.Ctx) error {
	var req dto.SubmitEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	entry, err := h.service.Submit(c.Context(), service.FormInput{
		Department: req.Department,
		Role:       req.Role,
		Issue:      req.Issue,
		Priority:   req.Priority,
		Contact:    req.Contact,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewEntryResponse(entry)})
}

// ExportCSV GET /api/v1/export.
func (h *SurveyHandler) ExportCSV(c *fiber.Ctx) error {
	content := h.service.ExportCSV(c.Context())
	c.Set(fiber.HeaderContentType, service.CSVContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", h.exportFilename))
	return c.SendString(content)
}

// ResetEntries DELETE /api/v1/entries. Destroys all data; requires the
// confirm flag so a stray request cannot wipe the store.
func (h *SurveyHandler) ResetEntries(c *fiber.Ctx) error {
	if c.Query("confirm") != "true" {
		return apperrors.NewValidationError("reset requires confirm=true", nil)
	}
	if err := h.service.Reset(c.Context()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
