package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/survey-service/internal/api/dto"
	"github.com/spec-kit/survey-service/internal/render"
	"github.com/spec-kit/survey-service/internal/service"
	apperrors "github.com/spec-kit/survey-service/pkg/util"
)

// DashboardHandler serves the aggregate projection as JSON and as the
// server-rendered page.
type DashboardHandler struct {
	service *service.SurveyService
	chart   render.Renderer
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(surveyService *service.SurveyService, chart render.Renderer) *DashboardHandler {
	return &DashboardHandler{service: surveyService, chart: chart}
}

// GetDashboard GET /api/v1/dashboard.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	summary := h.service.Dashboard(c.Context())
	return c.JSON(fiber.Map{"data": dto.NewDashboardResponse(summary)})
}

// GetDashboardPage GET /dashboard. Breakdown degrades to the table fallback
// when the chart renderer cannot draw.
func (h *DashboardHandler) GetDashboardPage(c *fiber.Ctx) error {
	summary := h.service.Dashboard(c.Context())
	page, err := render.DashboardPage(summary, h.chart)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}
