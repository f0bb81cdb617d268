package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/application/reports"
)

// ReportHandler maneja los endpoints de agregación (protegido).
type ReportHandler struct {
	dashboardUC *reports.DashboardUseCase
	overviewUC  *reports.OverviewUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(dashboardUC *reports.DashboardUseCase, overviewUC *reports.OverviewUseCase) *ReportHandler {
	return &ReportHandler{dashboardUC: dashboardUC, overviewUC: overviewUC}
}

// Dashboard godoc
// @Summary      Métricas del dashboard
// @Description  Contadores operativos y feed de actividad reciente (5 entradas, tickets, facturas, proyectos y leads mezclados por fecha).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardMetricsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.dashboardUC.GetMetrics(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Overview godoc
// @Summary      Métricas generales de la empresa
// @Description  Embudo comercial, rollup de proyectos, finanzas y valuación de inventario in_stock.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverviewMetricsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/overview [get]
func (h *ReportHandler) Overview(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.overviewUC.GetMetrics(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
