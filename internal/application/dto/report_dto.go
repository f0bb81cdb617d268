package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Dashboard ─────────────────────────────────────────────────────────────────

// ActivityItemDTO entrada del feed de actividad reciente del dashboard.
type ActivityItemDTO struct {
	Type      string    `json:"type"`  // ticket | factura | proyecto | lead
	Color     string    `json:"color"` // color del badge en el front
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// DashboardMetricsDTO respuesta de GET /api/reports/dashboard.
type DashboardMetricsDTO struct {
	ActiveProjects        int             `json:"active_projects"`         // proyectos con status != completed
	OpenTickets           int             `json:"open_tickets"`            // tickets abierto | en_progreso
	PendingInvoicesAmount decimal.Decimal `json:"pending_invoices_amount"` // suma de amount con status == pending
	PendingInvoicesCount  int             `json:"pending_invoices_count"`
	RecentActivity        []ActivityItemDTO `json:"recent_activity"` // 5 entradas, descendente por timestamp
}

// ── Métricas globales ─────────────────────────────────────────────────────────

// FunnelDTO embudo de ventas.
type FunnelDTO struct {
	WonCount      int             `json:"won_count"`
	WonValue      decimal.Decimal `json:"won_value"`
	OpenCount     int             `json:"open_count"` // ni won ni lost
	ByServiceUnit map[string]int  `json:"by_service_unit"`
}

// ProjectRollupDTO resumen de proyectos.
type ProjectRollupDTO struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// FinanceRollupDTO resumen financiero sobre facturas.
type FinanceRollupDTO struct {
	Invoiced  decimal.Decimal `json:"invoiced"`  // suma total facturada
	Collected decimal.Decimal `json:"collected"` // suma con status == paid
	Pending   decimal.Decimal `json:"pending"`   // suma con status == pending
}

// InventoryItemValuationDTO valorización de un SKU.
type InventoryItemValuationDTO struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	InStock  int             `json:"in_stock"`
	Value    decimal.Decimal `json:"value"` // in_stock × cost_price
	LowStock bool            `json:"low_stock"`
}

// InventoryValuationDTO valorización total del inventario in_stock.
type InventoryValuationDTO struct {
	TotalValue decimal.Decimal             `json:"total_value"`
	Items      []InventoryItemValuationDTO `json:"items"`
}

// OverviewMetricsDTO respuesta de GET /api/reports/overview.
type OverviewMetricsDTO struct {
	Funnel    FunnelDTO             `json:"funnel"`
	Projects  ProjectRollupDTO      `json:"projects"`
	Finance   FinanceRollupDTO      `json:"finance"`
	Inventory InventoryValuationDTO `json:"inventory"`
}

// ── Informe post-mortem de proyecto ──────────────────────────────────────────

// ProjectReportDTO respuesta de GET /api/projects/:id/report.
//
// Los porcentajes van redondeados a 2 decimales, salvo las tasas de riesgos y
// de hitos que van a entero: asimetría heredada que los consumidores esperan.
// ScheduleAdherence es nil (JSON null) cuando no hay tareas completadas con
// fecha: "sin datos" no es lo mismo que "0% a tiempo".
type ProjectReportDTO struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`

	EstimatedValue decimal.Decimal `json:"estimated_value"` // estimación de la oportunidad, o total de la cotización aceptada, o 0
	InvoicedTotal  decimal.Decimal `json:"invoiced_total"`
	PaidTotal      decimal.Decimal `json:"paid_total"`

	TaskCompletionRate decimal.Decimal `json:"task_completion_rate"` // % tareas done (sistema completo)
	BugRate            decimal.Decimal `json:"bug_rate"`             // % tareas tipo bug (sistema completo)
	StoryPointsDone    int             `json:"story_points_done"`
	StoryPointsTotal   int             `json:"story_points_total"`

	SprintVelocity    decimal.Decimal  `json:"sprint_velocity"`    // promedio de puntos completados por sprint cerrado
	ScheduleAdherence *decimal.Decimal `json:"schedule_adherence"` // % tareas con fecha terminadas a tiempo; null sin datos

	RiskResolutionRate      int `json:"risk_resolution_rate"`      // % entero
	MilestoneCompletionRate int `json:"milestone_completion_rate"` // % entero
	MilestonePaymentRate    int `json:"milestone_payment_rate"`    // % entero
}
