package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Clientes ──────────────────────────────────────────────────────────────────

// CreateClientRequest cuerpo de POST /api/clients.
type CreateClientRequest struct {
	CompanyName string `json:"company_name"`
	TaxID       string `json:"tax_id"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// UpdateClientRequest cuerpo de PUT /api/clients/:id. Campos en nil no se tocan.
type UpdateClientRequest struct {
	CompanyName *string `json:"company_name"`
	TaxID       *string `json:"tax_id"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Status      *string `json:"status"`
}

// ClientResponse representación HTTP de un cliente.
type ClientResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	TaxID       string    `json:"tax_id"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClientListResponse listado paginado de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ── Oportunidades ─────────────────────────────────────────────────────────────

// CreateOpportunityRequest cuerpo de POST /api/opportunities.
type CreateOpportunityRequest struct {
	ClientID       string          `json:"client_id"`
	AssignedTo     string          `json:"assigned_to"`
	ServiceUnit    string          `json:"service_unit"`
	PackageID      string          `json:"package_id"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
}

// UpdateOpportunityRequest cuerpo de PATCH /api/opportunities/:id.
// Cada campo es opcional: nil significa "no cambiar" (tracking explícito de
// campos modificados, sin payloads any-tipados).
type UpdateOpportunityRequest struct {
	Status         *string          `json:"status"`
	AssignedTo     *string          `json:"assigned_to"`
	ServiceUnit    *string          `json:"service_unit"`
	PackageID      *string          `json:"package_id"`
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
}

// OpportunityResponse representación HTTP de una oportunidad.
type OpportunityResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	AssignedTo     string          `json:"assigned_to"`
	ServiceUnit    string          `json:"service_unit"`
	PackageID      string          `json:"package_id"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// UpdateOpportunityResponse resultado de la mutación con el desenlace de la
// cascada oportunidad→proyecto.
type UpdateOpportunityResponse struct {
	Opportunity OpportunityResponse `json:"opportunity"`
	Cascade     string              `json:"cascade"` // applied | skipped_already_exists | skipped_not_found | not_triggered
	ProjectID   string              `json:"project_id,omitempty"`
}

// OpportunityListResponse listado paginado de oportunidades.
type OpportunityListResponse struct {
	Items []OpportunityResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ── Cotizaciones ──────────────────────────────────────────────────────────────

// QuoteItemRequest línea de cotización en el request; el total de línea se
// calcula en el servidor.
type QuoteItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateQuoteRequest cuerpo de POST /api/quotes.
type CreateQuoteRequest struct {
	OpportunityID string             `json:"opportunity_id"`
	Currency      string             `json:"currency"`
	Items         []QuoteItemRequest `json:"items"`
}

// UpdateQuoteStatusRequest cuerpo de PATCH /api/quotes/:id/status.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status"`
}

// QuoteItemResponse línea de cotización calculada.
type QuoteItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// QuoteResponse representación HTTP de una cotización.
type QuoteResponse struct {
	ID            string              `json:"id"`
	OpportunityID string              `json:"opportunity_id"`
	Items         []QuoteItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Tax           decimal.Decimal     `json:"tax"`
	Total         decimal.Decimal     `json:"total"`
	Currency      string              `json:"currency"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// UpdateQuoteStatusResponse resultado de la mutación con el desenlace de la
// cascada cotización→oportunidad.
type UpdateQuoteStatusResponse struct {
	Quote   QuoteResponse `json:"quote"`
	Cascade string        `json:"cascade"`
}
