// Package finance contiene los handlers delgados de facturas. El motor de
// reportes solo las lee; aquí no hay estado derivado ni cascadas.
package finance

import (
	"time"

	"github.com/google/uuid"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var validInvoiceStatus = map[string]bool{
	entity.InvoiceStatusPending: true,
	entity.InvoiceStatusPaid:    true,
	entity.InvoiceStatusOverdue: true,
}

// InvoiceUseCase escritura directa de facturas.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, clientRepo repository.ClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

// Create registra una factura contra un cliente existente.
func (uc *InvoiceUseCase) Create(companyID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPending
	}
	if !validInvoiceStatus[status] {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	issuedAt := in.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	now := time.Now()
	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ClientID:  in.ClientID,
		ProjectID: in.ProjectID,
		Amount:    in.Amount,
		Status:    status,
		IssuedAt:  issuedAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return invoiceToResponse(invoice), nil
}

// List lista todas las facturas de la empresa.
func (uc *InvoiceUseCase) List(companyID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *invoiceToResponse(inv))
	}
	return items, nil
}

func invoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		ClientID:  inv.ClientID,
		ProjectID: inv.ProjectID,
		Amount:    inv.Amount,
		Status:    inv.Status,
		IssuedAt:  inv.IssuedAt,
		CreatedAt: inv.CreatedAt,
	}
}
