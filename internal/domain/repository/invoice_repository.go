package repository

import "github.com/operix/plataforma-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// Las facturas las escriben handlers directos; los motores de reporte solo leen.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListAllByCompany(companyID string) ([]*entity.Invoice, error)
	ListByProject(projectID string) ([]*entity.Invoice, error)
	ListRecentByCompany(companyID string, n int) ([]*entity.Invoice, error)
}
