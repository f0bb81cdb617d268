package repository

import "github.com/operix/plataforma-api/internal/domain/entity"

// TicketRepository define el puerto de persistencia para Ticket (portal de clientes).
type TicketRepository interface {
	Create(ticket *entity.Ticket) error
	ListAllByCompany(companyID string) ([]*entity.Ticket, error)
	ListRecentByCompany(companyID string, n int) ([]*entity.Ticket, error)
}
