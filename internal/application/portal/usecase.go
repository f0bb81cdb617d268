// Package portal expone los tickets de soporte de clientes. Los tickets
// nacen siempre en "abierto" y alimentan el dashboard de la empresa.
package portal

import (
	"time"

	"github.com/google/uuid"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

// TicketUseCase maneja la creación y listado de tickets.
type TicketUseCase struct {
	ticketRepo repository.TicketRepository
	clientRepo repository.ClientRepository
}

// NewTicketUseCase construye el caso de uso.
func NewTicketUseCase(ticketRepo repository.TicketRepository, clientRepo repository.ClientRepository) *TicketUseCase {
	return &TicketUseCase{ticketRepo: ticketRepo, clientRepo: clientRepo}
}

// Create abre un ticket para un cliente de la empresa.
func (uc *TicketUseCase) Create(companyID string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if in.ClientID == "" || in.Subject == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	ticket := &entity.Ticket{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ClientID:  in.ClientID,
		Subject:   in.Subject,
		Status:    entity.TicketStatusAbierto,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ticketRepo.Create(ticket); err != nil {
		return nil, err
	}
	return ticketToResponse(ticket), nil
}

// List lista todos los tickets de la empresa.
func (uc *TicketUseCase) List(companyID string) ([]dto.TicketResponse, error) {
	list, err := uc.ticketRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TicketResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *ticketToResponse(t))
	}
	return items, nil
}

func ticketToResponse(t *entity.Ticket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:        t.ID,
		ClientID:  t.ClientID,
		Subject:   t.Subject,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
