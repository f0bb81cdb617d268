package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes (CRM).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. Razón social y NIT son obligatorios; devuelve
// domain.ErrDuplicate si ya existe un cliente con ese NIT en la empresa.
func (uc *ClientUseCase) Create(companyID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.CompanyName == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndTaxID(companyID, in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CompanyName: in.CompanyName,
		TaxID:       in.TaxID,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Status:      "activo",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// GetByID obtiene un cliente por ID, validando pertenencia a la empresa.
func (uc *ClientUseCase) GetByID(companyID, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return clientToResponse(client), nil
}

// List lista clientes de la empresa con paginación.
func (uc *ClientUseCase) List(companyID string, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *clientToResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica los campos presentes del patch. Validación: razón social y NIT
// no pueden quedar vacíos.
func (uc *ClientUseCase) Update(companyID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.CompanyName != nil {
		if *in.CompanyName == "" {
			return nil, domain.ErrInvalidInput
		}
		client.CompanyName = *in.CompanyName
	}
	if in.TaxID != nil {
		if *in.TaxID == "" {
			return nil, domain.ErrInvalidInput
		}
		client.TaxID = *in.TaxID
	}
	if in.ContactName != nil {
		client.ContactName = *in.ContactName
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Status != nil {
		client.Status = *in.Status
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		TaxID:       c.TaxID,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
