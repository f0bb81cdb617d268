// Package inventory maneja el catálogo de hardware (SKU) y el alta de
// seriales. La transición in_stock → installed no vive aquí: la ejecuta la
// conciliación de intervenciones de campo.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

// UseCase operaciones de catálogo y alta de inventario.
type UseCase struct {
	hwRepo repository.HardwareRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(hwRepo repository.HardwareRepository) *UseCase {
	return &UseCase{hwRepo: hwRepo}
}

// CreateItem registra un SKU de hardware en el catálogo.
func (uc *UseCase) CreateItem(companyID string, in dto.CreateHardwareItemRequest) (*dto.HardwareItemResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.HardwareItem{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		SKU:       in.SKU,
		Name:      in.Name,
		CostPrice: in.CostPrice,
		MinStock:  in.MinStock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.hwRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

// ListItems lista el catálogo de la empresa.
func (uc *UseCase) ListItems(companyID string) ([]dto.HardwareItemResponse, error) {
	list, err := uc.hwRepo.ListItemsByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HardwareItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *itemToResponse(it))
	}
	return items, nil
}

// CreateSerial da de alta una unidad física en estado "in_stock".
func (uc *UseCase) CreateSerial(companyID, hardwareID string, in dto.CreateSerialRequest) (*dto.SerialNumberResponse, error) {
	if in.Serial == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.hwRepo.GetItemByID(hardwareID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.hwRepo.GetBySerial(companyID, in.Serial)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	sn := &entity.SerialNumber{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Serial:     in.Serial,
		HardwareID: hardwareID,
		Status:     entity.SerialStatusInStock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.hwRepo.CreateSerial(sn); err != nil {
		return nil, err
	}
	return serialToResponse(sn), nil
}

// ListSerials lista todas las unidades físicas de la empresa.
func (uc *UseCase) ListSerials(companyID string) ([]dto.SerialNumberResponse, error) {
	list, err := uc.hwRepo.ListSerialsByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SerialNumberResponse, 0, len(list))
	for _, sn := range list {
		items = append(items, *serialToResponse(sn))
	}
	return items, nil
}

func itemToResponse(it *entity.HardwareItem) *dto.HardwareItemResponse {
	if it == nil {
		return nil
	}
	return &dto.HardwareItemResponse{
		ID:        it.ID,
		SKU:       it.SKU,
		Name:      it.Name,
		CostPrice: it.CostPrice,
		MinStock:  it.MinStock,
		CreatedAt: it.CreatedAt,
	}
}

func serialToResponse(sn *entity.SerialNumber) *dto.SerialNumberResponse {
	if sn == nil {
		return nil
	}
	return &dto.SerialNumberResponse{
		ID:                sn.ID,
		Serial:            sn.Serial,
		HardwareID:        sn.HardwareID,
		Status:            sn.Status,
		AssignedProjectID: sn.AssignedProjectID,
		CreatedAt:         sn.CreatedAt,
		UpdatedAt:         sn.UpdatedAt,
	}
}
