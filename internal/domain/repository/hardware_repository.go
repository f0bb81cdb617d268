package repository

import (
	"time"

	"github.com/operix/plataforma-api/internal/domain/entity"
)

// HardwareRepository define el puerto de persistencia para el catálogo de
// hardware (SKU) y sus unidades físicas (seriales).
type HardwareRepository interface {
	CreateItem(item *entity.HardwareItem) error
	GetItemByID(id string) (*entity.HardwareItem, error)
	ListItemsByCompany(companyID string) ([]*entity.HardwareItem, error)

	CreateSerial(sn *entity.SerialNumber) error
	// GetBySerial busca la unidad por coincidencia exacta del serial dentro de la empresa.
	GetBySerial(companyID, serial string) (*entity.SerialNumber, error)
	ListSerialsByCompany(companyID string) ([]*entity.SerialNumber, error)
	// Install transiciona la unidad a "installed" y estampa el proyecto, solo si
	// su estado actual es "in_stock" (la guarda vive en el WHERE del UPDATE).
	// Devuelve true si la fila cambió; false si el serial ya no estaba in_stock.
	Install(serialID, projectID string, updatedAt time.Time) (bool, error)
}
