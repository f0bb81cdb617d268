package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var _ repository.HardwareRepository = (*HardwareRepo)(nil)

// HardwareRepo implementación de HardwareRepository (usable con pool o tx).
type HardwareRepo struct {
	q Querier
}

// NewHardwareRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHardwareRepository(q Querier) *HardwareRepo {
	return &HardwareRepo{q: q}
}

// CreateItem persiste un SKU de catálogo.
func (r *HardwareRepo) CreateItem(item *entity.HardwareItem) error {
	query := `
		INSERT INTO hardware_items (id, company_id, sku, name, cost_price, min_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.SKU, item.Name, item.CostPrice, item.MinStock,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert hardware item: %w", err)
	}
	return nil
}

// GetItemByID obtiene un SKU por ID.
func (r *HardwareRepo) GetItemByID(id string) (*entity.HardwareItem, error) {
	query := `
		SELECT id, company_id, sku, name, cost_price, min_stock, created_at, updated_at
		FROM hardware_items WHERE id = $1`
	var it entity.HardwareItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.CompanyID, &it.SKU, &it.Name, &it.CostPrice, &it.MinStock,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hardware item: %w", err)
	}
	return &it, nil
}

// ListItemsByCompany lista el catálogo de la empresa.
func (r *HardwareRepo) ListItemsByCompany(companyID string) ([]*entity.HardwareItem, error) {
	query := `
		SELECT id, company_id, sku, name, cost_price, min_stock, created_at, updated_at
		FROM hardware_items WHERE company_id = $1 ORDER BY sku`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list hardware items: %w", err)
	}
	defer rows.Close()
	var list []*entity.HardwareItem
	for rows.Next() {
		var it entity.HardwareItem
		if err := rows.Scan(&it.ID, &it.CompanyID, &it.SKU, &it.Name, &it.CostPrice,
			&it.MinStock, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hardware item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// CreateSerial da de alta una unidad física.
func (r *HardwareRepo) CreateSerial(sn *entity.SerialNumber) error {
	query := `
		INSERT INTO serial_numbers (id, company_id, serial, hardware_id, status, assigned_project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sn.ID, sn.CompanyID, sn.Serial, sn.HardwareID, sn.Status, sn.AssignedProjectID,
		sn.CreatedAt, sn.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert serial: %w", err)
	}
	return nil
}

// GetBySerial busca la unidad por coincidencia exacta del serial dentro de la empresa.
func (r *HardwareRepo) GetBySerial(companyID, serial string) (*entity.SerialNumber, error) {
	query := `
		SELECT id, company_id, serial, hardware_id, status, assigned_project_id, created_at, updated_at
		FROM serial_numbers WHERE company_id = $1 AND serial = $2`
	var sn entity.SerialNumber
	err := r.q.QueryRow(context.Background(), query, companyID, serial).Scan(
		&sn.ID, &sn.CompanyID, &sn.Serial, &sn.HardwareID, &sn.Status, &sn.AssignedProjectID,
		&sn.CreatedAt, &sn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get serial: %w", err)
	}
	return &sn, nil
}

// ListSerialsByCompany lista todas las unidades físicas de la empresa.
func (r *HardwareRepo) ListSerialsByCompany(companyID string) ([]*entity.SerialNumber, error) {
	query := `
		SELECT id, company_id, serial, hardware_id, status, assigned_project_id, created_at, updated_at
		FROM serial_numbers WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list serials: %w", err)
	}
	defer rows.Close()
	var list []*entity.SerialNumber
	for rows.Next() {
		var sn entity.SerialNumber
		if err := rows.Scan(&sn.ID, &sn.CompanyID, &sn.Serial, &sn.HardwareID, &sn.Status,
			&sn.AssignedProjectID, &sn.CreatedAt, &sn.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan serial: %w", err)
		}
		list = append(list, &sn)
	}
	return list, rows.Err()
}

// Install transiciona la unidad a "installed" solo si sigue in_stock.
// La guarda vive en el WHERE: dos conciliaciones en carrera no pueden
// instalar el mismo serial dos veces.
func (r *HardwareRepo) Install(serialID, projectID string, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE serial_numbers
		SET status = $2, assigned_project_id = $3, updated_at = $4
		WHERE id = $1 AND status = $5`
	cmd, err := r.q.Exec(context.Background(), query,
		serialID, entity.SerialStatusInstalled, projectID, updatedAt, entity.SerialStatusInStock,
	)
	if err != nil {
		return false, fmt.Errorf("install serial: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
