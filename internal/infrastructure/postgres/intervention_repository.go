package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var _ repository.InterventionRepository = (*InterventionRepo)(nil)

// InterventionRepo implementación de InterventionRepository (usable con pool o tx).
// Seriales y fotos de evidencia se persisten como text[].
type InterventionRepo struct {
	q Querier
}

// NewInterventionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInterventionRepository(q Querier) *InterventionRepo {
	return &InterventionRepo{q: q}
}

const interventionColumns = `id, company_id, project_id, technician_id, type, site_location, status, hardware_serials, evidence_photos_url, scheduled_at, created_at, updated_at`

// Create persiste una nueva intervención.
func (r *InterventionRepo) Create(iv *entity.FieldIntervention) error {
	query := `
		INSERT INTO field_interventions (` + interventionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		iv.ID, iv.CompanyID, iv.ProjectID, iv.TechnicianID, iv.Type, iv.SiteLocation, iv.Status,
		iv.HardwareSerials, iv.EvidencePhotosURL, iv.ScheduledAt, iv.CreatedAt, iv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert intervention: %w", err)
	}
	return nil
}

// GetByID obtiene una intervención por ID.
func (r *InterventionRepo) GetByID(id string) (*entity.FieldIntervention, error) {
	query := `SELECT ` + interventionColumns + ` FROM field_interventions WHERE id = $1`
	var iv entity.FieldIntervention
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&iv.ID, &iv.CompanyID, &iv.ProjectID, &iv.TechnicianID, &iv.Type, &iv.SiteLocation,
		&iv.Status, &iv.HardwareSerials, &iv.EvidencePhotosURL, &iv.ScheduledAt, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get intervention: %w", err)
	}
	return &iv, nil
}

// ListByProject lista las intervenciones de un proyecto, más recientes primero.
func (r *InterventionRepo) ListByProject(projectID string) ([]*entity.FieldIntervention, error) {
	query := `SELECT ` + interventionColumns + `
		FROM field_interventions WHERE project_id = $1 ORDER BY scheduled_at DESC`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list interventions by project: %w", err)
	}
	defer rows.Close()
	return scanInterventions(rows)
}

// ListByCompany lista intervenciones de la empresa con paginación.
func (r *InterventionRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.FieldIntervention, error) {
	query := `SELECT ` + interventionColumns + `
		FROM field_interventions WHERE company_id = $1 ORDER BY scheduled_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list interventions: %w", err)
	}
	defer rows.Close()
	return scanInterventions(rows)
}

// UpdateStatus estampa el nuevo estado y, si vienen, seriales y fotos.
// COALESCE preserva los arreglos previos cuando el patch no los trae.
func (r *InterventionRepo) UpdateStatus(id, status string, serials, photos []string, updatedAt time.Time) error {
	query := `
		UPDATE field_interventions
		SET status = $2,
		    hardware_serials = COALESCE($3, hardware_serials),
		    evidence_photos_url = COALESCE($4, evidence_photos_url),
		    updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, serials, photos, updatedAt)
	if err != nil {
		return fmt.Errorf("update intervention status: %w", err)
	}
	return nil
}

func scanInterventions(rows pgx.Rows) ([]*entity.FieldIntervention, error) {
	var list []*entity.FieldIntervention
	for rows.Next() {
		var iv entity.FieldIntervention
		if err := rows.Scan(&iv.ID, &iv.CompanyID, &iv.ProjectID, &iv.TechnicianID, &iv.Type,
			&iv.SiteLocation, &iv.Status, &iv.HardwareSerials, &iv.EvidencePhotosURL,
			&iv.ScheduledAt, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan intervention: %w", err)
		}
		list = append(list, &iv)
	}
	return list, rows.Err()
}
