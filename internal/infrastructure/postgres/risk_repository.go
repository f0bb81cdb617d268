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

var _ repository.RiskRepository = (*RiskRepo)(nil)

// RiskRepo implementación de RiskRepository (usable con pool o tx).
type RiskRepo struct {
	q Querier
}

// NewRiskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRiskRepository(q Querier) *RiskRepo {
	return &RiskRepo{q: q}
}

// Create persiste un nuevo riesgo.
func (r *RiskRepo) Create(risk *entity.ProjectRisk) error {
	query := `
		INSERT INTO project_risks (id, company_id, project_id, owner_id, description, probability, impact, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		risk.ID, risk.CompanyID, risk.ProjectID, risk.OwnerID, risk.Description,
		risk.Probability, risk.Impact, risk.Status, risk.CreatedAt, risk.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert risk: %w", err)
	}
	return nil
}

// GetByID obtiene un riesgo por ID.
func (r *RiskRepo) GetByID(id string) (*entity.ProjectRisk, error) {
	query := `
		SELECT id, company_id, project_id, owner_id, description, probability, impact, status, created_at, updated_at
		FROM project_risks WHERE id = $1`
	var risk entity.ProjectRisk
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&risk.ID, &risk.CompanyID, &risk.ProjectID, &risk.OwnerID, &risk.Description,
		&risk.Probability, &risk.Impact, &risk.Status, &risk.CreatedAt, &risk.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get risk: %w", err)
	}
	return &risk, nil
}

// ListByProject lista los riesgos de un proyecto.
func (r *RiskRepo) ListByProject(projectID string) ([]*entity.ProjectRisk, error) {
	query := `
		SELECT id, company_id, project_id, owner_id, description, probability, impact, status, created_at, updated_at
		FROM project_risks WHERE project_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProjectRisk
	for rows.Next() {
		var risk entity.ProjectRisk
		if err := rows.Scan(&risk.ID, &risk.CompanyID, &risk.ProjectID, &risk.OwnerID,
			&risk.Description, &risk.Probability, &risk.Impact, &risk.Status,
			&risk.CreatedAt, &risk.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan risk: %w", err)
		}
		list = append(list, &risk)
	}
	return list, rows.Err()
}

// UpdateStatus estampa el nuevo estado del riesgo.
func (r *RiskRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE project_risks SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update risk status: %w", err)
	}
	return nil
}
