package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
// Los hitos de pago se persisten como JSONB en la misma fila. La unicidad
// proyecto-por-oportunidad la garantiza un índice único parcial sobre
// opportunity_id (WHERE opportunity_id <> '').
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste el proyecto. Devuelve domain.ErrDuplicate si ya existe un
// proyecto para la misma oportunidad (dos transiciones a "won" en carrera).
func (r *ProjectRepo) Create(project *entity.Project) error {
	milestones, err := json.Marshal(project.Milestones)
	if err != nil {
		return fmt.Errorf("marshal milestones: %w", err)
	}
	query := `
		INSERT INTO projects (id, company_id, client_id, opportunity_id, title, status, milestones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		project.ID, project.CompanyID, project.ClientID, project.OpportunityID, project.Title,
		project.Status, milestones, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `
		SELECT id, company_id, client_id, opportunity_id, title, status, milestones, created_at, updated_at
		FROM projects WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

// GetByOpportunityID obtiene el proyecto nacido de una oportunidad.
func (r *ProjectRepo) GetByOpportunityID(opportunityID string) (*entity.Project, error) {
	query := `
		SELECT id, company_id, client_id, opportunity_id, title, status, milestones, created_at, updated_at
		FROM projects WHERE opportunity_id = $1`
	row := r.q.QueryRow(context.Background(), query, opportunityID)
	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project by opportunity: %w", err)
	}
	return project, nil
}

// ListByCompany lista proyectos de la empresa con paginación.
func (r *ProjectRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT id, company_id, client_id, opportunity_id, title, status, milestones, created_at, updated_at
		FROM projects WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

// ListAllByCompany escaneo completo para el motor de reportes.
func (r *ProjectRepo) ListAllByCompany(companyID string) ([]*entity.Project, error) {
	query := `
		SELECT id, company_id, client_id, opportunity_id, title, status, milestones, created_at, updated_at
		FROM projects WHERE company_id = $1`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list all projects: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

// ListRecentByCompany devuelve los n proyectos más recientes (feed del dashboard).
func (r *ProjectRepo) ListRecentByCompany(companyID string, n int) ([]*entity.Project, error) {
	query := `
		SELECT id, company_id, client_id, opportunity_id, title, status, milestones, created_at, updated_at
		FROM projects WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, companyID, n)
	if err != nil {
		return nil, fmt.Errorf("list recent projects: %w", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

// UpdateStatus estampa el nuevo estado del proyecto.
func (r *ProjectRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE projects SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	return nil
}

// UpdateMilestones reemplaza el arreglo completo de hitos del proyecto.
func (r *ProjectRepo) UpdateMilestones(id string, milestones []entity.Milestone, updatedAt time.Time) error {
	data, err := json.Marshal(milestones)
	if err != nil {
		return fmt.Errorf("marshal milestones: %w", err)
	}
	query := `UPDATE projects SET milestones = $2, updated_at = $3 WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query, id, data, updatedAt)
	if err != nil {
		return fmt.Errorf("update project milestones: %w", err)
	}
	return nil
}

func scanProject(row pgxScanner) (*entity.Project, error) {
	var p entity.Project
	var milestones []byte
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.ClientID, &p.OpportunityID, &p.Title, &p.Status,
		&milestones, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(milestones) > 0 {
		if err := json.Unmarshal(milestones, &p.Milestones); err != nil {
			return nil, fmt.Errorf("unmarshal milestones: %w", err)
		}
	}
	return &p, nil
}

func collectProjects(rows pgx.Rows) ([]*entity.Project, error) {
	var list []*entity.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, project)
	}
	return list, rows.Err()
}
