package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var _ repository.OpportunityRepository = (*OpportunityRepo)(nil)

// OpportunityRepo implementación de OpportunityRepository (usable con pool o tx).
type OpportunityRepo struct {
	q Querier
}

// NewOpportunityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOpportunityRepository(q Querier) *OpportunityRepo {
	return &OpportunityRepo{q: q}
}

const opportunityColumns = `id, company_id, client_id, assigned_to, service_unit, package_id, estimated_value, status, created_at, updated_at`

// Create persiste una nueva oportunidad.
func (r *OpportunityRepo) Create(opp *entity.Opportunity) error {
	query := `
		INSERT INTO opportunities (` + opportunityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		opp.ID, opp.CompanyID, opp.ClientID, opp.AssignedTo, opp.ServiceUnit, opp.PackageID,
		opp.EstimatedValue, opp.Status, opp.CreatedAt, opp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert opportunity: %w", err)
	}
	return nil
}

// GetByID obtiene una oportunidad por ID.
func (r *OpportunityRepo) GetByID(id string) (*entity.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = $1`
	var o entity.Opportunity
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.ClientID, &o.AssignedTo, &o.ServiceUnit, &o.PackageID,
		&o.EstimatedValue, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	return &o, nil
}

// ListByCompany lista oportunidades de la empresa con paginación.
func (r *OpportunityRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + `
		FROM opportunities WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()
	return scanOpportunities(rows)
}

// ListAllByCompany escaneo completo para el motor de reportes.
func (r *OpportunityRepo) ListAllByCompany(companyID string) ([]*entity.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE company_id = $1`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list all opportunities: %w", err)
	}
	defer rows.Close()
	return scanOpportunities(rows)
}

// ListRecentLeads devuelve las n oportunidades "lead" más recientes.
func (r *OpportunityRepo) ListRecentLeads(companyID string, n int) ([]*entity.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + `
		FROM opportunities WHERE company_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, companyID, entity.OpportunityStatusLead, n)
	if err != nil {
		return nil, fmt.Errorf("list recent leads: %w", err)
	}
	defer rows.Close()
	return scanOpportunities(rows)
}

// Update actualiza los campos mutables de una oportunidad.
func (r *OpportunityRepo) Update(opp *entity.Opportunity) error {
	query := `
		UPDATE opportunities
		SET assigned_to = $2, service_unit = $3, package_id = $4, estimated_value = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		opp.ID, opp.AssignedTo, opp.ServiceUnit, opp.PackageID, opp.EstimatedValue,
		opp.Status, opp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update opportunity: %w", err)
	}
	return nil
}

// MarkWon estampa status="won" y el valor definitivo (cascada cotización→oportunidad).
func (r *OpportunityRepo) MarkWon(id string, value decimal.Decimal, updatedAt time.Time) error {
	query := `UPDATE opportunities SET status = $2, estimated_value = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, entity.OpportunityStatusWon, value, updatedAt)
	if err != nil {
		return fmt.Errorf("mark opportunity won: %w", err)
	}
	return nil
}

func scanOpportunities(rows pgx.Rows) ([]*entity.Opportunity, error) {
	var list []*entity.Opportunity
	for rows.Next() {
		var o entity.Opportunity
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.ClientID, &o.AssignedTo, &o.ServiceUnit,
			&o.PackageID, &o.EstimatedValue, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
