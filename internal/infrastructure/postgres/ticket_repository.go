package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación de TicketRepository (usable con pool o tx).
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

// Create persiste un nuevo ticket.
func (r *TicketRepo) Create(ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, company_id, client_id, subject, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.CompanyID, ticket.ClientID, ticket.Subject, ticket.Status,
		ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// ListAllByCompany escaneo completo de tickets de la empresa.
func (r *TicketRepo) ListAllByCompany(companyID string) ([]*entity.Ticket, error) {
	query := `
		SELECT id, company_id, client_id, subject, status, created_at, updated_at
		FROM tickets WHERE company_id = $1`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

// ListRecentByCompany devuelve los n tickets más recientes (feed del dashboard).
func (r *TicketRepo) ListRecentByCompany(companyID string, n int) ([]*entity.Ticket, error) {
	query := `
		SELECT id, company_id, client_id, subject, status, created_at, updated_at
		FROM tickets WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, companyID, n)
	if err != nil {
		return nil, fmt.Errorf("list recent tickets: %w", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]*entity.Ticket, error) {
	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.ClientID, &t.Subject, &t.Status,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
