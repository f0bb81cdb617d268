package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
// Las líneas de la cotización se persisten como JSONB en la misma fila.
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste una nueva cotización con sus líneas.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	items, err := json.Marshal(quote.Items)
	if err != nil {
		return fmt.Errorf("marshal quote items: %w", err)
	}
	query := `
		INSERT INTO quotes (id, company_id, opportunity_id, items, subtotal, tax, total, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		quote.ID, quote.CompanyID, quote.OpportunityID, items, quote.Subtotal, quote.Tax,
		quote.Total, quote.Currency, quote.Status, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `
		SELECT id, company_id, opportunity_id, items, subtotal, tax, total, currency, status, created_at, updated_at
		FROM quotes WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return quote, nil
}

// ListByOpportunity lista las cotizaciones de una oportunidad, más recientes primero.
func (r *QuoteRepo) ListByOpportunity(opportunityID string) ([]*entity.Quote, error) {
	query := `
		SELECT id, company_id, opportunity_id, items, subtotal, tax, total, currency, status, created_at, updated_at
		FROM quotes WHERE opportunity_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, quote)
	}
	return list, rows.Err()
}

// UpdateStatus estampa el nuevo estado de la cotización.
func (r *QuoteRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	query := `UPDATE quotes SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	return nil
}

type pgxScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row pgxScanner) (*entity.Quote, error) {
	var q entity.Quote
	var items []byte
	err := row.Scan(
		&q.ID, &q.CompanyID, &q.OpportunityID, &items, &q.Subtotal, &q.Tax, &q.Total,
		&q.Currency, &q.Status, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &q.Items); err != nil {
			return nil, fmt.Errorf("unmarshal quote items: %w", err)
		}
	}
	return &q, nil
}
