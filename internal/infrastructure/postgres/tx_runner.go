package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/operix/plataforma-api/internal/application/crm"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

// Ensure TxRunner implements crm.TxRunner.
var _ crm.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOpportunity inicia una transacción con los repos de la cascada
// oportunidad→proyecto y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunOpportunity(ctx context.Context, fn func(
	oppRepo repository.OpportunityRepository,
	projectRepo repository.ProjectRepository,
	clientRepo repository.ClientRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	oppRepo := NewOpportunityRepository(tx)
	projectRepo := NewProjectRepository(tx)
	clientRepo := NewClientRepository(tx)

	if err := fn(oppRepo, projectRepo, clientRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunQuote inicia una transacción con los repos de la cascada
// cotización→oportunidad.
func (r *TxRunner) RunQuote(ctx context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	oppRepo repository.OpportunityRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	quoteRepo := NewQuoteRepository(tx)
	oppRepo := NewOpportunityRepository(tx)

	if err := fn(quoteRepo, oppRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
