package crm

import (
	"context"

	"github.com/operix/plataforma-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Mantiene atómicos el patch primario y su
// cascada: la mutación completa se aplica o no se aplica.
type TxRunner interface {
	// RunOpportunity transacción para actualizar una oportunidad y, si aplica,
	// crear su proyecto (cascada oportunidad→proyecto).
	RunOpportunity(ctx context.Context, fn func(
		oppRepo repository.OpportunityRepository,
		projectRepo repository.ProjectRepository,
		clientRepo repository.ClientRepository,
	) error) error

	// RunQuote transacción para cambiar el estado de una cotización y, si
	// aplica, forzar la oportunidad padre a "won" (cascada cotización→oportunidad).
	RunQuote(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		oppRepo repository.OpportunityRepository,
	) error) error
}
