package crm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain"
	domaincrm "github.com/operix/plataforma-api/internal/domain/crm"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

// QuoteUseCase casos de uso de cotizaciones, incluida la cascada
// cotización→oportunidad al aceptar.
type QuoteUseCase struct {
	txRunner  TxRunner
	quoteRepo repository.QuoteRepository
	oppRepo   repository.OpportunityRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(txRunner TxRunner, quoteRepo repository.QuoteRepository, oppRepo repository.OpportunityRepository) *QuoteUseCase {
	return &QuoteUseCase{txRunner: txRunner, quoteRepo: quoteRepo, oppRepo: oppRepo}
}

// Create crea una cotización en "borrador". Los totales se calculan en el
// servidor: total de línea = cantidad × precio, IVA fijo 18% sobre el subtotal.
func (uc *QuoteUseCase) Create(companyID string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.OpportunityID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	opp, err := uc.oppRepo.GetByID(in.OpportunityID)
	if err != nil {
		return nil, err
	}
	if opp == nil || opp.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.QuoteItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.QuoteItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  domaincrm.LineTotal(it.Quantity, it.UnitPrice),
		})
	}
	subtotal, tax, total := domaincrm.QuoteTotals(items)

	currency := in.Currency
	if currency == "" {
		currency = "COP"
	}
	now := time.Now()
	quote := &entity.Quote{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		OpportunityID: in.OpportunityID,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Currency:      currency,
		Status:        entity.QuoteStatusBorrador,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, err
	}
	return quoteToResponse(quote), nil
}

// ListByOpportunity lista las cotizaciones de una oportunidad.
func (uc *QuoteUseCase) ListByOpportunity(companyID, opportunityID string) ([]dto.QuoteResponse, error) {
	opp, err := uc.oppRepo.GetByID(opportunityID)
	if err != nil {
		return nil, err
	}
	if opp == nil || opp.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.quoteRepo.ListByOpportunity(opportunityID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *quoteToResponse(q))
	}
	return items, nil
}

// UpdateStatus cambia el estado de la cotización. La transición a "aceptado"
// dispara la cascada de una vía sobre la oportunidad padre: status "won" y
// estimatedValue = total de la cotización (releída tras el patch).
//
// Si existen varias cotizaciones para la misma oportunidad, gana la última
// aceptada (last-write-wins): la cascada no comprueba aceptaciones previas.
// El patch y la cascada corren en la misma transacción; una oportunidad padre
// inexistente no revierte el patch de la cotización (skip, no error).
func (uc *QuoteUseCase) UpdateStatus(ctx context.Context, companyID, quoteID, status string) (*dto.UpdateQuoteStatusResponse, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil || quote.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if !domain.CanQuoteTransition(quote.Status, status) {
		return nil, domain.ErrInvalidTransition
	}

	cascade := domain.CascadeNotTriggered
	var updated *entity.Quote

	err = uc.txRunner.RunQuote(ctx, func(
		quoteRepo repository.QuoteRepository,
		oppRepo repository.OpportunityRepository,
	) error {
		now := time.Now()
		if err := quoteRepo.UpdateStatus(quoteID, status, now); err != nil {
			return fmt.Errorf("actualizar cotización: %w", err)
		}
		// Relectura tras el patch: el total que se estampa en la oportunidad
		// es el persistido, no el del snapshot previo.
		fresh, err := quoteRepo.GetByID(quoteID)
		if err != nil {
			return err
		}
		if fresh == nil {
			return domain.ErrNotFound
		}
		updated = fresh

		if status != entity.QuoteStatusAceptado {
			return nil
		}
		parent, err := oppRepo.GetByID(fresh.OpportunityID)
		if err != nil {
			return err
		}
		if parent == nil {
			cascade = domain.CascadeSkippedNotFound
			return nil
		}
		if err := oppRepo.MarkWon(parent.ID, fresh.Total, now); err != nil {
			return fmt.Errorf("marcar oportunidad ganada: %w", err)
		}
		cascade = domain.CascadeApplied
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.UpdateQuoteStatusResponse{
		Quote:   *quoteToResponse(updated),
		Cascade: string(cascade),
	}, nil
}

func quoteToResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	items := make([]dto.QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, dto.QuoteItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return &dto.QuoteResponse{
		ID:            q.ID,
		OpportunityID: q.OpportunityID,
		Items:         items,
		Subtotal:      q.Subtotal,
		Tax:           q.Tax,
		Total:         q.Total,
		Currency:      q.Currency,
		Status:        q.Status,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}
