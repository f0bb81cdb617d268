package repository

import (
	"time"

	"github.com/operix/plataforma-api/internal/domain/entity"
)

// QuoteRepository define el puerto de persistencia para Quote.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	ListByOpportunity(opportunityID string) ([]*entity.Quote, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
}
