package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/domain/entity"
)

// OpportunityRepository define el puerto de persistencia para Opportunity.
type OpportunityRepository interface {
	Create(opp *entity.Opportunity) error
	GetByID(id string) (*entity.Opportunity, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Opportunity, error)
	// ListAllByCompany escaneo completo para el motor de reportes (embudo).
	ListAllByCompany(companyID string) ([]*entity.Opportunity, error)
	// ListRecentLeads devuelve las n oportunidades en estado "lead" más recientes
	// (feed de actividad del dashboard).
	ListRecentLeads(companyID string, n int) ([]*entity.Opportunity, error)
	Update(opp *entity.Opportunity) error
	// MarkWon estampa status="won" y el valor definitivo (cascada cotización→oportunidad).
	MarkWon(id string, value decimal.Decimal, updatedAt time.Time) error
}
