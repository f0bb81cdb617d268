package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
)

func TestCanQuoteTransition(t *testing.T) {
	cases := []struct {
		name    string
		current string
		to      string
		want    bool
	}{
		{"borrador a enviado", entity.QuoteStatusBorrador, entity.QuoteStatusEnviado, true},
		{"borrador directo a aceptado prohibido", entity.QuoteStatusBorrador, entity.QuoteStatusAceptado, false},
		{"enviado a aceptado", entity.QuoteStatusEnviado, entity.QuoteStatusAceptado, true},
		{"enviado a rechazado", entity.QuoteStatusEnviado, entity.QuoteStatusRechazado, true},
		{"aceptado es terminal", entity.QuoteStatusAceptado, entity.QuoteStatusEnviado, false},
		{"rechazado es terminal", entity.QuoteStatusRechazado, entity.QuoteStatusAceptado, false},
		{"mismo estado siempre permitido", entity.QuoteStatusAceptado, entity.QuoteStatusAceptado, true},
		{"estado desconocido", "inexistente", entity.QuoteStatusEnviado, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.CanQuoteTransition(tc.current, tc.to))
		})
	}
}

func TestCanInterventionTransition(t *testing.T) {
	cases := []struct {
		name    string
		current string
		to      string
		want    bool
	}{
		{"scheduled a en_route", entity.InterventionStatusScheduled, entity.InterventionStatusEnRoute, true},
		{"scheduled salta a working", entity.InterventionStatusScheduled, entity.InterventionStatusWorking, true},
		{"scheduled directo a completed prohibido", entity.InterventionStatusScheduled, entity.InterventionStatusCompleted, false},
		{"en_route a working", entity.InterventionStatusEnRoute, entity.InterventionStatusWorking, true},
		{"working a completed", entity.InterventionStatusWorking, entity.InterventionStatusCompleted, true},
		{"completed es terminal", entity.InterventionStatusCompleted, entity.InterventionStatusWorking, false},
		{"guardado repetido en completed", entity.InterventionStatusCompleted, entity.InterventionStatusCompleted, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.CanInterventionTransition(tc.current, tc.to))
		})
	}
}

func TestCanProjectTransition(t *testing.T) {
	assert.True(t, domain.CanProjectTransition(entity.ProjectStatusPlanning, entity.ProjectStatusInProgress))
	assert.True(t, domain.CanProjectTransition(entity.ProjectStatusInProgress, entity.ProjectStatusReview))
	assert.True(t, domain.CanProjectTransition(entity.ProjectStatusReview, entity.ProjectStatusInProgress),
		"review puede devolverse a in_progress")
	assert.True(t, domain.CanProjectTransition(entity.ProjectStatusReview, entity.ProjectStatusCompleted))
	assert.False(t, domain.CanProjectTransition(entity.ProjectStatusPlanning, entity.ProjectStatusCompleted),
		"planning no salta directo a completed")
	assert.False(t, domain.CanProjectTransition(entity.ProjectStatusCompleted, entity.ProjectStatusInProgress),
		"completed es terminal")
}

func TestCanRiskTransition(t *testing.T) {
	assert.True(t, domain.CanRiskTransition(entity.RiskStatusIdentified, entity.RiskStatusMitigating))
	assert.True(t, domain.CanRiskTransition(entity.RiskStatusIdentified, entity.RiskStatusResolved))
	assert.True(t, domain.CanRiskTransition(entity.RiskStatusMitigating, entity.RiskStatusAccepted))
	assert.False(t, domain.CanRiskTransition(entity.RiskStatusResolved, entity.RiskStatusMitigating),
		"resolved es terminal")
	assert.False(t, domain.CanRiskTransition(entity.RiskStatusAccepted, entity.RiskStatusMitigating),
		"accepted es terminal")
}
