package domain

import "github.com/operix/plataforma-api/internal/domain/entity"

// Transiciones de estado permitidas por entidad. Una transición al mismo
// estado siempre se acepta (guardados repetidos del formulario).

var quoteTransitions = map[string]map[string]bool{
	entity.QuoteStatusBorrador:  {entity.QuoteStatusEnviado: true},
	entity.QuoteStatusEnviado:   {entity.QuoteStatusAceptado: true, entity.QuoteStatusRechazado: true},
	entity.QuoteStatusAceptado:  {},
	entity.QuoteStatusRechazado: {},
}

var interventionTransitions = map[string]map[string]bool{
	entity.InterventionStatusScheduled: {entity.InterventionStatusEnRoute: true, entity.InterventionStatusWorking: true},
	entity.InterventionStatusEnRoute:   {entity.InterventionStatusWorking: true},
	entity.InterventionStatusWorking:   {entity.InterventionStatusCompleted: true},
	entity.InterventionStatusCompleted: {},
}

var projectTransitions = map[string]map[string]bool{
	entity.ProjectStatusPlanning:   {entity.ProjectStatusInProgress: true},
	entity.ProjectStatusInProgress: {entity.ProjectStatusReview: true, entity.ProjectStatusCompleted: true},
	entity.ProjectStatusReview:     {entity.ProjectStatusInProgress: true, entity.ProjectStatusCompleted: true},
	entity.ProjectStatusCompleted:  {},
}

var riskTransitions = map[string]map[string]bool{
	entity.RiskStatusIdentified: {entity.RiskStatusMitigating: true, entity.RiskStatusResolved: true, entity.RiskStatusAccepted: true},
	entity.RiskStatusMitigating: {entity.RiskStatusResolved: true, entity.RiskStatusAccepted: true},
	entity.RiskStatusResolved:   {},
	entity.RiskStatusAccepted:   {},
}

func canTransition(current, to string, table map[string]map[string]bool) bool {
	if current == to {
		return true
	}
	nexts, ok := table[current]
	if !ok {
		return false
	}
	return nexts[to]
}

// CanQuoteTransition indica si una cotización puede pasar de current a to.
func CanQuoteTransition(current, to string) bool {
	return canTransition(current, to, quoteTransitions)
}

// CanInterventionTransition indica si una intervención puede pasar de current a to.
func CanInterventionTransition(current, to string) bool {
	return canTransition(current, to, interventionTransitions)
}

// CanProjectTransition indica si un proyecto puede pasar de current a to.
func CanProjectTransition(current, to string) bool {
	return canTransition(current, to, projectTransitions)
}

// CanRiskTransition indica si un riesgo puede pasar de current a to.
func CanRiskTransition(current, to string) bool {
	return canTransition(current, to, riskTransitions)
}
