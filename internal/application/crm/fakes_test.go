package crm_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Devuelven nil cuando el
// registro no existe, igual que los repositorios Postgres reales.

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*entity.Client)}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.CompanyID == companyID && c.TaxID == taxID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	if _, ok := r.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

type fakeOpportunityRepo struct {
	opps map[string]*entity.Opportunity
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{opps: make(map[string]*entity.Opportunity)}
}

func (r *fakeOpportunityRepo) Create(o *entity.Opportunity) error {
	r.opps[o.ID] = o
	return nil
}

func (r *fakeOpportunityRepo) GetByID(id string) (*entity.Opportunity, error) {
	return r.opps[id], nil
}

func (r *fakeOpportunityRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Opportunity, error) {
	return r.ListAllByCompany(companyID)
}

func (r *fakeOpportunityRepo) ListAllByCompany(companyID string) ([]*entity.Opportunity, error) {
	var out []*entity.Opportunity
	for _, o := range r.opps {
		if o.CompanyID == companyID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOpportunityRepo) ListRecentLeads(companyID string, n int) ([]*entity.Opportunity, error) {
	var out []*entity.Opportunity
	for _, o := range r.opps {
		if o.CompanyID == companyID && o.Status == entity.OpportunityStatusLead && len(out) < n {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOpportunityRepo) Update(o *entity.Opportunity) error {
	if _, ok := r.opps[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.opps[o.ID] = o
	return nil
}

func (r *fakeOpportunityRepo) MarkWon(id string, value decimal.Decimal, updatedAt time.Time) error {
	o, ok := r.opps[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = entity.OpportunityStatusWon
	o.EstimatedValue = value
	o.UpdatedAt = updatedAt
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
	// raceDuplicate simula la carrera entre dos "mark won" concurrentes: el
	// pre-chequeo no ve proyecto pero el insert choca con el índice único.
	raceDuplicate bool
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project)}
}

func (r *fakeProjectRepo) Create(p *entity.Project) error {
	if r.raceDuplicate {
		return domain.ErrDuplicate
	}
	if p.OpportunityID != "" {
		for _, existing := range r.projects {
			if existing.OpportunityID == p.OpportunityID {
				return domain.ErrDuplicate
			}
		}
	}
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	return r.projects[id], nil
}

func (r *fakeProjectRepo) GetByOpportunityID(opportunityID string) (*entity.Project, error) {
	for _, p := range r.projects {
		if p.OpportunityID == opportunityID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Project, error) {
	return r.ListAllByCompany(companyID)
}

func (r *fakeProjectRepo) ListAllByCompany(companyID string) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListRecentByCompany(companyID string, n int) ([]*entity.Project, error) {
	out, _ := r.ListAllByCompany(companyID)
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (r *fakeProjectRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	p, ok := r.projects[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProjectRepo) UpdateMilestones(id string, milestones []entity.Milestone, updatedAt time.Time) error {
	p, ok := r.projects[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Milestones = milestones
	p.UpdatedAt = updatedAt
	return nil
}

type fakeQuoteRepo struct {
	quotes map[string]*entity.Quote
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[string]*entity.Quote)}
}

func (r *fakeQuoteRepo) Create(q *entity.Quote) error {
	r.quotes[q.ID] = q
	return nil
}

func (r *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	return r.quotes[id], nil
}

func (r *fakeQuoteRepo) ListByOpportunity(opportunityID string) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.quotes {
		if q.OpportunityID == opportunityID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuoteRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	q, ok := r.quotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.Status = status
	q.UpdatedAt = updatedAt
	return nil
}

// fakeTxRunner ejecuta la función directamente sobre los fakes, sin
// transacción real. Sirve para afirmar sobre la secuencia patch+cascada.
type fakeTxRunner struct {
	oppRepo     *fakeOpportunityRepo
	projectRepo *fakeProjectRepo
	clientRepo  *fakeClientRepo
	quoteRepo   *fakeQuoteRepo
}

func (r *fakeTxRunner) RunOpportunity(ctx context.Context, fn func(
	oppRepo repository.OpportunityRepository,
	projectRepo repository.ProjectRepository,
	clientRepo repository.ClientRepository,
) error) error {
	return fn(r.oppRepo, r.projectRepo, r.clientRepo)
}

func (r *fakeTxRunner) RunQuote(ctx context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	oppRepo repository.OpportunityRepository,
) error) error {
	return fn(r.quoteRepo, r.oppRepo)
}
