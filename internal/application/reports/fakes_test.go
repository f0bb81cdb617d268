package reports_test

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de lectura del motor de reportes. Los
// listados "recientes" ordenan por CreatedAt descendente, igual que los
// repositorios Postgres reales.

type memProjects struct {
	rows []*entity.Project
}

func (r *memProjects) Create(p *entity.Project) error { r.rows = append(r.rows, p); return nil }

func (r *memProjects) GetByID(id string) (*entity.Project, error) {
	for _, p := range r.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProjects) GetByOpportunityID(opportunityID string) (*entity.Project, error) {
	for _, p := range r.rows {
		if p.OpportunityID == opportunityID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProjects) ListByCompany(companyID string, limit, offset int) ([]*entity.Project, error) {
	return r.ListAllByCompany(companyID)
}

func (r *memProjects) ListAllByCompany(companyID string) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.rows {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProjects) ListRecentByCompany(companyID string, n int) ([]*entity.Project, error) {
	out, _ := r.ListAllByCompany(companyID)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (r *memProjects) UpdateStatus(id, status string, updatedAt time.Time) error { return nil }
func (r *memProjects) UpdateMilestones(id string, milestones []entity.Milestone, updatedAt time.Time) error {
	return nil
}

type memTickets struct {
	rows []*entity.Ticket
}

func (r *memTickets) Create(t *entity.Ticket) error { r.rows = append(r.rows, t); return nil }

func (r *memTickets) ListAllByCompany(companyID string) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range r.rows {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTickets) ListRecentByCompany(companyID string, n int) ([]*entity.Ticket, error) {
	out, _ := r.ListAllByCompany(companyID)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

type memInvoices struct {
	rows []*entity.Invoice
}

func (r *memInvoices) Create(inv *entity.Invoice) error { r.rows = append(r.rows, inv); return nil }

func (r *memInvoices) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.rows {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *memInvoices) ListAllByCompany(companyID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.rows {
		if inv.CompanyID == companyID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *memInvoices) ListByProject(projectID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.rows {
		if inv.ProjectID == projectID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *memInvoices) ListRecentByCompany(companyID string, n int) ([]*entity.Invoice, error) {
	out, _ := r.ListAllByCompany(companyID)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

type memOpportunities struct {
	rows []*entity.Opportunity
}

func (r *memOpportunities) Create(o *entity.Opportunity) error { r.rows = append(r.rows, o); return nil }

func (r *memOpportunities) GetByID(id string) (*entity.Opportunity, error) {
	for _, o := range r.rows {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *memOpportunities) ListByCompany(companyID string, limit, offset int) ([]*entity.Opportunity, error) {
	return r.ListAllByCompany(companyID)
}

func (r *memOpportunities) ListAllByCompany(companyID string) ([]*entity.Opportunity, error) {
	var out []*entity.Opportunity
	for _, o := range r.rows {
		if o.CompanyID == companyID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOpportunities) ListRecentLeads(companyID string, n int) ([]*entity.Opportunity, error) {
	var out []*entity.Opportunity
	for _, o := range r.rows {
		if o.CompanyID == companyID && o.Status == entity.OpportunityStatusLead {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (r *memOpportunities) Update(o *entity.Opportunity) error { return nil }
func (r *memOpportunities) MarkWon(id string, value decimal.Decimal, updatedAt time.Time) error {
	return nil
}

type memQuotes struct {
	rows []*entity.Quote
}

func (r *memQuotes) Create(q *entity.Quote) error { r.rows = append(r.rows, q); return nil }

func (r *memQuotes) GetByID(id string) (*entity.Quote, error) {
	for _, q := range r.rows {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (r *memQuotes) ListByOpportunity(opportunityID string) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.rows {
		if q.OpportunityID == opportunityID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuotes) UpdateStatus(id, status string, updatedAt time.Time) error { return nil }

type memTasks struct {
	tasks   []*entity.Task
	sprints []*entity.Sprint
}

func (r *memTasks) Create(t *entity.Task) error { r.tasks = append(r.tasks, t); return nil }

func (r *memTasks) ListAllByCompany(companyID string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTasks) CreateSprint(s *entity.Sprint) error { r.sprints = append(r.sprints, s); return nil }

func (r *memTasks) ListSprintsByCompany(companyID string) ([]*entity.Sprint, error) {
	var out []*entity.Sprint
	for _, s := range r.sprints {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memRisks struct {
	rows []*entity.ProjectRisk
}

func (r *memRisks) Create(risk *entity.ProjectRisk) error { r.rows = append(r.rows, risk); return nil }

func (r *memRisks) GetByID(id string) (*entity.ProjectRisk, error) {
	for _, risk := range r.rows {
		if risk.ID == id {
			return risk, nil
		}
	}
	return nil, nil
}

func (r *memRisks) ListByProject(projectID string) ([]*entity.ProjectRisk, error) {
	var out []*entity.ProjectRisk
	for _, risk := range r.rows {
		if risk.ProjectID == projectID {
			out = append(out, risk)
		}
	}
	return out, nil
}

func (r *memRisks) UpdateStatus(id, status string, updatedAt time.Time) error { return nil }

type memHardware struct {
	items   []*entity.HardwareItem
	serials []*entity.SerialNumber
}

func (r *memHardware) CreateItem(item *entity.HardwareItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *memHardware) GetItemByID(id string) (*entity.HardwareItem, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *memHardware) ListItemsByCompany(companyID string) ([]*entity.HardwareItem, error) {
	var out []*entity.HardwareItem
	for _, it := range r.items {
		if it.CompanyID == companyID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memHardware) CreateSerial(sn *entity.SerialNumber) error {
	r.serials = append(r.serials, sn)
	return nil
}

func (r *memHardware) GetBySerial(companyID, serial string) (*entity.SerialNumber, error) {
	for _, sn := range r.serials {
		if sn.CompanyID == companyID && sn.Serial == serial {
			return sn, nil
		}
	}
	return nil, nil
}

func (r *memHardware) ListSerialsByCompany(companyID string) ([]*entity.SerialNumber, error) {
	var out []*entity.SerialNumber
	for _, sn := range r.serials {
		if sn.CompanyID == companyID {
			out = append(out, sn)
		}
	}
	return out, nil
}

func (r *memHardware) Install(serialID, projectID string, updatedAt time.Time) (bool, error) {
	return false, nil
}
