package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operix/plataforma-api/internal/application/reports"
	"github.com/operix/plataforma-api/internal/domain/entity"
)

func newOverviewFixture() (*reports.OverviewUseCase, *memOpportunities, *memProjects, *memInvoices, *memHardware) {
	opps := &memOpportunities{}
	projects := &memProjects{}
	invoices := &memInvoices{}
	hw := &memHardware{}
	return reports.NewOverviewUseCase(opps, projects, invoices, hw), opps, projects, invoices, hw
}

func TestOverview_Embudo(t *testing.T) {
	uc, opps, _, _, _ := newOverviewFixture()

	opps.Create(&entity.Opportunity{ID: "o1", CompanyID: testCompanyID, Status: entity.OpportunityStatusWon, EstimatedValue: decimal.RequireFromString("100.00"), ServiceUnit: entity.ServiceUnitDigital})
	opps.Create(&entity.Opportunity{ID: "o2", CompanyID: testCompanyID, Status: entity.OpportunityStatusWon, EstimatedValue: decimal.RequireFromString("250.00"), ServiceUnit: entity.ServiceUnitInfra})
	opps.Create(&entity.Opportunity{ID: "o3", CompanyID: testCompanyID, Status: entity.OpportunityStatusLead, ServiceUnit: entity.ServiceUnitInfra})
	opps.Create(&entity.Opportunity{ID: "o4", CompanyID: testCompanyID, Status: entity.OpportunityStatusNegotiation})
	opps.Create(&entity.Opportunity{ID: "o5", CompanyID: testCompanyID, Status: entity.OpportunityStatusLost, ServiceUnit: entity.ServiceUnitDigital})

	out, err := uc.GetMetrics(testCompanyID)

	require.NoError(t, err)
	assert.Equal(t, 2, out.Funnel.WonCount)
	assert.True(t, decimal.RequireFromString("350.00").Equal(out.Funnel.WonValue))
	assert.Equal(t, 2, out.Funnel.OpenCount, "las perdidas no cuentan como abiertas")
	assert.Equal(t, 2, out.Funnel.ByServiceUnit[entity.ServiceUnitDigital])
	assert.Equal(t, 2, out.Funnel.ByServiceUnit[entity.ServiceUnitInfra])
	assert.Equal(t, 1, out.Funnel.ByServiceUnit["otros"], "sin unidad cae en el bucket otros")
}

func TestOverview_RollupsProyectosYFinanzas(t *testing.T) {
	uc, _, projects, invoices, _ := newOverviewFixture()

	projects.Create(&entity.Project{ID: "p1", CompanyID: testCompanyID, Status: entity.ProjectStatusCompleted})
	projects.Create(&entity.Project{ID: "p2", CompanyID: testCompanyID, Status: entity.ProjectStatusPlanning})
	projects.Create(&entity.Project{ID: "p3", CompanyID: testCompanyID, Status: entity.ProjectStatusReview})

	invoices.Create(&entity.Invoice{ID: "f1", CompanyID: testCompanyID, Amount: decimal.RequireFromString("100.00"), Status: entity.InvoiceStatusPaid})
	invoices.Create(&entity.Invoice{ID: "f2", CompanyID: testCompanyID, Amount: decimal.RequireFromString("40.00"), Status: entity.InvoiceStatusPending})
	invoices.Create(&entity.Invoice{ID: "f3", CompanyID: testCompanyID, Amount: decimal.RequireFromString("60.00"), Status: entity.InvoiceStatusOverdue})

	out, err := uc.GetMetrics(testCompanyID)

	require.NoError(t, err)
	assert.Equal(t, 3, out.Projects.Total)
	assert.Equal(t, 2, out.Projects.Active)
	assert.Equal(t, 1, out.Projects.Completed)

	assert.True(t, decimal.RequireFromString("200.00").Equal(out.Finance.Invoiced),
		"lo vencido también cuenta en lo facturado")
	assert.True(t, decimal.RequireFromString("100.00").Equal(out.Finance.Collected))
	assert.True(t, decimal.RequireFromString("40.00").Equal(out.Finance.Pending))
}

// TestOverview_ValorizacionInventario por SKU: unidades in_stock × costo,
// con bandera lowStock cuando el stock queda en o bajo el mínimo.
func TestOverview_ValorizacionInventario(t *testing.T) {
	uc, _, _, _, hw := newOverviewFixture()

	hw.CreateItem(&entity.HardwareItem{ID: "h1", CompanyID: testCompanyID, SKU: "RT-AX-01", Name: "Router", CostPrice: decimal.RequireFromString("850.00"), MinStock: 1})
	hw.CreateItem(&entity.HardwareItem{ID: "h2", CompanyID: testCompanyID, SKU: "SW-24P-01", Name: "Switch", CostPrice: decimal.RequireFromString("1200.00"), MinStock: 2})

	hw.CreateSerial(&entity.SerialNumber{ID: "u1", CompanyID: testCompanyID, HardwareID: "h1", Serial: "A1", Status: entity.SerialStatusInStock})
	hw.CreateSerial(&entity.SerialNumber{ID: "u2", CompanyID: testCompanyID, HardwareID: "h1", Serial: "A2", Status: entity.SerialStatusInStock})
	hw.CreateSerial(&entity.SerialNumber{ID: "u3", CompanyID: testCompanyID, HardwareID: "h1", Serial: "A3", Status: entity.SerialStatusInstalled})
	hw.CreateSerial(&entity.SerialNumber{ID: "u4", CompanyID: testCompanyID, HardwareID: "h2", Serial: "B1", Status: entity.SerialStatusInStock})

	out, err := uc.GetMetrics(testCompanyID)

	require.NoError(t, err)
	require.Len(t, out.Inventory.Items, 2)

	router := out.Inventory.Items[0]
	assert.Equal(t, "RT-AX-01", router.SKU)
	assert.Equal(t, 2, router.InStock, "las unidades instaladas no valorizan")
	assert.True(t, decimal.RequireFromString("1700.00").Equal(router.Value))
	assert.False(t, router.LowStock)

	sw := out.Inventory.Items[1]
	assert.Equal(t, 1, sw.InStock)
	assert.True(t, sw.LowStock, "1 unidad ≤ mínimo 2")

	assert.True(t, decimal.RequireFromString("2900.00").Equal(out.Inventory.TotalValue))
}

func TestOverview_SkuSinSerialesValorizaCero(t *testing.T) {
	uc, _, _, _, hw := newOverviewFixture()
	hw.CreateItem(&entity.HardwareItem{ID: "h1", CompanyID: testCompanyID, SKU: "RT-AX-01", CostPrice: decimal.RequireFromString("850.00"), MinStock: 1})

	out, err := uc.GetMetrics(testCompanyID)

	require.NoError(t, err)
	require.Len(t, out.Inventory.Items, 1)
	assert.True(t, out.Inventory.Items[0].Value.IsZero())
	assert.True(t, out.Inventory.Items[0].LowStock, "0 in_stock siempre es stock bajo")
}
