package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operix/plataforma-api/internal/application/reports"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
)

const (
	testProjectID = "proyecto-1"
	testOppID     = "oportunidad-1"
)

type reportFixture struct {
	uc       *reports.ProjectReportUseCase
	projects *memProjects
	opps     *memOpportunities
	quotes   *memQuotes
	invoices *memInvoices
	tasks    *memTasks
	risks    *memRisks
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		projects: &memProjects{},
		opps:     &memOpportunities{},
		quotes:   &memQuotes{},
		invoices: &memInvoices{},
		tasks:    &memTasks{},
		risks:    &memRisks{},
	}
	f.uc = reports.NewProjectReportUseCase(f.projects, f.opps, f.quotes, f.invoices, f.tasks, f.risks)
	f.projects.Create(&entity.Project{
		ID:            testProjectID,
		CompanyID:     testCompanyID,
		OpportunityID: testOppID,
		Title:         "Despliegue sede norte",
		Status:        entity.ProjectStatusInProgress,
		Milestones: []entity.Milestone{
			{Name: "Anticipo", Percentage: decimal.NewFromInt(50), IsPaid: true, CompletedAt: timePtr(time.Now())},
			{Name: "Entrega final", Percentage: decimal.NewFromInt(50)},
			{Name: "Garantía", Percentage: decimal.Zero},
		},
	})
	return f
}

func timePtr(t time.Time) *time.Time { return &t }

func TestProjectReport_ValorEstimadoDeOportunidad(t *testing.T) {
	f := newReportFixture()
	f.opps.Create(&entity.Opportunity{
		ID:             testOppID,
		CompanyID:      testCompanyID,
		EstimatedValue: decimal.RequireFromString("15000.00"),
		Status:         entity.OpportunityStatusWon,
	})

	out, err := f.uc.Generate(testCompanyID, testProjectID)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("15000.00").Equal(out.EstimatedValue),
		"la estimación positiva de la oportunidad manda")
}

// TestProjectReport_ValorEstimadoDeCotizacion con estimación en cero se cae
// al total de la cotización aceptada de la oportunidad de origen.
func TestProjectReport_ValorEstimadoDeCotizacion(t *testing.T) {
	f := newReportFixture()
	f.opps.Create(&entity.Opportunity{
		ID:        testOppID,
		CompanyID: testCompanyID,
		Status:    entity.OpportunityStatusWon,
	})
	f.quotes.Create(&entity.Quote{
		ID:            "q1",
		CompanyID:     testCompanyID,
		OpportunityID: testOppID,
		Total:         decimal.RequireFromString("888.00"),
		Status:        entity.QuoteStatusRechazado,
	})
	f.quotes.Create(&entity.Quote{
		ID:            "q2",
		CompanyID:     testCompanyID,
		OpportunityID: testOppID,
		Total:         decimal.RequireFromString("177.00"),
		Status:        entity.QuoteStatusAceptado,
	})

	out, err := f.uc.Generate(testCompanyID, testProjectID)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("177.00").Equal(out.EstimatedValue),
		"solo la cotización aceptada cuenta, obtenido %s", out.EstimatedValue)
}

func TestProjectReport_SinOportunidadValorCero(t *testing.T) {
	f := newReportFixture()
	f.projects.rows[0].OpportunityID = ""

	out, err := f.uc.Generate(testCompanyID, testProjectID)

	require.NoError(t, err)
	assert.True(t, out.EstimatedValue.IsZero())
}

func TestProjectReport_FacturacionAcotadaAlProyecto(t *testing.T) {
	f := newReportFixture()
	f.invoices.Create(&entity.Invoice{ID: "f1", CompanyID: testCompanyID, ProjectID: testProjectID, Amount: decimal.RequireFromString("1000.00"), Status: entity.InvoiceStatusPaid})
	f.invoices.Create(&entity.Invoice{ID: "f2", CompanyID: testCompanyID, ProjectID: testProjectID, Amount: decimal.RequireFromString("500.00"), Status: entity.InvoiceStatusPending})
	f.invoices.Create(&entity.Invoice{ID: "f3", CompanyID: testCompanyID, ProjectID: "otro-proyecto", Amount: decimal.RequireFromString("9999.00"), Status: entity.InvoiceStatusPaid})

	out, err := f.uc.Generate(testCompanyID, testProjectID)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1500.00").Equal(out.InvoicedTotal))
	assert.True(t, decimal.RequireFromString("1000.00").Equal(out.PaidTotal))
}

// TestProjectReport_TasasDeTareasSobreTodoElSistema las tasas de tareas se
// calculan sobre todas las tareas de la empresa, incluidas las de otros
// proyectos.
func TestProjectReport_TasasDeTareasSobreTodoElSistema(t *testing.T) {
	f := newReportFixture()
	f.tasks.Create(&entity.Task{ID: "t1", CompanyID: testCompanyID, ProjectID: testProjectID, Type: entity.TaskTypeFeature, StoryPoints: 5, Status: entity.TaskStatusDone})
	f.tasks.Create(&entity.Task{ID: "t2", CompanyID: testCompanyID, ProjectID: "otro-proyecto", Type: entity.TaskTypeBug, StoryPoints: 3, Status: entity.TaskStatusTodo})
	f.tasks.Create(&entity.Task{ID: "t3", CompanyID: testCompanyID, ProjectID: "", Type: entity.TaskTypeChore, StoryPoints: 2, Status: entity.TaskStatusDone})

	out, err := f.uc.Generate(testCompanyID, testProjectID)

	require.NoError(t, err)
	// 2 de 3 done → 66.67; 1 de 3 bug → 33.33
	assert.True(t, decimal.RequireFromString("66.67").Equal(out.TaskCompletionRate),
		"obtenido %s", out.TaskCompletionRate)
	assert.True(t, decimal.RequireFromString("33.33").Equal(out.BugRate),
		"obtenido %s", out.BugRate)
	assert.Equal(t, 7, out.StoryPointsDone)
	assert.Equal(t, 10, out.StoryPointsTotal)
}

// TestProjectReport_VelocidadSoloSprintsCerrados la velocidad promedia los
// puntos completados por sprint cerrado; los activos no entran en el divisor.
func TestProjectReport_VelocidadSoloSprintsCerrados(t *testing.T) {
	f := newReportFixture()
	f.tasks.CreateSprint(&entity.Sprint{ID: "s1", CompanyID: testCompanyID, Status: entity.SprintStatusClosed})
	f.tasks.CreateSprint(&entity.Sprint{ID: "s2", CompanyID: testCompanyID, Status: entity.SprintStatusClosed})
	f.tasks.CreateSprint(&entity.Sprint{ID: "s3", CompanyID: testCompanyID, Status: entity.SprintStatusActive})

	f.tasks.Create(&entity.Task{ID: "t1", CompanyID: testCompanyID, SprintID: "s1", StoryPoints: 8, Status: entity.TaskStatusDone})
	f.tasks.Create(&entity.Task{ID: "t2", CompanyID: testCompanyID, SprintID: "s1", StoryPoints: 5, Status: entity.TaskStatusTodo})
	f.tasks.Create(&entity.Task{ID: "t3", CompanyID: testCompanyID, SprintID: "s2", StoryPoints: 5, Status: entity.TaskStatusDone})
	f.tasks.Create(&entity.Task{ID: "t4", CompanyID: testCompanyID, SprintID: "s3", StoryPoints: 13, Status: entity.TaskStatusDone})

	out, err := f.uc.Generate(testCompanyID, testProjectID)

	require.NoError(t, err)
	// (8 + 5) / 2 sprints cerrados = 6.50
	assert.True(t, decimal.RequireFromString("6.50").Equal(out.SprintVelocity),
		"obtenido %s", out.SprintVelocity)
}

// TestProjectReport_AdherenciaNilSinDatos sin tareas completadas con ambas
// fechas la adherencia es nil, no cero: el caller distingue "sin datos" de
// "0% a tiempo".
func TestProjectReport_AdherenciaNilSinDatos(t *testing.T) {
	f := newReportFixture()
	due := time.Now()
	f.tasks.Create(&entity.Task{ID: "t1", CompanyID: testCompanyID, Status: entity.TaskStatusTodo, DueDate: &due})
	f.tasks.Create(&entity.Task{ID: "t2", CompanyID: testCompanyID, Status: entity.TaskStatusDone})

	out, err := f.uc.Generate(testCompanyID, testProjectID)

	require.NoError(t, err)
	assert.Nil(t, out.ScheduleAdherence)
}

func TestProjectReport_AdherenciaTresDeCuatro(t *testing.T) {
	f := newReportFixture()
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	early := due.Add(-24 * time.Hour)
	late := due.Add(24 * time.Hour)

	f.tasks.Create(&entity.Task{ID: "t1", CompanyID: testCompanyID, Status: entity.TaskStatusDone, DueDate: &due, CompletedAt: &early})
	f.tasks.Create(&entity.Task{ID: "t2", CompanyID: testCompanyID, Status: entity.TaskStatusDone, DueDate: &due, CompletedAt: &due})
	f.tasks.Create(&entity.Task{ID: "t3", CompanyID: testCompanyID, Status: entity.TaskStatusDone, DueDate: &due, CompletedAt: &early})
	f.tasks.Create(&entity.Task{ID: "t4", CompanyID: testCompanyID, Status: entity.TaskStatusDone, DueDate: &due, CompletedAt: &late})

	out, err := f.uc.Generate(testCompanyID, testProjectID)

	require.NoError(t, err)
	require.NotNil(t, out.ScheduleAdherence)
	// 3 de 4 a tiempo (terminar el mismo día cuenta) → 75.00
	assert.True(t, decimal.RequireFromString("75.00").Equal(*out.ScheduleAdherence),
		"obtenido %s", out.ScheduleAdherence)
}

// TestProjectReport_TasasEnterasDeRiesgosEHitos riesgos e hitos van a entero,
// no a 2 decimales: 1 de 3 → 33, no 33.33.
func TestProjectReport_TasasEnterasDeRiesgosEHitos(t *testing.T) {
	f := newReportFixture()
	f.risks.Create(&entity.ProjectRisk{ID: "r1", CompanyID: testCompanyID, ProjectID: testProjectID, Status: entity.RiskStatusResolved})
	f.risks.Create(&entity.ProjectRisk{ID: "r2", CompanyID: testCompanyID, ProjectID: testProjectID, Status: entity.RiskStatusIdentified})
	f.risks.Create(&entity.ProjectRisk{ID: "r3", CompanyID: testCompanyID, ProjectID: testProjectID, Status: entity.RiskStatusMitigating})
	f.risks.Create(&entity.ProjectRisk{ID: "r4", CompanyID: testCompanyID, ProjectID: "otro-proyecto", Status: entity.RiskStatusResolved})

	out, err := f.uc.Generate(testCompanyID, testProjectID)

	require.NoError(t, err)
	assert.Equal(t, 33, out.RiskResolutionRate, "1 de 3 riesgos del proyecto resuelto")
	// Hitos del fixture: 1 de 3 completado, 1 de 3 pagado.
	assert.Equal(t, 33, out.MilestoneCompletionRate)
	assert.Equal(t, 33, out.MilestonePaymentRate)
}

func TestProjectReport_ProyectoDeOtraEmpresa(t *testing.T) {
	f := newReportFixture()

	_, err := f.uc.Generate("empresa-ajena", testProjectID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
