package fieldservice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/application/fieldservice"
	"github.com/operix/plataforma-api/internal/domain"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/pkg/logger"
)

const (
	testCompanyID = "empresa-1"
	testProjectID = "proyecto-1"
	testIvID      = "intervencion-1"
)

// Fakes en memoria de los puertos que usa la conciliación.

type fakeInterventionRepo struct {
	ivs map[string]*entity.FieldIntervention
}

func (r *fakeInterventionRepo) Create(iv *entity.FieldIntervention) error {
	r.ivs[iv.ID] = iv
	return nil
}

func (r *fakeInterventionRepo) GetByID(id string) (*entity.FieldIntervention, error) {
	return r.ivs[id], nil
}

func (r *fakeInterventionRepo) ListByProject(projectID string) ([]*entity.FieldIntervention, error) {
	var out []*entity.FieldIntervention
	for _, iv := range r.ivs {
		if iv.ProjectID == projectID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r *fakeInterventionRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.FieldIntervention, error) {
	var out []*entity.FieldIntervention
	for _, iv := range r.ivs {
		if iv.CompanyID == companyID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r *fakeInterventionRepo) UpdateStatus(id, status string, serials, photos []string, updatedAt time.Time) error {
	iv, ok := r.ivs[id]
	if !ok {
		return domain.ErrNotFound
	}
	iv.Status = status
	if serials != nil {
		iv.HardwareSerials = serials
	}
	if photos != nil {
		iv.EvidencePhotosURL = photos
	}
	iv.UpdatedAt = updatedAt
	return nil
}

type fakeHardwareRepo struct {
	items   map[string]*entity.HardwareItem
	serials map[string]*entity.SerialNumber // clave: ID de la unidad
	// installRace fuerza Install a devolver false (otro proceso ganó el UPDATE).
	installRace bool
}

func (r *fakeHardwareRepo) CreateItem(item *entity.HardwareItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeHardwareRepo) GetItemByID(id string) (*entity.HardwareItem, error) {
	return r.items[id], nil
}

func (r *fakeHardwareRepo) ListItemsByCompany(companyID string) ([]*entity.HardwareItem, error) {
	var out []*entity.HardwareItem
	for _, it := range r.items {
		if it.CompanyID == companyID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeHardwareRepo) CreateSerial(sn *entity.SerialNumber) error {
	r.serials[sn.ID] = sn
	return nil
}

func (r *fakeHardwareRepo) GetBySerial(companyID, serial string) (*entity.SerialNumber, error) {
	for _, sn := range r.serials {
		if sn.CompanyID == companyID && sn.Serial == serial {
			return sn, nil
		}
	}
	return nil, nil
}

func (r *fakeHardwareRepo) ListSerialsByCompany(companyID string) ([]*entity.SerialNumber, error) {
	var out []*entity.SerialNumber
	for _, sn := range r.serials {
		if sn.CompanyID == companyID {
			out = append(out, sn)
		}
	}
	return out, nil
}

func (r *fakeHardwareRepo) Install(serialID, projectID string, updatedAt time.Time) (bool, error) {
	if r.installRace {
		return false, nil
	}
	sn, ok := r.serials[serialID]
	if !ok || sn.Status != entity.SerialStatusInStock {
		return false, nil
	}
	sn.Status = entity.SerialStatusInstalled
	sn.AssignedProjectID = projectID
	sn.UpdatedAt = updatedAt
	return true, nil
}

type fakeProjectGetter struct {
	projects map[string]*entity.Project
}

func (r *fakeProjectGetter) Create(p *entity.Project) error { r.projects[p.ID] = p; return nil }
func (r *fakeProjectGetter) GetByID(id string) (*entity.Project, error) {
	return r.projects[id], nil
}
func (r *fakeProjectGetter) GetByOpportunityID(opportunityID string) (*entity.Project, error) {
	return nil, nil
}
func (r *fakeProjectGetter) ListByCompany(companyID string, limit, offset int) ([]*entity.Project, error) {
	return nil, nil
}
func (r *fakeProjectGetter) ListAllByCompany(companyID string) ([]*entity.Project, error) {
	return nil, nil
}
func (r *fakeProjectGetter) ListRecentByCompany(companyID string, n int) ([]*entity.Project, error) {
	return nil, nil
}
func (r *fakeProjectGetter) UpdateStatus(id, status string, updatedAt time.Time) error { return nil }
func (r *fakeProjectGetter) UpdateMilestones(id string, milestones []entity.Milestone, updatedAt time.Time) error {
	return nil
}

func newFixture() (*fieldservice.InterventionUseCase, *fakeInterventionRepo, *fakeHardwareRepo) {
	ivRepo := &fakeInterventionRepo{ivs: make(map[string]*entity.FieldIntervention)}
	hwRepo := &fakeHardwareRepo{
		items:   make(map[string]*entity.HardwareItem),
		serials: make(map[string]*entity.SerialNumber),
	}
	projectRepo := &fakeProjectGetter{projects: make(map[string]*entity.Project)}
	log := logger.New(logger.Config{Env: "test", Level: "error", Service: "test"})

	projectRepo.Create(&entity.Project{
		ID:        testProjectID,
		CompanyID: testCompanyID,
		Title:     "Despliegue sede norte",
		Status:    entity.ProjectStatusInProgress,
	})
	ivRepo.Create(&entity.FieldIntervention{
		ID:           testIvID,
		CompanyID:    testCompanyID,
		ProjectID:    testProjectID,
		TechnicianID: "tecnico-1",
		Type:         entity.InterventionTypeInstalacion,
		Status:       entity.InterventionStatusWorking,
	})
	hwRepo.CreateSerial(&entity.SerialNumber{
		ID:         "unidad-1",
		CompanyID:  testCompanyID,
		Serial:     "RTAX-0001",
		HardwareID: "hw-1",
		Status:     entity.SerialStatusInStock,
	})
	hwRepo.CreateSerial(&entity.SerialNumber{
		ID:                "unidad-2",
		CompanyID:         testCompanyID,
		Serial:            "RTAX-0002",
		HardwareID:        "hw-1",
		Status:            entity.SerialStatusInstalled,
		AssignedProjectID: "otro-proyecto",
	})

	return fieldservice.NewInterventionUseCase(ivRepo, hwRepo, projectRepo, log), ivRepo, hwRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Conciliación de seriales al completar: cada serial se resuelve de forma
// independiente y el patch de la intervención nunca se revierte por el
// desenlace del inventario.
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_CompletadaInstalaSeriales(t *testing.T) {
	uc, _, hwRepo := newFixture()

	out, err := uc.UpdateStatus(testCompanyID, testIvID, dto.UpdateInterventionStatusRequest{
		Status:          entity.InterventionStatusCompleted,
		HardwareSerials: []string{"RTAX-0001"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.InterventionStatusCompleted, out.Intervention.Status)
	require.Len(t, out.Serials, 1)
	assert.Equal(t, "RTAX-0001", out.Serials[0].Serial)
	assert.Equal(t, string(domain.CascadeApplied), out.Serials[0].Result)

	sn, _ := hwRepo.GetBySerial(testCompanyID, "RTAX-0001")
	assert.Equal(t, entity.SerialStatusInstalled, sn.Status)
	assert.Equal(t, testProjectID, sn.AssignedProjectID,
		"la unidad instalada queda asignada al proyecto de la intervención")
}

func TestUpdateStatus_SerialesMixtosResuelvenIndependiente(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.UpdateStatus(testCompanyID, testIvID, dto.UpdateInterventionStatusRequest{
		Status:          entity.InterventionStatusCompleted,
		HardwareSerials: []string{"RTAX-0001", "RTAX-0002", "NO-EXISTE"},
	})

	require.NoError(t, err)
	require.Len(t, out.Serials, 3, "un desenlace por serial solicitado, en orden")
	assert.Equal(t, string(domain.CascadeApplied), out.Serials[0].Result)
	assert.Equal(t, string(domain.CascadeSkippedAlreadyExists), out.Serials[1].Result,
		"una unidad ya instalada se salta, no es error")
	assert.Equal(t, string(domain.CascadeSkippedNotFound), out.Serials[2].Result)
}

func TestUpdateStatus_CarreraDeInstalacion(t *testing.T) {
	uc, _, hwRepo := newFixture()
	hwRepo.installRace = true

	out, err := uc.UpdateStatus(testCompanyID, testIvID, dto.UpdateInterventionStatusRequest{
		Status:          entity.InterventionStatusCompleted,
		HardwareSerials: []string{"RTAX-0001"},
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.CascadeSkippedAlreadyExists), out.Serials[0].Result,
		"perder el UPDATE condicional se reporta como ya-instalado")
	assert.Equal(t, entity.InterventionStatusCompleted, out.Intervention.Status,
		"el patch de la intervención sobrevive al skip")
}

func TestUpdateStatus_CompletarSinSerialesNoConcilia(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.UpdateStatus(testCompanyID, testIvID, dto.UpdateInterventionStatusRequest{
		Status: entity.InterventionStatusCompleted,
	})

	require.NoError(t, err)
	assert.Empty(t, out.Serials)
}

func TestUpdateStatus_EstadoIntermedioNoConcilia(t *testing.T) {
	uc, ivRepo, hwRepo := newFixture()
	ivRepo.ivs[testIvID].Status = entity.InterventionStatusEnRoute

	out, err := uc.UpdateStatus(testCompanyID, testIvID, dto.UpdateInterventionStatusRequest{
		Status:          entity.InterventionStatusWorking,
		HardwareSerials: []string{"RTAX-0001"},
	})

	require.NoError(t, err)
	assert.Empty(t, out.Serials, "solo \"completed\" dispara la conciliación")

	sn, _ := hwRepo.GetBySerial(testCompanyID, "RTAX-0001")
	assert.Equal(t, entity.SerialStatusInStock, sn.Status)
}

func TestUpdateStatus_TransicionInvalida(t *testing.T) {
	uc, ivRepo, _ := newFixture()
	ivRepo.ivs[testIvID].Status = entity.InterventionStatusScheduled

	_, err := uc.UpdateStatus(testCompanyID, testIvID, dto.UpdateInterventionStatusRequest{
		Status: entity.InterventionStatusCompleted,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_OtraEmpresa(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.UpdateStatus("empresa-ajena", testIvID, dto.UpdateInterventionStatusRequest{
		Status: entity.InterventionStatusCompleted,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ProyectoDeOtraEmpresa(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create("empresa-ajena", dto.CreateInterventionRequest{
		ProjectID:    testProjectID,
		TechnicianID: "tecnico-1",
		Type:         entity.InterventionTypeInstalacion,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
