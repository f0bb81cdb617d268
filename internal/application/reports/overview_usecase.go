package reports

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/operix/plataforma-api/internal/application/dto"
	"github.com/operix/plataforma-api/internal/domain/entity"
	"github.com/operix/plataforma-api/internal/domain/repository"
)

// OverviewUseCase calcula las métricas globales de negocio: embudo de ventas,
// resumen de proyectos, rollup financiero y valorización de inventario.
type OverviewUseCase struct {
	oppRepo     repository.OpportunityRepository
	projectRepo repository.ProjectRepository
	invoiceRepo repository.InvoiceRepository
	hwRepo      repository.HardwareRepository
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(
	oppRepo repository.OpportunityRepository,
	projectRepo repository.ProjectRepository,
	invoiceRepo repository.InvoiceRepository,
	hwRepo repository.HardwareRepository,
) *OverviewUseCase {
	return &OverviewUseCase{
		oppRepo:     oppRepo,
		projectRepo: projectRepo,
		invoiceRepo: invoiceRepo,
		hwRepo:      hwRepo,
	}
}

// GetMetrics construye el OverviewMetricsDTO de la empresa con un escaneo
// completo por colección y reducción en memoria.
func (uc *OverviewUseCase) GetMetrics(companyID string) (*dto.OverviewMetricsDTO, error) {
	opps, err := uc.oppRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("overview: oportunidades: %w", err)
	}
	projects, err := uc.projectRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("overview: proyectos: %w", err)
	}
	invoices, err := uc.invoiceRepo.ListAllByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("overview: facturas: %w", err)
	}
	inventory, err := uc.inventoryValuation(companyID)
	if err != nil {
		return nil, fmt.Errorf("overview: inventario: %w", err)
	}

	return &dto.OverviewMetricsDTO{
		Funnel:    buildFunnel(opps),
		Projects:  buildProjectRollup(projects),
		Finance:   buildFinanceRollup(invoices),
		Inventory: *inventory,
	}, nil
}

func buildFunnel(opps []*entity.Opportunity) dto.FunnelDTO {
	funnel := dto.FunnelDTO{
		WonValue:      decimal.Zero,
		ByServiceUnit: make(map[string]int),
	}
	for _, o := range opps {
		switch o.Status {
		case entity.OpportunityStatusWon:
			funnel.WonCount++
			funnel.WonValue = funnel.WonValue.Add(o.EstimatedValue)
		case entity.OpportunityStatusLost:
			// las perdidas no cuentan como abiertas
		default:
			funnel.OpenCount++
		}
		unit := o.ServiceUnit
		if unit == "" {
			unit = "otros"
		}
		funnel.ByServiceUnit[unit]++
	}
	return funnel
}

func buildProjectRollup(projects []*entity.Project) dto.ProjectRollupDTO {
	rollup := dto.ProjectRollupDTO{Total: len(projects)}
	for _, p := range projects {
		if p.Status == entity.ProjectStatusCompleted {
			rollup.Completed++
		} else {
			rollup.Active++
		}
	}
	return rollup
}

func buildFinanceRollup(invoices []*entity.Invoice) dto.FinanceRollupDTO {
	rollup := dto.FinanceRollupDTO{
		Invoiced:  decimal.Zero,
		Collected: decimal.Zero,
		Pending:   decimal.Zero,
	}
	for _, inv := range invoices {
		rollup.Invoiced = rollup.Invoiced.Add(inv.Amount)
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			rollup.Collected = rollup.Collected.Add(inv.Amount)
		case entity.InvoiceStatusPending:
			rollup.Pending = rollup.Pending.Add(inv.Amount)
		}
	}
	return rollup
}

// inventoryValuation valoriza el stock: por cada SKU, unidades in_stock ×
// costo unitario; lowStock cuando las unidades in_stock quedan en o bajo el
// mínimo configurado del SKU.
func (uc *OverviewUseCase) inventoryValuation(companyID string) (*dto.InventoryValuationDTO, error) {
	items, err := uc.hwRepo.ListItemsByCompany(companyID)
	if err != nil {
		return nil, err
	}
	serials, err := uc.hwRepo.ListSerialsByCompany(companyID)
	if err != nil {
		return nil, err
	}

	inStockByHardware := make(map[string]int)
	for _, sn := range serials {
		if sn.Status == entity.SerialStatusInStock {
			inStockByHardware[sn.HardwareID]++
		}
	}

	valuation := dto.InventoryValuationDTO{
		TotalValue: decimal.Zero,
		Items:      make([]dto.InventoryItemValuationDTO, 0, len(items)),
	}
	for _, item := range items {
		inStock := inStockByHardware[item.ID]
		value := item.CostPrice.Mul(decimal.NewFromInt(int64(inStock)))
		valuation.TotalValue = valuation.TotalValue.Add(value)
		valuation.Items = append(valuation.Items, dto.InventoryItemValuationDTO{
			SKU:      item.SKU,
			Name:     item.Name,
			InStock:  inStock,
			Value:    value,
			LowStock: inStock <= item.MinStock,
		})
	}
	return &valuation, nil
}
