package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	domfinance "github.com/gestorloja/gestor-api/internal/domain/finance"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
	"github.com/gestorloja/gestor-api/internal/domain/schedule"
)

// DashboardUseCase gera o resumo financeiro do negócio inteiro.
//
// Três buscas em paralelo (vendas, parcelas, produtos em estoque baixo);
// os agregados são dobrados em memória a partir do conjunto completo.
type DashboardUseCase struct {
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
	productRepo     repository.ProductRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	saleRepo repository.SaleRepository,
	installmentRepo repository.InstallmentRepository,
	productRepo repository.ProductRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		saleRepo:        saleRepo,
		installmentRepo: installmentRepo,
		productRepo:     productRepo,
	}
}

// GetSummary monta o DashboardSummaryDTO na data atual.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type instResult struct {
		installments []*entity.Installment
		err          error
	}
	type lowStockResult struct {
		products []*entity.Product
		err      error
	}

	salesCh := make(chan salesResult, 1)
	instCh := make(chan instResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		s, err := uc.saleRepo.ListAll()
		salesCh <- salesResult{s, err}
	}()
	go func() {
		i, err := uc.installmentRepo.ListAll()
		instCh <- instResult{i, err}
	}()
	go func() {
		p, err := uc.productRepo.ListLowStock()
		lowCh <- lowStockResult{p, err}
	}()

	salesRes := <-salesCh
	instRes := <-instCh
	lowRes := <-lowCh

	if salesRes.err != nil {
		return nil, fmt.Errorf("dashboard: vendas: %w", salesRes.err)
	}
	if instRes.err != nil {
		return nil, fmt.Errorf("dashboard: parcelas: %w", instRes.err)
	}
	if lowRes.err != nil {
		return nil, fmt.Errorf("dashboard: estoque baixo: %w", lowRes.err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todayRevenue := decimal.Zero
	monthRevenue := decimal.Zero
	clientBySale := make(map[string]string, len(salesRes.sales))
	saleVals := make([]entity.Sale, len(salesRes.sales))
	for i, s := range salesRes.sales {
		saleVals[i] = *s
		clientBySale[s.ID] = s.ClientID
		if !s.CreatedAt.Before(monthStart) {
			monthRevenue = monthRevenue.Add(s.Total)
		}
		if !s.CreatedAt.Before(todayStart) {
			todayRevenue = todayRevenue.Add(s.Total)
		}
	}

	instVals := make([]entity.Installment, len(instRes.installments))
	overdueClients := make(map[string]struct{})
	for i, p := range instRes.installments {
		instVals[i] = *p
		if schedule.EffectiveStatus(*p, now) == entity.InstallmentVencido {
			if clientID, ok := clientBySale[p.SaleID]; ok {
				overdueClients[clientID] = struct{}{}
			}
		}
	}

	summary := domfinance.Aggregate(saleVals, instVals, now)

	return &dto.DashboardSummaryDTO{
		TodayRevenue: todayRevenue.Round(2),
		MonthRevenue: monthRevenue.Round(2),
		Receivables: dto.FinanceSummaryDTO{
			TotalSpent:      summary.TotalSpent,
			TotalSalesCount: summary.TotalSalesCount,
			PaidAmount:      summary.PaidAmount,
			PendingAmount:   summary.PendingAmount,
			PendingCount:    summary.PendingCount,
			OverdueAmount:   summary.OverdueAmount,
			OverdueCount:    summary.OverdueCount,
		},
		LowStockCount:  len(lowRes.products),
		OverdueClients: len(overdueClients),
		DateLabel:      monthLabel(now),
	}, nil
}

// monthLabel devolve uma etiqueta legível do mês, ex: "Março 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
