// Package finance contém os casos de uso de leitura financeira: detalhe do
// cliente e dashboard do negócio. Tudo é recalculado a partir dos registros
// persistidos a cada chamada; nenhum agregado fica em memória.
package finance

import (
	"context"
	"time"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/sales"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	domfinance "github.com/gestorloja/gestor-api/internal/domain/finance"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

// ClientSummaryUseCase monta a tela de detalhe do cliente: resumo
// financeiro, vendas (recentes primeiro) e parcelas (vencimento crescente).
type ClientSummaryUseCase struct {
	clientRepo      repository.ClientRepository
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
}

// NewClientSummaryUseCase constrói o caso de uso.
func NewClientSummaryUseCase(
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
	installmentRepo repository.InstallmentRepository,
) *ClientSummaryUseCase {
	return &ClientSummaryUseCase{
		clientRepo:      clientRepo,
		saleRepo:        saleRepo,
		installmentRepo: installmentRepo,
	}
}

// GetDetail agrega vendas e parcelas do cliente na data atual.
func (uc *ClientSummaryUseCase) GetDetail(ctx context.Context, clientID string) (*dto.ClientDetailResponse, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	salesList, err := uc.saleRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	installmentsList, err := uc.installmentRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}

	saleVals := make([]entity.Sale, len(salesList))
	for i, s := range salesList {
		saleVals[i] = *s
	}
	instVals := make([]entity.Installment, len(installmentsList))
	for i, p := range installmentsList {
		instVals[i] = *p
	}

	now := time.Now()
	summary := domfinance.Aggregate(saleVals, instVals, now)
	domfinance.SortSalesForDisplay(saleVals)
	domfinance.SortInstallmentsForDisplay(instVals)

	resp := &dto.ClientDetailResponse{
		Client: dto.ClientResponse{
			ID:        client.ID,
			Name:      client.Name,
			CpfCnpj:   client.CpfCnpj,
			Phone:     client.Phone,
			Email:     client.Email,
			Address:   client.Address,
			City:      client.City,
			CreatedAt: client.CreatedAt,
		},
		Summary: toSummaryDTO(summary),
	}
	for _, s := range saleVals {
		resp.Sales = append(resp.Sales, dto.SaleResponse{
			ID:              s.ID,
			ClientID:        s.ClientID,
			Total:           s.Total,
			PaymentMethod:   s.PaymentMethod,
			NumInstallments: s.NumInstallments,
			Status:          s.Status,
			Notes:           s.Notes,
			CreatedAt:       s.CreatedAt,
		})
	}
	for _, inst := range instVals {
		resp.Installments = append(resp.Installments, sales.ToInstallmentResponse(inst, now))
	}
	return resp, nil
}

func toSummaryDTO(s domfinance.Summary) dto.FinanceSummaryDTO {
	return dto.FinanceSummaryDTO{
		TotalSpent:      s.TotalSpent,
		TotalSalesCount: s.TotalSalesCount,
		PaidAmount:      s.PaidAmount,
		PendingAmount:   s.PendingAmount,
		PendingCount:    s.PendingCount,
		OverdueAmount:   s.OverdueAmount,
		OverdueCount:    s.OverdueCount,
	}
}
