package sales

import (
	"context"
	"time"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
	"github.com/gestorloja/gestor-api/internal/domain/schedule"
)

const dateLayout = "2006-01-02"

// InstallmentUseCase ações sobre parcelas após a liquidação: quitar,
// cancelar e listar com status efetivo.
type InstallmentUseCase struct {
	installmentRepo repository.InstallmentRepository
}

// NewInstallmentUseCase constrói o caso de uso.
func NewInstallmentUseCase(installmentRepo repository.InstallmentRepository) *InstallmentUseCase {
	return &InstallmentUseCase{installmentRepo: installmentRepo}
}

// Pay marca a parcela como PAGA na data informada (hoje, se vazia).
// Parcelas já pagas ou canceladas não podem ser quitadas de novo.
func (uc *InstallmentUseCase) Pay(ctx context.Context, id string, in dto.PayInstallmentRequest) (*dto.InstallmentResponse, error) {
	inst, err := uc.installmentRepo.GetByID(id)
	if err != nil || inst == nil {
		return nil, domain.ErrNotFound
	}
	if inst.Status == entity.InstallmentPago || inst.Status == entity.InstallmentCancelado {
		return nil, domain.ErrConflict
	}

	paidDate := time.Now()
	if in.PaidDate != "" {
		paidDate, err = time.Parse(dateLayout, in.PaidDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	method := in.PaymentMethod
	if method == "" {
		method = inst.PaymentMethod
	}
	if err := uc.installmentRepo.MarkPaid(id, paidDate, method); err != nil {
		return nil, err
	}

	inst.Status = entity.InstallmentPago
	inst.PaidDate = &paidDate
	inst.PaymentMethod = method
	resp := ToInstallmentResponse(*inst, time.Now())
	return &resp, nil
}

// Cancel marca a parcela como CANCELADA (sai de todos os agregados).
func (uc *InstallmentUseCase) Cancel(ctx context.Context, id string) error {
	inst, err := uc.installmentRepo.GetByID(id)
	if err != nil || inst == nil {
		return domain.ErrNotFound
	}
	if inst.Status == entity.InstallmentPago {
		return domain.ErrConflict
	}
	return uc.installmentRepo.Cancel(id)
}

// ListBySale devolve as parcelas de uma venda em ordem de número, com o
// status efetivo recalculado na leitura.
func (uc *InstallmentUseCase) ListBySale(ctx context.Context, saleID string) ([]dto.InstallmentResponse, error) {
	installments, err := uc.installmentRepo.ListBySale(saleID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.InstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		out = append(out, ToInstallmentResponse(*inst, now))
	}
	return out, nil
}

// ToInstallmentResponse converte a entidade aplicando o status efetivo.
func ToInstallmentResponse(inst entity.Installment, today time.Time) dto.InstallmentResponse {
	resp := dto.InstallmentResponse{
		ID:            inst.ID,
		SaleID:        inst.SaleID,
		Number:        inst.Number,
		Amount:        inst.Amount,
		DueDate:       inst.DueDate.Format(dateLayout),
		PaymentMethod: inst.PaymentMethod,
		Status:        schedule.EffectiveStatus(inst, today),
	}
	if inst.PaidDate != nil {
		resp.PaidDate = inst.PaidDate.Format(dateLayout)
	}
	return resp
}
