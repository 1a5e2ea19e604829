package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/finance"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
	"github.com/gestorloja/gestor-api/internal/domain/schedule"
)

// SettleSaleUseCase finaliza uma venda: cria a venda, os itens (snapshot),
// o cronograma de parcelas, baixa o estoque com auditoria e emite a nota
// fiscal sequencial, tudo em uma única transação.
type SettleSaleUseCase struct {
	txRunner        SettlementTxRunner
	clientRepo      repository.ClientRepository
	productRepo     repository.ProductRepository
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
	invoiceRepo     repository.InvoiceRepository
}

// NewSettleSaleUseCase constrói o caso de uso.
func NewSettleSaleUseCase(
	txRunner SettlementTxRunner,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	installmentRepo repository.InstallmentRepository,
	invoiceRepo repository.InvoiceRepository,
) *SettleSaleUseCase {
	return &SettleSaleUseCase{
		txRunner:        txRunner,
		clientRepo:      clientRepo,
		productRepo:     productRepo,
		saleRepo:        saleRepo,
		installmentRepo: installmentRepo,
		invoiceRepo:     invoiceRepo,
	}
}

// SettleSale valida a entrada, e dentro da transação: grava venda, itens,
// parcelas, movimentações de saída e nota fiscal. Validações que falham
// abortam ANTES de qualquer escrita; falha em passo posterior à criação da
// venda é envolvida em ErrPartialSettlement e o rollback desfaz tudo.
func (uc *SettleSaleUseCase) SettleSale(ctx context.Context, in dto.SettleSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.NumInstallments < 1 {
		return nil, domain.ErrInvalidPaymentPlan
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod == entity.PaymentDinheiro && in.NumInstallments != 1 {
		return nil, domain.ErrInvalidPaymentPlan
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}

	// Validação de itens e de estoque (somente leitura, fora da tx).
	// Quantidades do mesmo produto são agregadas antes de comparar com o
	// saldo disponível.
	productsByID := make(map[string]*entity.Product)
	requested := make(map[string]int)
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, ok := productsByID[item.ProductID]
		if !ok {
			product, err = uc.productRepo.GetByID(item.ProductID)
			if err != nil || product == nil {
				return nil, domain.ErrNotFound
			}
			productsByID[item.ProductID] = product
		}
		if item.UnitPrice.IsZero() {
			item.UnitPrice = product.Price
		}
		requested[item.ProductID] += item.Quantity
	}
	for productID, qty := range requested {
		product := productsByID[productID]
		if product.Stock < qty {
			return nil, &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   qty,
				Available:   product.Stock,
			}
		}
	}

	// Total = soma dos itens (qty * preço unitário congelado).
	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	now := time.Now()
	saleID := uuid.New().String()
	status := entity.SaleStatusPendente
	if in.PaymentMethod == entity.PaymentDinheiro {
		status = entity.SaleStatusConcluida
	}

	sale := &entity.Sale{
		ID:              saleID,
		ClientID:        in.ClientID,
		Total:           total,
		PaymentMethod:   in.PaymentMethod,
		NumInstallments: in.NumInstallments,
		Status:          status,
		Notes:           in.Notes,
		CreatedAt:       now,
	}

	var items []*entity.SaleItem
	var invoice *entity.Invoice

	err = uc.txRunner.RunSettlement(ctx, func(
		saleRepo repository.SaleRepository,
		installmentRepo repository.InstallmentRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		// 1) Venda
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// A partir daqui qualquer falha é uma liquidação parcial: o rollback
		// desfaz os registros, mas o chamador precisa distinguir do sucesso.
		partial := func(step string, err error) error {
			return fmt.Errorf("%w: %s: %w", domain.ErrPartialSettlement, step, err)
		}

		// 2) Itens como snapshot imutável de nome/preço
		for _, item := range in.Items {
			product := productsByID[item.ProductID]
			saleItem := &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      saleID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Total:       item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
			}
			if err := saleRepo.CreateItem(saleItem); err != nil {
				return partial("item", err)
			}
			items = append(items, saleItem)
		}

		// 3) Cronograma de parcelas ancorado na criação da venda
		generated, err := schedule.Generate(total, in.NumInstallments, in.PaymentMethod, now)
		if err != nil {
			return partial("cronograma", err)
		}
		for i := range generated {
			inst := generated[i]
			inst.ID = uuid.New().String()
			inst.SaleID = saleID
			if err := installmentRepo.Create(&inst); err != nil {
				return partial("parcela", err)
			}
		}

		// 4) Baixa de estoque com bloqueio de linha + auditoria por item.
		// Reconfere o saldo sob lock; o piso é zero.
		for productID, qty := range requested {
			locked, err := productRepo.GetForUpdate(productID)
			if err != nil || locked == nil {
				return partial("estoque", fmt.Errorf("produto %s: %w", productID, domain.ErrNotFound))
			}
			if locked.Stock < qty {
				return &domain.InsufficientStockError{
					ProductID:   locked.ID,
					ProductName: locked.Name,
					Requested:   qty,
					Available:   locked.Stock,
				}
			}
			newStock := locked.Stock - qty
			if newStock < 0 {
				newStock = 0
			}
			if err := productRepo.UpdateStock(productID, newStock); err != nil {
				return partial("estoque", err)
			}
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   productID,
				Type:        entity.MovementSaida,
				Quantity:    qty,
				Description: fmt.Sprintf("Venda %s", saleID),
				Reference:   saleID,
				CreatedAt:   now,
			}
			if err := movementRepo.Create(mov); err != nil {
				return partial("movimentação", err)
			}
		}

		// 5) Nota fiscal: próximo número sequencial NF-XXX
		seq, err := invoiceRepo.NextSequence()
		if err != nil {
			return partial("numeração da nota", err)
		}
		invoice = &entity.Invoice{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			Number:    fmt.Sprintf("NF-%03d", seq),
			Status:    entity.InvoiceStatusEmitida,
			CreatedAt: now,
		}
		if err := invoiceRepo.Create(invoice); err != nil {
			return partial("nota fiscal", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(sale, items, invoice), nil
}

// GetSale devolve a venda com itens e o status efetivo derivado das parcelas.
func (uc *SettleSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil || sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	installments, err := uc.installmentRepo.ListBySale(id)
	if err != nil {
		return nil, err
	}
	invoice, _ := uc.invoiceRepo.GetBySaleID(id)

	insts := make([]entity.Installment, len(installments))
	for i, p := range installments {
		insts[i] = *p
	}
	resp := toSaleResponse(sale)
	resp.Status = finance.DeriveSaleStatus(insts, time.Now())
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	if invoice != nil {
		resp.InvoiceNumber = invoice.Number
	}
	return &resp, nil
}

// ListSales lista vendas (mais recentes primeiro) sem carregar itens.
func (uc *SettleSaleUseCase) ListSales(ctx context.Context, limit, offset int) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

func (uc *SettleSaleUseCase) toResponse(
	sale *entity.Sale,
	items []*entity.SaleItem,
	invoice *entity.Invoice,
) *dto.SaleResponse {
	resp := toSaleResponse(sale)
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	if invoice != nil {
		resp.InvoiceNumber = invoice.Number
	}
	return &resp
}

func toSaleResponse(sale *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:              sale.ID,
		ClientID:        sale.ClientID,
		Total:           sale.Total,
		PaymentMethod:   sale.PaymentMethod,
		NumInstallments: sale.NumInstallments,
		Status:          sale.Status,
		Notes:           sale.Notes,
		CreatedAt:       sale.CreatedAt,
	}
}

func toItemResponse(item *entity.SaleItem) dto.SaleItemResponse {
	return dto.SaleItemResponse{
		ID:          item.ID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		Total:       item.Total,
	}
}
