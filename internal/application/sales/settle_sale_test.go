package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/sales"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

// store é o banco em memória compartilhado pelos repositórios fake.
type store struct {
	clients      map[string]*entity.Client
	products     map[string]*entity.Product
	sales        map[string]*entity.Sale
	items        []*entity.SaleItem
	installments []*entity.Installment
	movements    []*entity.StockMovement
	invoices     map[string]*entity.Invoice

	invoiceSeq int
	failStep   string
}

func newStore() *store {
	return &store{
		clients:  map[string]*entity.Client{},
		products: map[string]*entity.Product{},
		sales:    map[string]*entity.Sale{},
		invoices: map[string]*entity.Invoice{},
	}
}

type fakeClientRepo struct{ s *store }

func (r *fakeClientRepo) Create(c *entity.Client) error { r.s.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.s.clients[id], nil
}
func (r *fakeClientRepo) Update(*entity.Client) error             { return nil }
func (r *fakeClientRepo) List(int, int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Delete(string) error                     { return nil }

type fakeProductRepo struct{ s *store }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) GetByCode(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) UpdateDescription(string, string, string) error { return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) CountByCategory(string) (int, error)            { return 0, nil }
func (r *fakeProductRepo) Delete(string) error                            { return nil }

type fakeSaleRepo struct{ s *store }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error { r.s.sales[sale.ID] = sale; return nil }
func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	if r.s.failStep == "item" {
		return errors.New("falha simulada ao gravar item")
	}
	r.s.items = append(r.s.items, item)
	return nil
}
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.s.sales[id], nil }
func (r *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.s.items {
		if it.SaleID == saleID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) List(int, int) ([]*entity.Sale, error)       { return nil, nil }
func (r *fakeSaleRepo) ListByClient(string) ([]*entity.Sale, error) { return nil, nil }
func (r *fakeSaleRepo) ListAll() ([]*entity.Sale, error)            { return nil, nil }

type fakeInstallmentRepo struct{ s *store }

func (r *fakeInstallmentRepo) Create(inst *entity.Installment) error {
	r.s.installments = append(r.s.installments, inst)
	return nil
}
func (r *fakeInstallmentRepo) GetByID(string) (*entity.Installment, error) { return nil, nil }
func (r *fakeInstallmentRepo) ListBySale(saleID string) ([]*entity.Installment, error) {
	var out []*entity.Installment
	for _, inst := range r.s.installments {
		if inst.SaleID == saleID {
			out = append(out, inst)
		}
	}
	return out, nil
}
func (r *fakeInstallmentRepo) ListByClient(string) ([]*entity.Installment, error) { return nil, nil }
func (r *fakeInstallmentRepo) ListAll() ([]*entity.Installment, error)            { return nil, nil }
func (r *fakeInstallmentRepo) MarkPaid(string, time.Time, string) error           { return nil }
func (r *fakeInstallmentRepo) Cancel(string) error                                { return nil }

type fakeMovementRepo struct{ s *store }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) List(int, int) ([]*entity.StockMovement, error) { return nil, nil }
func (r *fakeMovementRepo) CountByProduct(productID string) (int, error) {
	count := 0
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			count++
		}
	}
	return count, nil
}

type fakeInvoiceRepo struct{ s *store }

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.s.invoices[inv.SaleID] = inv
	return nil
}
func (r *fakeInvoiceRepo) GetByID(string) (*entity.Invoice, error) { return nil, nil }
func (r *fakeInvoiceRepo) GetBySaleID(saleID string) (*entity.Invoice, error) {
	return r.s.invoices[saleID], nil
}
func (r *fakeInvoiceRepo) NextSequence() (int, error) {
	r.s.invoiceSeq++
	return r.s.invoiceSeq, nil
}
func (r *fakeInvoiceRepo) List(int, int) ([]*entity.Invoice, error) { return nil, nil }

// fakeTxRunner executa a função com os próprios fakes. Em caso de erro,
// restaura o snapshot do store para simular o rollback.
type fakeTxRunner struct{ s *store }

func (t *fakeTxRunner) RunSettlement(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	installmentRepo repository.InstallmentRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	snapshot := *t.s
	snapshot.sales = map[string]*entity.Sale{}
	for k, v := range t.s.sales {
		snapshot.sales[k] = v
	}
	stocks := map[string]int{}
	for id, p := range t.s.products {
		stocks[id] = p.Stock
	}

	err := fn(
		&fakeSaleRepo{t.s},
		&fakeInstallmentRepo{t.s},
		&fakeProductRepo{t.s},
		&fakeMovementRepo{t.s},
		&fakeInvoiceRepo{t.s},
	)
	if err != nil {
		t.s.sales = snapshot.sales
		t.s.items = snapshot.items
		t.s.installments = snapshot.installments
		t.s.movements = snapshot.movements
		for id, stock := range stocks {
			t.s.products[id].Stock = stock
		}
		return err
	}
	return nil
}

func newUseCase(s *store) *sales.SettleSaleUseCase {
	return sales.NewSettleSaleUseCase(
		&fakeTxRunner{s},
		&fakeClientRepo{s},
		&fakeProductRepo{s},
		&fakeSaleRepo{s},
		&fakeInstallmentRepo{s},
		&fakeInvoiceRepo{s},
	)
}

func seed(s *store) {
	s.clients["c1"] = &entity.Client{ID: "c1", Name: "Maria Souza"}
	s.products["p1"] = &entity.Product{
		ID: "p1", Name: "Vestido Floral", Code: "VF-001",
		Price: decimal.RequireFromString("140.00"), Stock: 10,
	}
	s.products["p2"] = &entity.Product{
		ID: "p2", Name: "Bolsa Couro", Code: "BC-002",
		Price: decimal.RequireFromString("90.00"), Stock: 2,
	}
}

func TestSettleSale_FluxoCompletoNoCartao(t *testing.T) {
	s := newStore()
	seed(s)
	uc := newUseCase(s)

	resp, err := uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID:        "c1",
		PaymentMethod:   entity.PaymentCartao,
		NumInstallments: 3,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.RequireFromString("140.00")},
			{ProductID: "p2", Quantity: 1, UnitPrice: decimal.RequireFromString("90.00")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Total = 2*140 + 1*90
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("370.00")))
	assert.Equal(t, entity.SaleStatusPendente, resp.Status)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "NF-001", resp.InvoiceNumber)

	// Estoque baixado e auditado
	assert.Equal(t, 8, s.products["p1"].Stock)
	assert.Equal(t, 1, s.products["p2"].Stock)
	require.Len(t, s.movements, 2)
	for _, mov := range s.movements {
		assert.Equal(t, entity.MovementSaida, mov.Type)
		assert.Equal(t, resp.ID, mov.Reference)
	}

	// Cronograma: três parcelas PENDENTE somando o total
	require.Len(t, s.installments, 3)
	sum := decimal.Zero
	for _, inst := range s.installments {
		assert.Equal(t, resp.ID, inst.SaleID)
		assert.Equal(t, entity.InstallmentPendente, inst.Status)
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, sum.Equal(resp.Total))
}

func TestSettleSale_DinheiroConcluiNaHora(t *testing.T) {
	s := newStore()
	seed(s)
	uc := newUseCase(s)

	resp, err := uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID:        "c1",
		PaymentMethod:   entity.PaymentDinheiro,
		NumInstallments: 1,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, UnitPrice: decimal.RequireFromString("140.00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusConcluida, resp.Status)
	require.Len(t, s.installments, 1)
	assert.Equal(t, entity.InstallmentPago, s.installments[0].Status)
	require.NotNil(t, s.installments[0].PaidDate)
}

// Preço unitário zero congela o preço de tabela atual do produto.
func TestSettleSale_PrecoZeroUsaPrecoDoProduto(t *testing.T) {
	s := newStore()
	seed(s)
	uc := newUseCase(s)

	resp, err := uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID:        "c1",
		PaymentMethod:   entity.PaymentDinheiro,
		NumInstallments: 1,
		Items: []dto.SaleItemRequest{
			{ProductID: "p2", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("180.00")))
	require.Len(t, s.items, 1)
	assert.True(t, s.items[0].UnitPrice.Equal(decimal.RequireFromString("90.00")))
	assert.Equal(t, "Bolsa Couro", s.items[0].ProductName)
}

func TestSettleSale_EstoqueInsuficienteNaoEscreveNada(t *testing.T) {
	s := newStore()
	seed(s)
	uc := newUseCase(s)

	// p2 tem 2 em estoque; pedir 3 (agregando linhas duplicadas) falha
	_, err := uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID:        "c1",
		PaymentMethod:   entity.PaymentCartao,
		NumInstallments: 2,
		Items: []dto.SaleItemRequest{
			{ProductID: "p2", Quantity: 2, UnitPrice: decimal.RequireFromString("90.00")},
			{ProductID: "p2", Quantity: 1, UnitPrice: decimal.RequireFromString("90.00")},
		},
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "p2", stockErr.ProductID)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)

	// Nenhuma escrita aconteceu
	assert.Empty(t, s.sales)
	assert.Empty(t, s.items)
	assert.Empty(t, s.installments)
	assert.Empty(t, s.movements)
	assert.Equal(t, 2, s.products["p2"].Stock)
}

func TestSettleSale_EntradasInvalidas(t *testing.T) {
	s := newStore()
	seed(s)
	uc := newUseCase(s)

	item := dto.SaleItemRequest{ProductID: "p1", Quantity: 1}

	_, err := uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		PaymentMethod: entity.PaymentCartao, NumInstallments: 1,
		Items: []dto.SaleItemRequest{item},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cliente obrigatório")

	_, err = uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID: "c1", PaymentMethod: entity.PaymentCartao, NumInstallments: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venda sem itens")

	_, err = uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID: "c1", PaymentMethod: entity.PaymentCartao, NumInstallments: 0,
		Items: []dto.SaleItemRequest{item},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentPlan, "parcelas < 1")

	_, err = uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID: "c1", PaymentMethod: entity.PaymentDinheiro, NumInstallments: 3,
		Items: []dto.SaleItemRequest{item},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentPlan, "dinheiro parcelado")

	_, err = uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID: "c1", PaymentMethod: "PIX_QUADRADO", NumInstallments: 1,
		Items: []dto.SaleItemRequest{item},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "forma de pagamento desconhecida")

	_, err = uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID: "inexistente", PaymentMethod: entity.PaymentCartao, NumInstallments: 1,
		Items: []dto.SaleItemRequest{item},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente")
}

// Falha depois da criação da venda vira liquidação parcial e o "rollback"
// do runner desfaz tudo.
func TestSettleSale_FalhaPosVendaViraLiquidacaoParcial(t *testing.T) {
	s := newStore()
	seed(s)
	s.failStep = "item"
	uc := newUseCase(s)

	_, err := uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID:        "c1",
		PaymentMethod:   entity.PaymentCartao,
		NumInstallments: 1,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 1, UnitPrice: decimal.RequireFromString("140.00")},
		},
	})

	require.ErrorIs(t, err, domain.ErrPartialSettlement)
	assert.Empty(t, s.sales)
	assert.Empty(t, s.items)
}

func TestSettleSale_NumeracaoSequencialDasNotas(t *testing.T) {
	s := newStore()
	seed(s)
	uc := newUseCase(s)

	first, err := uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID: "c1", PaymentMethod: entity.PaymentDinheiro, NumInstallments: 1,
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	second, err := uc.SettleSale(context.Background(), dto.SettleSaleRequest{
		ClientID: "c1", PaymentMethod: entity.PaymentDinheiro, NumInstallments: 1,
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "NF-001", first.InvoiceNumber)
	assert.Equal(t, "NF-002", second.InvoiceNumber)
}
