package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/application/inventory"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByCode(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.products[id]
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

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMovementRepo) List(int, int) ([]*entity.StockMovement, error) { return nil, nil }
func (r *fakeMovementRepo) CountByProduct(productID string) (int, error) {
	count := 0
	for _, m := range r.movements {
		if m.ProductID == productID {
			count++
		}
	}
	return count, nil
}

// fakeTxRunner executa a função direto com os fakes. Em caso de erro,
// restaura o saldo para simular o rollback.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	stocks := map[string]int{}
	for id, p := range t.products.products {
		stocks[id] = p.Stock
	}
	count := len(t.movements.movements)

	if err := fn(t.products, t.movements); err != nil {
		for id, stock := range stocks {
			t.products.products[id].Stock = stock
		}
		t.movements.movements = t.movements.movements[:count]
		return err
	}
	return nil
}

func setup() (*inventory.RegisterMovementUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Vestido Floral", Price: decimal.RequireFromString("140.00"), Stock: 5},
	}}
	movements := &fakeMovementRepo{}
	uc := inventory.NewRegisterMovementUseCase(&fakeTxRunner{products, movements}, products, movements)
	return uc, products, movements
}

func TestRegisterMovement_EntradaSomaAoSaldo(t *testing.T) {
	uc, products, movements := setup()

	resp, err := uc.RegisterMovement(context.Background(), dto.StockMovementRequest{
		ProductID:   "p1",
		Type:        entity.MovementEntrada,
		Quantity:    3,
		Description: "Reposição do fornecedor",
	})
	require.NoError(t, err)

	assert.Equal(t, 8, products.products["p1"].Stock)
	require.Len(t, movements.movements, 1)
	assert.Equal(t, entity.MovementEntrada, resp.Type)
	assert.Equal(t, "Reposição do fornecedor", resp.Description)
	assert.NotEmpty(t, resp.ID)
}

func TestRegisterMovement_SaidaSubtraiDoSaldo(t *testing.T) {
	uc, products, _ := setup()

	_, err := uc.RegisterMovement(context.Background(), dto.StockMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementSaida,
		Quantity:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, products.products["p1"].Stock, "saída total zera o saldo")
}

func TestRegisterMovement_SaidaMaiorQueSaldoFalhaSemEscrever(t *testing.T) {
	uc, products, movements := setup()

	_, err := uc.RegisterMovement(context.Background(), dto.StockMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementSaida,
		Quantity:  6,
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available)

	assert.Equal(t, 5, products.products["p1"].Stock, "saldo intacto")
	assert.Empty(t, movements.movements, "sem registro de auditoria")
}

func TestRegisterMovement_EntradasInvalidas(t *testing.T) {
	uc, _, _ := setup()
	ctx := context.Background()

	_, err := uc.RegisterMovement(ctx, dto.StockMovementRequest{
		ProductID: "p1", Type: "AJUSTE", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconhecido")

	_, err = uc.RegisterMovement(ctx, dto.StockMovementRequest{
		ProductID: "p1", Type: entity.MovementEntrada, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade zero")

	_, err = uc.RegisterMovement(ctx, dto.StockMovementRequest{
		ProductID: "inexistente", Type: entity.MovementEntrada, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "produto inexistente")
}

func TestListByProduct(t *testing.T) {
	uc, _, movements := setup()
	movements.movements = append(movements.movements, &entity.StockMovement{
		ID: "m1", ProductID: "p1", Type: entity.MovementEntrada, Quantity: 2,
		Reference: "", CreatedAt: time.Now(),
	})

	out, err := uc.ListByProduct(context.Background(), "p1", 50, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m1", out[0].ID)
}
