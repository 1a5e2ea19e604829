package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorloja/gestor-api/internal/application/usecase"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
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
func (r *fakeProductRepo) Update(*entity.Product) error                   { return nil }
func (r *fakeProductRepo) UpdateStock(string, int) error                  { return nil }
func (r *fakeProductRepo) UpdateDescription(string, string, string) error { return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) CountByCategory(string) (int, error)            { return 0, nil }
func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct{}

func (r *fakeCategoryRepo) Create(*entity.Category) error            { return nil }
func (r *fakeCategoryRepo) GetByID(string) (*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Update(*entity.Category) error            { return nil }
func (r *fakeCategoryRepo) List() ([]*entity.Category, error)        { return nil, nil }
func (r *fakeCategoryRepo) Delete(string) error                      { return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
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

func setupProducts() (*usecase.ProductUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Code: "VF-001", Name: "Vestido Floral", Price: decimal.RequireFromString("140.00"), Stock: 5},
	}}
	movements := &fakeMovementRepo{}
	uc := usecase.NewProductUseCase(products, &fakeCategoryRepo{}, movements)
	return uc, products, movements
}

// Produto com movimentação registrada não pode ser excluído: o log de
// estoque é append-only e o histórico precisa sobreviver ao produto.
func TestProductDelete_ComHistoricoDevolveConflito(t *testing.T) {
	uc, products, movements := setupProducts()
	movements.movements = append(movements.movements, &entity.StockMovement{
		ID: "m1", ProductID: "p1", Type: entity.MovementEntrada, Quantity: 5,
	})

	err := uc.Delete(context.Background(), "p1")

	require.ErrorIs(t, err, domain.ErrConflict)
	assert.NotNil(t, products.products["p1"], "produto permanece no catálogo")
	assert.Len(t, movements.movements, 1, "histórico intacto")
}

func TestProductDelete_SemHistoricoExclui(t *testing.T) {
	uc, products, _ := setupProducts()

	err := uc.Delete(context.Background(), "p1")

	require.NoError(t, err)
	assert.Nil(t, products.products["p1"])
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc, _, _ := setupProducts()

	err := uc.Delete(context.Background(), "inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
