package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimentações manuais de estoque
// (ENTRADA/SAIDA) com bloqueio de linha (SELECT FOR UPDATE) e auditoria
// append-only na mesma transação.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// RegisterMovement valida, bloqueia a linha do produto, aplica o delta
// (piso zero na saída) e grava o registro de auditoria.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.StockMovementRequest) (*dto.StockMovementResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementEntrada && in.Type != entity.MovementSaida {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	movement := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Description: in.Description,
		CreatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil || locked == nil {
			return domain.ErrNotFound
		}
		newStock := locked.Stock
		if in.Type == entity.MovementEntrada {
			newStock += in.Quantity
		} else {
			if locked.Stock < in.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   locked.ID,
					ProductName: locked.Name,
					Requested:   in.Quantity,
					Available:   locked.Stock,
				}
			}
			newStock -= in.Quantity
			if newStock < 0 {
				newStock = 0
			}
		}
		if err := productRepo.UpdateStock(in.ProductID, newStock); err != nil {
			return err
		}
		return movementRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}

	return &dto.StockMovementResponse{
		ID:          movement.ID,
		ProductID:   movement.ProductID,
		Type:        movement.Type,
		Quantity:    movement.Quantity,
		Description: movement.Description,
		CreatedAt:   movement.CreatedAt,
	}, nil
}

// ListByProduct histórico de movimentações de um produto.
func (uc *RegisterMovementUseCase) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Description: m.Description,
			Reference:   m.Reference,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}
