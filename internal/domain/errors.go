package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o e-mail já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrInvalidPaymentPlan = errors.New("plano de pagamento inválido")
	ErrPartialSettlement  = errors.New("falha parcial na liquidação da venda")
	ErrExternalService    = errors.New("falha em serviço externo")
)

// InsufficientStockError identifica o produto e quanto faltou de estoque.
// Envolve ErrInsufficientStock para que errors.Is continue funcionando.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %q: solicitado %d, disponível %d (faltam %d)",
		e.ProductName, e.Requested, e.Available, e.Shortfall())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Shortfall devolve a quantidade que falta para atender a venda.
func (e *InsufficientStockError) Shortfall() int {
	return e.Requested - e.Available
}
