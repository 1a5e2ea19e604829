package repository

import "github.com/gestorloja/gestor-api/internal/domain/entity"

// CategoryRepository define a porta de persistência de categorias.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
