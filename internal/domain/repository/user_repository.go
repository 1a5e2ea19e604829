package repository

import "github.com/gestorloja/gestor-api/internal/domain/entity"

// UserRepository define a porta de persistência de usuários (auth).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
