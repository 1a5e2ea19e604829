package repository

import "github.com/gestorloja/gestor-api/internal/domain/entity"

// ClientRepository define a porta de persistência de clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
