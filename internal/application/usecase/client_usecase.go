package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestorloja/gestor-api/internal/application/dto"
	"github.com/gestorloja/gestor-api/internal/domain"
	"github.com/gestorloja/gestor-api/internal/domain/entity"
	"github.com/gestorloja/gestor-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create persiste um cliente novo.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CpfCnpj:   in.CpfCnpj,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		City:      in.City,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update altera os dados cadastrais.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		client.Name = in.Name
	}
	client.CpfCnpj = in.CpfCnpj
	client.Phone = in.Phone
	client.Email = in.Email
	client.Address = in.Address
	client.City = in.City
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes com paginação.
func (uc *ClientUseCase) List(ctx context.Context, limit, offset int) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Delete exclui um cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil || client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		CpfCnpj:   c.CpfCnpj,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		City:      c.City,
		CreatedAt: c.CreatedAt,
	}
}
