package usecase

import (
	"time"

	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes del taller.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create da de alta un cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		FullName:  in.FullName,
		DNI:       in.DNI,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// List devuelve todos los clientes, los más nuevos primero.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Delete elimina un cliente por ID.
func (uc *ClientUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		DNI:       c.DNI,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
