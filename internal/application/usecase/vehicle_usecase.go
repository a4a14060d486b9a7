package usecase

import (
	"time"

	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

// VehicleUseCase CRUD de vehículos.
type VehicleUseCase struct {
	repo       repository.VehicleRepository
	clientRepo repository.ClientRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository, clientRepo repository.ClientRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, clientRepo: clientRepo}
}

// Create da de alta un vehículo para un cliente existente.
func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if in.ClientID == 0 || in.Brand == "" || in.Model == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	vehicle := &entity.Vehicle{
		ClientID:  in.ClientID,
		Brand:     in.Brand,
		Model:     in.Model,
		Year:      in.Year,
		Patent:    in.Patent,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	resp := toVehicleResponse(vehicle)
	return &resp, nil
}

// ListByClient devuelve los vehículos de un cliente.
func (uc *VehicleUseCase) ListByClient(clientID int64) ([]dto.VehicleResponse, error) {
	list, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVehicleResponse(v))
	}
	return out, nil
}

// Delete elimina un vehículo por ID.
func (uc *VehicleUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toVehicleResponse(v *entity.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:        v.ID,
		ClientID:  v.ClientID,
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		Patent:    v.Patent,
		CreatedAt: v.CreatedAt,
	}
}
