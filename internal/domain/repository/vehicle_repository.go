package repository

import "github.com/tallerok/taller-api/internal/domain/entity"

// VehicleRepository acceso a vehículos.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id int64) (*entity.Vehicle, error)
	ListByClient(clientID int64) ([]*entity.Vehicle, error)
	Delete(id int64) error
}
