package repository

import "github.com/tallerok/taller-api/internal/domain/entity"

// ClientRepository acceso a clientes del taller.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	// List devuelve todos los clientes, los más nuevos primero.
	List() ([]*entity.Client, error)
	Delete(id int64) error
}
