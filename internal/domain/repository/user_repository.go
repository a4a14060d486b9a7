package repository

import "github.com/tallerok/taller-api/internal/domain/entity"

// UserRepository acceso a usuarios del sistema.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	// List devuelve todos los usuarios ordenados por nombre completo.
	List() ([]*entity.User, error)
	Delete(id int64) error
}
