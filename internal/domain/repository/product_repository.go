package repository

import "github.com/tallerok/taller-api/internal/domain/entity"

// ProductRepository acceso al inventario de repuestos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// List devuelve todos los productos ordenados por nombre.
	List() ([]*entity.Product, error)
	UpdateStock(id int64, newStock int) error
	Delete(id int64) error
}
