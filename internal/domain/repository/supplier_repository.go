package repository

import "github.com/tallerok/taller-api/internal/domain/entity"

// SupplierRepository acceso a proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	// List devuelve todos los proveedores ordenados por nombre.
	List() ([]*entity.Supplier, error)
	Delete(id int64) error
}
