package entity

import "time"

// Supplier representa un proveedor de repuestos o servicios.
type Supplier struct {
	ID        int64
	Name      string
	Phone     string
	Category  string
	CreatedAt time.Time
}
