package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un repuesto del inventario del taller.
// Stock es un contador simple ajustado con +/- desde la pantalla de inventario.
type Product struct {
	ID        int64
	Name      string
	Stock     int
	MinStock  int // umbral de alerta de reposición
	Price     decimal.Decimal
	CreatedAt time.Time
}

// LowStock indica si el producto está por debajo del umbral de reposición.
func (p Product) LowStock() bool { return p.Stock <= p.MinStock }
