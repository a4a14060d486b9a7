package entity

import "github.com/shopspring/decimal"

// Tipos de ítem de una orden.
const (
	ItemRepuesto = "repuesto"
	ItemManoObra = "mano_obra"
)

// OrderItem representa una línea de costo de una orden (repuesto o mano de obra).
type OrderItem struct {
	ID          int64
	OrderID     int64
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
	ItemType    string
}

// Subtotal devuelve unit_price × quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
