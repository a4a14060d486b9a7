package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un gasto. Solo los aprobados cuentan en cualquier total de caja.
const (
	ExpensePending  = "pending"
	ExpenseApproved = "approved"
)

// CategoriaVarios es la categoría por defecto si no se indica una.
const CategoriaVarios = "Varios"

// Expense representa una salida de caja.
// Date es fecha calendario (sin hora): se asigna con el reloj del servidor al
// crear, nunca la provee el usuario, para evitar gastos retro-fechados.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Status      string
	CreatedBy   string // nombre del usuario que lo registró
}
