package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementDTO un movimiento del feed financiero (ingreso por orden o gasto aprobado).
type MovementDTO struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"` // ingreso | gasto
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// FinanceTotals totales de la ventana. Neto = Ingresos - Gastos, siempre.
type FinanceTotals struct {
	Ingresos decimal.Decimal `json:"income"`
	Gastos   decimal.Decimal `json:"expense"`
	Neto     decimal.Decimal `json:"net"`
}

// BucketDTO un período agregado (día, mes o semestre según granularidad).
type BucketDTO struct {
	Key         string          `json:"key"`   // "2026-08-15", "2026-08" o "2026-S2"
	Label       string          `json:"label"` // etiqueta legible, ej: "Agosto 2026"
	Ingresos    decimal.Decimal `json:"income"`
	Gastos      decimal.Decimal `json:"expense"`
	Neto        decimal.Decimal `json:"net"`
	Ordenes     int             `json:"orders"`
	GastosCount int             `json:"expense_count"`
}

// FinancialFeedResponse salida completa de la conciliación.
type FinancialFeedResponse struct {
	Granularity string        `json:"granularity"`
	Movements   []MovementDTO `json:"movements"`
	Totals      FinanceTotals `json:"totals"`
	Buckets     []BucketDTO   `json:"buckets"`
}
