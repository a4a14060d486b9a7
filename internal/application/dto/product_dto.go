package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto de inventario.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
	Price    decimal.Decimal `json:"price"`
}

// AdjustStockRequest ajuste de stock con los botones +/- (delta puede ser negativo).
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"`
	Price     decimal.Decimal `json:"price"`
	LowStock  bool            `json:"low_stock"`
	CreatedAt time.Time       `json:"created_at"`
}
