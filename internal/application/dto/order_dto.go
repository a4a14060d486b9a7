package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de orden de trabajo. El estado inicial es siempre pendiente.
type CreateOrderRequest struct {
	VehicleID   int64  `json:"vehicle_id"`
	Description string `json:"description"`
}

// UpdateOrderStatusRequest cambio de estado de la orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AddOrderItemRequest alta de una línea de costo (repuesto o mano de obra).
type AddOrderItemRequest struct {
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	ItemType    string          `json:"item_type"`
}

// OrderItemResponse línea de costo en respuestas.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	ItemType    string          `json:"item_type"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderVehicleInfo resumen del vehículo (y su dueño) embebido en la orden.
type OrderVehicleInfo struct {
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Year       int    `json:"year,omitempty"`
	Patent     string `json:"patent,omitempty"`
	ClientName string `json:"client_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// OrderResponse orden de trabajo en respuestas.
type OrderResponse struct {
	ID           int64               `json:"id"`
	VehicleID    int64               `json:"vehicle_id"`
	Description  string              `json:"description"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
	Vehicle      *OrderVehicleInfo   `json:"vehicle,omitempty"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	Total        decimal.Decimal     `json:"total"`
}
