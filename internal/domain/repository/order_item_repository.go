package repository

import (
	"context"

	"github.com/tallerok/taller-api/internal/domain/entity"
)

// OrderItemRepository acceso a líneas de costo de una orden.
type OrderItemRepository interface {
	Create(ctx context.Context, item *entity.OrderItem) error
	ListByOrder(ctx context.Context, orderID int64) ([]entity.OrderItem, error)
	Delete(ctx context.Context, id int64) error
}
