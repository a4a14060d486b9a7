package repository

import (
	"context"
	"time"

	"github.com/tallerok/taller-api/internal/domain/entity"
)

// WorkOrderRepository acceso a órdenes de trabajo.
type WorkOrderRepository interface {
	Create(ctx context.Context, order *entity.WorkOrder) error
	GetByID(ctx context.Context, id int64) (*entity.WorkOrder, error)

	// ListActivas devuelve las órdenes con status != finalizado, con vehículo y
	// cliente cargados, ordenadas por updated_at descendente.
	ListActivas(ctx context.Context) ([]*entity.WorkOrder, error)

	// ListFinalizadasConItems devuelve las órdenes finalizadas con sus ítems y
	// el vehículo cargado. Es la fuente de ingresos de la conciliación: se lee
	// el estado actual de los ítems en cada corrida.
	ListFinalizadasConItems(ctx context.Context) ([]*entity.WorkOrder, error)

	// UpdateStatus cambia el estado; deliveryDate se persiste solo si no es nil
	// (al pasar a finalizado).
	UpdateStatus(ctx context.Context, id int64, status string, deliveryDate *time.Time) error
}
