package repository

import (
	"context"

	"github.com/tallerok/taller-api/internal/domain/entity"
)

// ChecklistRepository acceso a los chequeos de inspección.
type ChecklistRepository interface {
	// GetByOrderID devuelve el chequeo de la orden, o nil si nunca se guardó.
	GetByOrderID(ctx context.Context, orderID int64) (*entity.Checklist, error)

	// Upsert inserta o reemplaza el chequeo de la orden (conflicto por order_id).
	Upsert(ctx context.Context, checklist *entity.Checklist) error
}
