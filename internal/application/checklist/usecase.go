package checklist

import (
	"context"

	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

// UseCase maneja el chequeo de inspección de entrada/salida de cada orden.
// Lo editan admin y mecánicos por igual; la regla fuerte es una sola fila por
// orden, guardar de nuevo reemplaza lo anterior.
type UseCase struct {
	checklists repository.ChecklistRepository
	orders     repository.WorkOrderRepository
}

func NewUseCase(checklists repository.ChecklistRepository, orders repository.WorkOrderRepository) *UseCase {
	return &UseCase{checklists: checklists, orders: orders}
}

// GetByOrder devuelve el chequeo de la orden. Si nunca se guardó devuelve uno
// vacío, para que la pantalla arranque sin caso especial.
func (uc *UseCase) GetByOrder(ctx context.Context, orderID int64) (*dto.ChecklistResponse, error) {
	if err := uc.requireOrder(ctx, orderID); err != nil {
		return nil, err
	}
	ch, err := uc.checklists.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return &dto.ChecklistResponse{
			OrderID: orderID,
			Values:  dto.ChecklistValuesPayload{Status: map[string]string{}, Extras: map[string]string{}},
		}, nil
	}
	resp := toChecklistResponse(ch)
	return &resp, nil
}

// Save guarda el chequeo de la orden (upsert por order_id). Los estados por
// ítem tienen que ser ok, attention, bad o na; los extras son texto libre.
func (uc *UseCase) Save(ctx context.Context, orderID int64, in dto.SaveChecklistRequest) (*dto.ChecklistResponse, error) {
	for _, status := range in.Values.Status {
		switch status {
		case entity.ChecklistOK, entity.ChecklistAttention, entity.ChecklistBad, entity.ChecklistNA:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.requireOrder(ctx, orderID); err != nil {
		return nil, err
	}

	ch := &entity.Checklist{
		OrderID: orderID,
		Values: entity.ChecklistValues{
			Status: in.Values.Status,
			Extras: in.Values.Extras,
		},
	}
	if ch.Values.Status == nil {
		ch.Values.Status = map[string]string{}
	}
	if ch.Values.Extras == nil {
		ch.Values.Extras = map[string]string{}
	}
	if err := uc.checklists.Upsert(ctx, ch); err != nil {
		return nil, err
	}
	resp := toChecklistResponse(ch)
	return &resp, nil
}

func (uc *UseCase) requireOrder(ctx context.Context, orderID int64) error {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toChecklistResponse(ch *entity.Checklist) dto.ChecklistResponse {
	updated := ch.UpdatedAt
	return dto.ChecklistResponse{
		OrderID: ch.OrderID,
		Values: dto.ChecklistValuesPayload{
			Status: ch.Values.Status,
			Extras: ch.Values.Extras,
		},
		UpdatedAt: &updated,
	}
}
