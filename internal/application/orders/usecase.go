// Package orders contiene el flujo de órdenes de trabajo del taller: alta,
// tablero de estados, líneas de costo y la extracción de facturación que
// consume la conciliación.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/tallerok/taller-api/internal/application/audit"
	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

// UseCase casos de uso de órdenes de trabajo.
type UseCase struct {
	orderRepo   repository.WorkOrderRepository
	itemRepo    repository.OrderItemRepository
	vehicleRepo repository.VehicleRepository
	audit       *audit.Recorder
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orderRepo repository.WorkOrderRepository,
	itemRepo repository.OrderItemRepository,
	vehicleRepo repository.VehicleRepository,
	auditRec *audit.Recorder,
) *UseCase {
	return &UseCase{orderRepo: orderRepo, itemRepo: itemRepo, vehicleRepo: vehicleRepo, audit: auditRec}
}

// Create da de alta una orden. Arranca siempre en pendiente.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.VehicleID == 0 || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	vehicle, err := uc.vehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	order := &entity.WorkOrder{
		VehicleID:   in.VehicleID,
		Description: in.Description,
		Status:      entity.OrderPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	order.Vehicle = vehicle
	return toOrderResponse(order), nil
}

// ListActivas devuelve las órdenes no finalizadas para el tablero del taller.
func (uc *UseCase) ListActivas(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// ListFinalizadas devuelve el historial de órdenes finalizadas con sus ítems.
func (uc *UseCase) ListFinalizadas(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListFinalizadasConItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// GetByID devuelve una orden con vehículo e ítems cargados.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.loadOrderWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus cambia el estado de una orden según el flujo del taller:
//
//   - finalizar requiere rol admin: un mecánico que termina el trabajo manda la
//     orden a revision y el admin la aprueba después;
//   - al pasar a finalizado se estampa delivery_date con el reloj del servidor.
func (uc *UseCase) UpdateStatus(ctx context.Context, id int64, status string, session domain.Session) (*dto.OrderResponse, error) {
	switch status {
	case entity.OrderPendiente, entity.OrderEnProceso, entity.OrderRevision, entity.OrderFinalizado:
	default:
		return nil, domain.ErrInvalidInput
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	// Una orden finalizada ya fue cobrada y entró a la conciliación: no vuelve atrás.
	if order.Status == entity.OrderFinalizado {
		return nil, domain.ErrOrderFinalized
	}

	if status == entity.OrderFinalizado && !session.IsAdmin() {
		status = entity.OrderRevision
	}

	var deliveryDate *time.Time
	if status == entity.OrderFinalizado {
		now := time.Now()
		deliveryDate = &now
	}
	if err := uc.orderRepo.UpdateStatus(ctx, id, status, deliveryDate); err != nil {
		return nil, err
	}

	if status == entity.OrderFinalizado {
		uc.audit.Record(session.Name, "finalizar_orden",
			fmt.Sprintf("orden #%d finalizada y cobrada", id), audit.StatusInfo)
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if deliveryDate != nil {
		order.DeliveryDate = deliveryDate
	}
	return toOrderResponse(order), nil
}

// AddItem agrega una línea de costo a la orden.
func (uc *UseCase) AddItem(ctx context.Context, orderID int64, in dto.AddOrderItemRequest) (*dto.OrderItemResponse, error) {
	if in.Description == "" || in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ItemType == "" {
		in.ItemType = entity.ItemRepuesto
	}
	if in.ItemType != entity.ItemRepuesto && in.ItemType != entity.ItemManoObra {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	item := &entity.OrderItem{
		OrderID:     orderID,
		Description: in.Description,
		UnitPrice:   in.UnitPrice,
		Quantity:    in.Quantity,
		ItemType:    in.ItemType,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(*item)
	return &resp, nil
}

// ListItems devuelve las líneas de costo de una orden.
func (uc *UseCase) ListItems(ctx context.Context, orderID int64) ([]dto.OrderItemResponse, error) {
	items, err := uc.itemRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// DeleteItem borra una línea de costo.
func (uc *UseCase) DeleteItem(ctx context.Context, id int64) error {
	return uc.itemRepo.Delete(ctx, id)
}

// loadOrderWithItems trae la orden, su vehículo (si el repo no lo cargó) y sus ítems.
func (uc *UseCase) loadOrderWithItems(ctx context.Context, id int64) (*entity.WorkOrder, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func toOrderResponse(o *entity.WorkOrder) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:           o.ID,
		VehicleID:    o.VehicleID,
		Description:  o.Description,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		DeliveryDate: o.DeliveryDate,
		Total:        OrderRevenue(o),
	}
	if o.Vehicle != nil {
		info := &dto.OrderVehicleInfo{
			Brand:  o.Vehicle.Brand,
			Model:  o.Vehicle.Model,
			Year:   o.Vehicle.Year,
			Patent: o.Vehicle.Patent,
		}
		if o.Vehicle.Client != nil {
			info.ClientName = o.Vehicle.Client.FullName
			info.Phone = o.Vehicle.Client.Phone
		}
		resp.Vehicle = info
	}
	if len(o.Items) > 0 {
		resp.Items = make([]dto.OrderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			resp.Items = append(resp.Items, toItemResponse(it))
		}
	}
	return resp
}

func toItemResponse(i entity.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:          i.ID,
		OrderID:     i.OrderID,
		Description: i.Description,
		UnitPrice:   i.UnitPrice,
		Quantity:    i.Quantity,
		ItemType:    i.ItemType,
		Subtotal:    i.Subtotal(),
	}
}
