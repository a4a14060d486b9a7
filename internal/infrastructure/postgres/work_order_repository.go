package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// selección con vehículo y cliente anidados, como la consulta del tablero.
const orderSelect = `
	SELECT o.id, o.vehicle_id, o.description, o.status, o.created_at, o.updated_at, o.delivery_date,
	       v.id, v.client_id, v.brand, v.model, v.year, v.patent,
	       c.id, c.full_name, c.phone
	FROM work_orders o
	JOIN vehicles v ON v.id = o.vehicle_id
	JOIN clients  c ON c.id = v.client_id`

// Create persiste una nueva orden y asigna el ID generado.
func (r *WorkOrderRepo) Create(ctx context.Context, order *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (vehicle_id, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		order.VehicleID, order.Description, order.Status, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert work_order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con vehículo y cliente cargados.
func (r *WorkOrderRepo) GetByID(ctx context.Context, id int64) (*entity.WorkOrder, error) {
	row := r.q.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work_order: %w", err)
	}
	return order, nil
}

// ListActivas devuelve las órdenes no finalizadas, las tocadas más recientemente primero.
func (r *WorkOrderRepo) ListActivas(ctx context.Context) ([]*entity.WorkOrder, error) {
	rows, err := r.q.Query(ctx, orderSelect+`
		WHERE o.status <> $1
		ORDER BY o.updated_at DESC`, entity.OrderFinalizado)
	if err != nil {
		return nil, fmt.Errorf("list active work_orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListFinalizadasConItems devuelve las órdenes finalizadas con sus ítems
// cargados; es la lectura de ingresos de la conciliación. Los ítems se
// resuelven con una segunda consulta agrupada en memoria.
func (r *WorkOrderRepo) ListFinalizadasConItems(ctx context.Context) ([]*entity.WorkOrder, error) {
	rows, err := r.q.Query(ctx, orderSelect+`
		WHERE o.status = $1
		ORDER BY o.delivery_date DESC NULLS LAST`, entity.OrderFinalizado)
	if err != nil {
		return nil, fmt.Errorf("list finished work_orders: %w", err)
	}
	defer rows.Close()
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*entity.WorkOrder, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	itemRows, err := r.q.Query(ctx, `
		SELECT id, order_id, description, unit_price, quantity, item_type
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list order_items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.Description, &it.UnitPrice, &it.Quantity, &it.ItemType); err != nil {
			return nil, fmt.Errorf("scan order_item: %w", err)
		}
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return orders, itemRows.Err()
}

// UpdateStatus cambia el estado. deliveryDate solo se escribe si no es nil
// (transición a finalizado); una fecha de entrega ya estampada no se pisa.
func (r *WorkOrderRepo) UpdateStatus(ctx context.Context, id int64, status string, deliveryDate *time.Time) error {
	query := `
		UPDATE work_orders
		SET status = $2,
		    updated_at = $3,
		    delivery_date = COALESCE($4, delivery_date)
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status, time.Now(), deliveryDate)
	if err != nil {
		return fmt.Errorf("update work_order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var o entity.WorkOrder
	var v entity.Vehicle
	var c entity.Client
	err := row.Scan(
		&o.ID, &o.VehicleID, &o.Description, &o.Status, &o.CreatedAt, &o.UpdatedAt, &o.DeliveryDate,
		&v.ID, &v.ClientID, &v.Brand, &v.Model, &v.Year, &v.Patent,
		&c.ID, &c.FullName, &c.Phone,
	)
	if err != nil {
		return nil, err
	}
	v.Client = &c
	o.Vehicle = &v
	return &o, nil
}

func scanOrders(rows pgx.Rows) ([]*entity.WorkOrder, error) {
	var list []*entity.WorkOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work_order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}
