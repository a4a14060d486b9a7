package orders

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallerok/taller-api/internal/domain/entity"
)

// OrderRevenue devuelve la facturación de una orden: suma de
// unit_price × quantity sobre sus ítems. Una orden sin ítems vale 0 (las
// cargas a medias existen porque crear la orden e insertar el primer ítem son
// llamadas separadas). Función pura, sin I/O.
func OrderRevenue(order *entity.WorkOrder) decimal.Decimal {
	total := decimal.Zero
	for _, item := range order.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// EffectiveDate devuelve la fecha con la que la orden entra a la línea de
// tiempo: delivery_date si existe, si no created_at. Las órdenes viejas o
// procesadas a medias pueden no tener fecha de entrega y aún así deben
// aparecer en el reporte.
func EffectiveDate(order *entity.WorkOrder) time.Time {
	if order.DeliveryDate != nil {
		return *order.DeliveryDate
	}
	return order.CreatedAt
}
