package entity

import "time"

// Estados del flujo de trabajo de una orden.
const (
	OrderPendiente  = "pendiente"  // recién ingresada, sin revisar
	OrderEnProceso  = "en_proceso" // en reparación
	OrderRevision   = "revision"   // terminada por un mecánico, espera aprobación del admin
	OrderFinalizado = "finalizado" // entregada y cobrada; entra a la conciliación
)

// WorkOrder representa una orden de trabajo del taller.
// DeliveryDate se estampa exactamente cuando la orden pasa a finalizado; las
// órdenes viejas pueden no tenerla y la conciliación cae a CreatedAt.
type WorkOrder struct {
	ID           int64
	VehicleID    int64
	Description  string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeliveryDate *time.Time

	// Cargados bajo demanda por los repositorios (JOIN), pueden venir vacíos.
	Vehicle *Vehicle
	Items   []OrderItem
}
