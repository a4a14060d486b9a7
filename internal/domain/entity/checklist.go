package entity

import "time"

// Estados posibles de un ítem del chequeo.
const (
	ChecklistOK        = "ok"
	ChecklistAttention = "attention"
	ChecklistBad       = "bad"
	ChecklistNA        = "na"
)

// ChecklistValues es el contenido del chequeo como lo arma la pantalla del
// mecánico: Status guarda el estado por ítem con la clave "<ítem>_<modo>"
// (modo entrada o salida) y Extras las lecturas libres (voltaje de batería,
// presión, códigos del escáner).
type ChecklistValues struct {
	Status map[string]string `json:"status"`
	Extras map[string]string `json:"extras"`
}

// Checklist es el chequeo de inspección de una orden. Hay a lo sumo una fila
// por orden: guardar de nuevo pisa la anterior.
type Checklist struct {
	ID        int64
	OrderID   int64
	Values    ChecklistValues
	UpdatedAt time.Time
}
