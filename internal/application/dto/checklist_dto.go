package dto

import "time"

// ChecklistValuesPayload contenido del chequeo en requests y respuestas.
type ChecklistValuesPayload struct {
	Status map[string]string `json:"status"`
	Extras map[string]string `json:"extras"`
}

// SaveChecklistRequest guardado del chequeo de una orden (upsert).
type SaveChecklistRequest struct {
	Values ChecklistValuesPayload `json:"values"`
}

// ChecklistResponse chequeo de inspección en respuestas. UpdatedAt va en nil
// cuando la orden todavía no tiene chequeo guardado.
type ChecklistResponse struct {
	OrderID   int64                  `json:"order_id"`
	Values    ChecklistValuesPayload `json:"values"`
	UpdatedAt *time.Time             `json:"updated_at,omitempty"`
}
