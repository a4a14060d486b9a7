package dto

import "time"

// AuditLogResponse entrada del historial de acciones.
type AuditLogResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
