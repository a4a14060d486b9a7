package entity

import "time"

// AuditLog registra una acción relevante (login, aprobación, borrado, etc.).
// La escritura es best-effort: un fallo se loguea pero nunca corta la operación.
type AuditLog struct {
	ID        string // uuid
	UserName  string
	Action    string
	Details   string
	Status    string // info | warning | error
	CreatedAt time.Time
}
