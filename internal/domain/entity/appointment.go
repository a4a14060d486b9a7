package entity

import "time"

// Appointment representa un turno agendado en el taller.
type Appointment struct {
	ID         int64
	ClientName string
	Date       time.Time // fecha y hora combinadas
	Note       string
	CreatedAt  time.Time
}
