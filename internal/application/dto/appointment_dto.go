package dto

import "time"

// CreateAppointmentRequest alta de turno. Date y Time llegan separados desde el
// formulario ("2006-01-02" y "15:04") y se combinan en el caso de uso.
type CreateAppointmentRequest struct {
	ClientName string `json:"client_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Note       string `json:"note"`
}

// AppointmentResponse turno en respuestas.
type AppointmentResponse struct {
	ID         int64     `json:"id"`
	ClientName string    `json:"client_name"`
	Date       time.Time `json:"date"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
