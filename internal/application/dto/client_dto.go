package dto

import "time"

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	FullName string `json:"full_name"`
	DNI      string `json:"dni"`
	Phone    string `json:"phone"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	DNI       string    `json:"dni"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
