package dto

import "time"

// CreateVehicleRequest alta de vehículo para un cliente.
type CreateVehicleRequest struct {
	ClientID int64  `json:"client_id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Patent   string `json:"patent"`
}

// VehicleResponse vehículo en respuestas.
type VehicleResponse struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"client_id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Patent    string    `json:"patent"`
	CreatedAt time.Time `json:"created_at"`
}
