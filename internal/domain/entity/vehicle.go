package entity

import "time"

// Vehicle representa un vehículo de un cliente.
type Vehicle struct {
	ID        int64
	ClientID  int64
	Brand     string
	Model     string
	Year      int
	Patent    string
	CreatedAt time.Time

	// Cargado bajo demanda (JOIN), puede venir nil.
	Client *Client
}
