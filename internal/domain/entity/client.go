package entity

import "time"

// Client representa un cliente del taller. Registro canónico: siempre
// full_name completo, sin variantes name/lastname por pantalla.
type Client struct {
	ID        int64
	FullName  string
	DNI       string
	Phone     string
	CreatedAt time.Time
}
