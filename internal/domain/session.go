package domain

// Session identifica al actor de una operación. Se construye en el handler a
// partir del JWT y se pasa explícitamente a los casos de uso que autorizan,
// en lugar de leer estado global.
type Session struct {
	UserID string
	Name   string
	Role   string
}

// IsAdmin indica si la sesión pertenece al rol elevado (aprueba gastos y
// finaliza órdenes sin revisión).
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// Roles válidos del sistema.
const (
	RoleAdmin    = "admin"
	RoleMecanico = "mecanico"
)
