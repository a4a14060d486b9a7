package entity

import "time"

// User representa un empleado del taller con acceso al sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // domain.RoleAdmin | domain.RoleMecanico
	CreatedAt    time.Time
}
