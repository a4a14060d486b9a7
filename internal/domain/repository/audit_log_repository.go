package repository

import "github.com/tallerok/taller-api/internal/domain/entity"

// AuditLogRepository acceso al historial de acciones.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	// ListLatest devuelve las últimas entradas, las más nuevas primero.
	ListLatest(limit int) ([]*entity.AuditLog, error)
}
