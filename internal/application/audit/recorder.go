// Package audit registra acciones relevantes del sistema (quién hizo qué).
// La escritura es best-effort: si la DB falla se deja constancia en el log
// estructurado y la operación original sigue adelante.
package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
	"github.com/tallerok/taller-api/pkg/logger"
)

// Niveles de las entradas.
const (
	StatusInfo    = "info"
	StatusWarning = "warning"
)

// Recorder escribe y lista el historial de acciones.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record inserta una entrada. Nunca devuelve error al llamador.
func (r *Recorder) Record(userName, action, details, status string) {
	if r == nil || r.repo == nil {
		return
	}
	if userName == "" {
		userName = "Sistema"
	}
	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		UserName:  userName,
		Action:    action,
		Details:   details,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := r.repo.Create(entry); err != nil && r.log != nil {
		r.log.Warn().Err(err).Str("action", action).Msg("auditoría: no se pudo registrar la acción")
	}
}

// List devuelve las últimas entradas del historial (solo admin en el router).
func (r *Recorder) List(limit int) ([]dto.AuditLogResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	entries, err := r.repo.ListLatest(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditLogResponse{
			ID:        e.ID,
			UserName:  e.UserName,
			Action:    e.Action,
			Details:   e.Details,
			Status:    e.Status,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}
