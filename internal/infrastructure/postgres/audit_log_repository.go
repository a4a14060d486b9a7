package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación de AuditLogRepository.
type AuditLogRepo struct {
	q Querier
}

func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO audit_logs (id, user_name, action, details, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.UserName, log.Action, log.Details, log.Status, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit_log: %w", err)
	}
	return nil
}

func (r *AuditLogRepo) ListLatest(limit int) ([]*entity.AuditLog, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_name, action, details, status, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit_logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.UserName, &l.Action, &l.Details, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit_log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
