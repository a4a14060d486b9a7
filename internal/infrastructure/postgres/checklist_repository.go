package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

var _ repository.ChecklistRepository = (*ChecklistRepo)(nil)

// ChecklistRepo implementación de ChecklistRepository. La columna values es
// JSONB; pgx la mapea contra entity.ChecklistValues por sus tags json.
type ChecklistRepo struct {
	q Querier
}

func NewChecklistRepository(q Querier) *ChecklistRepo {
	return &ChecklistRepo{q: q}
}

func (r *ChecklistRepo) GetByOrderID(ctx context.Context, orderID int64) (*entity.Checklist, error) {
	var ch entity.Checklist
	err := r.q.QueryRow(ctx, `
		SELECT id, order_id, "values", updated_at
		FROM checklists
		WHERE order_id = $1`, orderID).
		Scan(&ch.ID, &ch.OrderID, &ch.Values, &ch.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checklist: %w", err)
	}
	return &ch, nil
}

func (r *ChecklistRepo) Upsert(ctx context.Context, checklist *entity.Checklist) error {
	query := `
		INSERT INTO checklists (order_id, "values", updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (order_id) DO UPDATE
		SET "values" = EXCLUDED."values", updated_at = now()
		RETURNING id, updated_at`
	err := r.q.QueryRow(ctx, query, checklist.OrderID, checklist.Values).
		Scan(&checklist.ID, &checklist.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert checklist: %w", err)
	}
	return nil
}
