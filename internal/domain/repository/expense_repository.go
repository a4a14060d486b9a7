package repository

import (
	"context"
	"time"

	"github.com/tallerok/taller-api/internal/domain/entity"
)

// ExpenseFilter filtros opcionales para listar gastos. Campos en cero = sin filtro.
type ExpenseFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

// ExpenseRepository acceso a gastos.
// El orden de los resultados no está garantizado: ordenar es responsabilidad
// del motor de conciliación.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id int64) (*entity.Expense, error)
	List(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
