// Package expenses implementa el libro de gastos con flujo de aprobación:
// un admin registra gastos ya aprobados; un mecánico los deja pendientes y
// solo un admin los resuelve. Únicamente los aprobados cuentan en la caja.
package expenses

import (
	"context"
	"fmt"
	"time"

	"github.com/tallerok/taller-api/internal/application/audit"
	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

// UseCase casos de uso de gastos.
type UseCase struct {
	repo  repository.ExpenseRepository
	audit *audit.Recorder
	now   func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ExpenseRepository, auditRec *audit.Recorder) *UseCase {
	return &UseCase{repo: repo, audit: auditRec, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Create registra un gasto. La fecha es siempre la del día según el reloj del
// servidor, nunca la manda el usuario, para que no se puedan cargar gastos
// retro-fechados. El estado inicial depende del rol: admin ⇒ aprobado,
// mecánico ⇒ pendiente.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateExpenseRequest, session domain.Session) (*dto.ExpenseResponse, error) {
	if in.Description == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Category == "" {
		in.Category = entity.CategoriaVarios
	}

	status := entity.ExpensePending
	if session.IsAdmin() {
		status = entity.ExpenseApproved
	}

	today := uc.now()
	expense := &entity.Expense{
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Date:        time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
		Status:      status,
		CreatedBy:   session.Name,
	}
	if err := uc.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// Approve resuelve un gasto pendiente. Solo admin.
//
//   - approve=true: pasa a aprobado; repetir la llamada sobre un gasto ya
//     aprobado no tiene efecto (idempotente).
//   - approve=false: borra el registro. El rechazo es destructivo a propósito,
//     para no acumular filas pendientes muertas; no existe estado "rechazado".
func (uc *UseCase) Approve(ctx context.Context, id int64, approve bool, session domain.Session) error {
	if !session.IsAdmin() {
		return domain.ErrForbidden
	}
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}

	if !approve {
		if err := uc.repo.Delete(ctx, id); err != nil {
			return err
		}
		uc.audit.Record(session.Name, "rechazar_gasto",
			fmt.Sprintf("gasto #%d (%s, $%s) rechazado y eliminado", id, expense.Description, expense.Amount), audit.StatusWarning)
		return nil
	}

	if expense.Status == entity.ExpenseApproved {
		return nil
	}
	if err := uc.repo.UpdateStatus(ctx, id, entity.ExpenseApproved); err != nil {
		return err
	}
	uc.audit.Record(session.Name, "aprobar_gasto",
		fmt.Sprintf("gasto #%d (%s, $%s) aprobado", id, expense.Description, expense.Amount), audit.StatusInfo)
	return nil
}

// Delete borra un gasto en cualquier estado. Borrar uno aprobado cambia los
// totales históricos de la conciliación, así que exige confirm=true además
// del rol admin.
func (uc *UseCase) Delete(ctx context.Context, id int64, confirm bool, session domain.Session) error {
	if !session.IsAdmin() {
		return domain.ErrForbidden
	}
	expense, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	if expense.Status == entity.ExpenseApproved && !confirm {
		return domain.ErrConfirmRequired
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	status := audit.StatusInfo
	if expense.Status == entity.ExpenseApproved {
		status = audit.StatusWarning // modifica totales históricos
	}
	uc.audit.Record(session.Name, "borrar_gasto",
		fmt.Sprintf("gasto #%d (%s, $%s, %s) eliminado", id, expense.Description, expense.Amount, expense.Status), status)
	return nil
}

// List devuelve los gastos, con filtro opcional por estado y rango de fechas.
// No garantiza orden: ordenar es trabajo del motor de conciliación.
func (uc *UseCase) List(ctx context.Context, filter repository.ExpenseFilter) ([]dto.ExpenseResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date.Format("2006-01-02"),
		Status:      e.Status,
		CreatedBy:   e.CreatedBy,
	}
}
