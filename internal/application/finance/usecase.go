package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

// UseCase orquesta la conciliación: trae las dos fuentes y delega en Reconcile.
//
// Si cualquiera de las dos lecturas falla, falla la corrida completa: nunca se
// muestra un reporte parcial o viejo; el llamador reintenta la operación entera.
type UseCase struct {
	orderRepo   repository.WorkOrderRepository
	expenseRepo repository.ExpenseRepository
	loc         *time.Location
	now         func() time.Time
}

// NewUseCase construye el caso de uso. loc es la zona horaria del reporte
// (nil ⇒ local del proceso).
func NewUseCase(orderRepo repository.WorkOrderRepository, expenseRepo repository.ExpenseRepository, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{orderRepo: orderRepo, expenseRepo: expenseRepo, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// GetFinancialFeed devuelve el feed de movimientos, los totales y los
// agregados por período para la granularidad pedida.
//
// Las dos consultas van en paralelo, como el resto de los reportes.
func (uc *UseCase) GetFinancialFeed(ctx context.Context, granularity string) (*dto.FinancialFeedResponse, error) {
	switch granularity {
	case GranularityDay, GranularityMonth, GranularitySemester:
	case "":
		granularity = GranularityMonth
	default:
		return nil, domain.ErrInvalidInput
	}

	type ordersResult struct {
		list []*entity.WorkOrder
		err  error
	}
	type expensesResult struct {
		list []*entity.Expense
		err  error
	}

	ordersCh := make(chan ordersResult, 1)
	expensesCh := make(chan expensesResult, 1)

	go func() {
		list, err := uc.orderRepo.ListFinalizadasConItems(ctx)
		ordersCh <- ordersResult{list, err}
	}()
	go func() {
		list, err := uc.expenseRepo.List(ctx, repository.ExpenseFilter{Status: entity.ExpenseApproved})
		expensesCh <- expensesResult{list, err}
	}()

	ords := <-ordersCh
	exps := <-expensesCh

	if ords.err != nil {
		return nil, fmt.Errorf("conciliación: órdenes finalizadas: %w", ords.err)
	}
	if exps.err != nil {
		return nil, fmt.Errorf("conciliación: gastos: %w", exps.err)
	}

	feed := Reconcile(ords.list, exps.list, granularity, uc.now(), uc.loc)
	return &feed, nil
}
