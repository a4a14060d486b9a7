package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

type stubOrderRepo struct {
	list []*entity.WorkOrder
	err  error
}

func (s *stubOrderRepo) Create(context.Context, *entity.WorkOrder) error { return nil }
func (s *stubOrderRepo) GetByID(context.Context, int64) (*entity.WorkOrder, error) {
	return nil, nil
}
func (s *stubOrderRepo) ListActivas(context.Context) ([]*entity.WorkOrder, error) {
	return nil, nil
}
func (s *stubOrderRepo) ListFinalizadasConItems(context.Context) ([]*entity.WorkOrder, error) {
	return s.list, s.err
}
func (s *stubOrderRepo) UpdateStatus(context.Context, int64, string, *time.Time) error {
	return nil
}

type stubExpenseRepo struct {
	list []*entity.Expense
	err  error
}

func (s *stubExpenseRepo) Create(context.Context, *entity.Expense) error { return nil }
func (s *stubExpenseRepo) GetByID(context.Context, int64) (*entity.Expense, error) {
	return nil, nil
}
func (s *stubExpenseRepo) List(context.Context, repository.ExpenseFilter) ([]*entity.Expense, error) {
	return s.list, s.err
}
func (s *stubExpenseRepo) UpdateStatus(context.Context, int64, string) error { return nil }
func (s *stubExpenseRepo) Delete(context.Context, int64) error               { return nil }

func TestGetFinancialFeed_GranularidadInvalida(t *testing.T) {
	uc := NewUseCase(&stubOrderRepo{}, &stubExpenseRepo{}, testLoc)
	_, err := uc.GetFinancialFeed(context.Background(), "week")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetFinancialFeed_GranularidadVaciaEsMes(t *testing.T) {
	uc := NewUseCase(&stubOrderRepo{}, &stubExpenseRepo{}, testLoc).
		WithClock(func() time.Time { return testNow })
	feed, err := uc.GetFinancialFeed(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, GranularityMonth, feed.Granularity)
}

// Si cualquiera de las dos fuentes falla, la corrida completa falla: nunca un
// reporte parcial.
func TestGetFinancialFeed_FallaCompletaSiUnaFuenteFalla(t *testing.T) {
	boom := errors.New("conexión caída")

	uc := NewUseCase(&stubOrderRepo{err: boom}, &stubExpenseRepo{}, testLoc)
	_, err := uc.GetFinancialFeed(context.Background(), GranularityMonth)
	assert.ErrorIs(t, err, boom)

	uc = NewUseCase(&stubOrderRepo{}, &stubExpenseRepo{err: boom}, testLoc)
	_, err = uc.GetFinancialFeed(context.Background(), GranularityMonth)
	assert.ErrorIs(t, err, boom)
}

func TestGetFinancialFeed_FusionaLasDosFuentes(t *testing.T) {
	d := time.Date(2026, time.March, 10, 12, 0, 0, 0, testLoc)
	orderRepo := &stubOrderRepo{list: []*entity.WorkOrder{orden(1, d, 2000)}}
	expenseRepo := &stubExpenseRepo{list: []*entity.Expense{gasto(1, d, 750, entity.ExpenseApproved)}}

	uc := NewUseCase(orderRepo, expenseRepo, testLoc).
		WithClock(func() time.Time { return testNow })

	feed, err := uc.GetFinancialFeed(context.Background(), GranularityMonth)
	require.NoError(t, err)

	require.Len(t, feed.Movements, 2)
	assert.True(t, feed.Totals.Neto.Equal(decimal.NewFromInt(1250)))
}
