package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

// fakeExpenseRepo repositorio en memoria para los tests del caso de uso.
type fakeExpenseRepo struct {
	seq   int64
	items map[int64]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{items: map[int64]*entity.Expense{}}
}

func (f *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	f.seq++
	e.ID = f.seq
	cp := *e
	f.items[e.ID] = &cp
	return nil
}

func (f *fakeExpenseRepo) GetByID(_ context.Context, id int64) (*entity.Expense, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeExpenseRepo) List(_ context.Context, filter repository.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.items {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeExpenseRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	e, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Status = status
	return nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

var (
	admin    = domain.Session{UserID: "1", Name: "Ana Admin", Role: domain.RoleAdmin}
	mecanico = domain.Session{UserID: "2", Name: "Marcos Mecánico", Role: domain.RoleMecanico}
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeExpenseRepo) *UseCase {
	return NewUseCase(repo, nil).WithClock(fixedClock)
}

func TestCreate_AdminNaceAprobado(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := newTestUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "repuestos de frenos",
		Amount:      decimal.NewFromInt(1500),
	}, admin)
	require.NoError(t, err)

	assert.Equal(t, entity.ExpenseApproved, resp.Status, "el gasto de un admin nace aprobado")
	assert.Equal(t, entity.CategoriaVarios, resp.Category, "sin categoría ⇒ Varios")
	assert.Equal(t, "2026-03-15", resp.Date, "la fecha la pone el reloj del servidor")
	assert.Equal(t, "Ana Admin", resp.CreatedBy)
}

func TestCreate_MecanicoNacePendiente(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := newTestUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "aceite",
		Amount:      decimal.NewFromInt(800),
		Category:    "Lubricantes",
	}, mecanico)
	require.NoError(t, err)

	assert.Equal(t, entity.ExpensePending, resp.Status)
	assert.Equal(t, "Lubricantes", resp.Category)
}

func TestCreate_Validacion(t *testing.T) {
	uc := newTestUseCase(newFakeExpenseRepo())

	_, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "", Amount: decimal.NewFromInt(100),
	}, admin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descripción vacía")

	_, err = uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "algo", Amount: decimal.Zero,
	}, admin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero")

	_, err = uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "algo", Amount: decimal.NewFromInt(-50),
	}, admin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto negativo")
}

func TestApprove_SoloAdmin(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := newTestUseCase(repo)
	resp, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "bujías", Amount: decimal.NewFromInt(500),
	}, mecanico)
	require.NoError(t, err)

	err = uc.Approve(context.Background(), resp.ID, true, mecanico)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Approve(context.Background(), resp.ID, true, admin))
	got, _ := repo.GetByID(context.Background(), resp.ID)
	assert.Equal(t, entity.ExpenseApproved, got.Status)
}

func TestApprove_EsIdempotente(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := newTestUseCase(repo)
	resp, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "bujías", Amount: decimal.NewFromInt(500),
	}, admin) // ya nace aprobado
	require.NoError(t, err)

	require.NoError(t, uc.Approve(context.Background(), resp.ID, true, admin))
	got, _ := repo.GetByID(context.Background(), resp.ID)
	assert.Equal(t, entity.ExpenseApproved, got.Status)
}

func TestApprove_RechazoBorraElRegistro(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := newTestUseCase(repo)
	resp, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "dudoso", Amount: decimal.NewFromInt(500),
	}, mecanico)
	require.NoError(t, err)

	require.NoError(t, uc.Approve(context.Background(), resp.ID, false, admin))

	got, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "el rechazo es destructivo: la fila desaparece")
}

func TestApprove_NoExiste(t *testing.T) {
	uc := newTestUseCase(newFakeExpenseRepo())
	err := uc.Approve(context.Background(), 999, true, admin)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_AprobadoExigeConfirmacion(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := newTestUseCase(repo)
	resp, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "grande", Amount: decimal.NewFromInt(9000),
	}, admin)
	require.NoError(t, err)

	err = uc.Delete(context.Background(), resp.ID, false, admin)
	assert.ErrorIs(t, err, domain.ErrConfirmRequired,
		"borrar un aprobado sin confirm debe rebotar")

	require.NoError(t, uc.Delete(context.Background(), resp.ID, true, admin))
	got, _ := repo.GetByID(context.Background(), resp.ID)
	assert.Nil(t, got)
}

func TestDelete_PendienteNoExigeConfirmacion(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := newTestUseCase(repo)
	resp, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "chico", Amount: decimal.NewFromInt(100),
	}, mecanico)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), resp.ID, false, admin))
}

func TestDelete_SoloAdmin(t *testing.T) {
	uc := newTestUseCase(newFakeExpenseRepo())
	err := uc.Delete(context.Background(), 1, true, mecanico)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Aprobar un pendiente lo hace visible en el listado de aprobados: es el
// mismo efecto que ve la conciliación (+monto en los totales).
func TestApprove_ElGastoEntraAlListadoDeAprobados(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := newTestUseCase(repo)
	resp, err := uc.Create(context.Background(), dto.CreateExpenseRequest{
		Description: "filtros", Amount: decimal.NewFromInt(500),
	}, mecanico)
	require.NoError(t, err)

	aprobados, err := uc.List(context.Background(), repository.ExpenseFilter{Status: entity.ExpenseApproved})
	require.NoError(t, err)
	assert.Empty(t, aprobados)

	require.NoError(t, uc.Approve(context.Background(), resp.ID, true, admin))

	aprobados, err = uc.List(context.Background(), repository.ExpenseFilter{Status: entity.ExpenseApproved})
	require.NoError(t, err)
	require.Len(t, aprobados, 1)
	assert.True(t, aprobados[0].Amount.Equal(decimal.NewFromInt(500)))
}
