package checklist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
)

// ─── Fakes en memoria ────────────────────────────────────────────────────────

type fakeChecklistRepo struct {
	seq     int64
	byOrder map[int64]*entity.Checklist
}

func newFakeChecklistRepo() *fakeChecklistRepo {
	return &fakeChecklistRepo{byOrder: map[int64]*entity.Checklist{}}
}

func (f *fakeChecklistRepo) GetByOrderID(_ context.Context, orderID int64) (*entity.Checklist, error) {
	ch, ok := f.byOrder[orderID]
	if !ok {
		return nil, nil
	}
	cp := *ch
	return &cp, nil
}

func (f *fakeChecklistRepo) Upsert(_ context.Context, ch *entity.Checklist) error {
	if existing, ok := f.byOrder[ch.OrderID]; ok {
		ch.ID = existing.ID
	} else {
		f.seq++
		ch.ID = f.seq
	}
	ch.UpdatedAt = time.Now()
	cp := *ch
	f.byOrder[ch.OrderID] = &cp
	return nil
}

type fakeOrderRepo struct {
	orders map[int64]*entity.WorkOrder
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.WorkOrder) error { return nil }

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.WorkOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}

func (f *fakeOrderRepo) ListActivas(_ context.Context) ([]*entity.WorkOrder, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListFinalizadasConItems(_ context.Context) ([]*entity.WorkOrder, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status string, deliveryDate *time.Time) error {
	return nil
}

func newUseCaseConOrden(t *testing.T) (*UseCase, *fakeChecklistRepo) {
	t.Helper()
	checklists := newFakeChecklistRepo()
	orders := &fakeOrderRepo{orders: map[int64]*entity.WorkOrder{
		1: {ID: 1, Status: entity.OrderPendiente},
	}}
	return NewUseCase(checklists, orders), checklists
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestGetByOrder_SinChequeoDevuelveVacio(t *testing.T) {
	uc, _ := newUseCaseConOrden(t)

	resp, err := uc.GetByOrder(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.OrderID)
	assert.Empty(t, resp.Values.Status)
	assert.Empty(t, resp.Values.Extras)
	assert.Nil(t, resp.UpdatedAt)
}

func TestGetByOrder_OrdenInexistente(t *testing.T) {
	uc, _ := newUseCaseConOrden(t)

	_, err := uc.GetByOrder(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSave_CreaYDespuesRecupera(t *testing.T) {
	uc, _ := newUseCaseConOrden(t)

	in := dto.SaveChecklistRequest{Values: dto.ChecklistValuesPayload{
		Status: map[string]string{"Pastillas_entrada": "bad", "Discos_entrada": "ok"},
		Extras: map[string]string{"Nivel Carga Batería_entrada": "12.4"},
	}}
	saved, err := uc.Save(context.Background(), 1, in)
	require.NoError(t, err)
	require.NotNil(t, saved.UpdatedAt)

	got, err := uc.GetByOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "bad", got.Values.Status["Pastillas_entrada"])
	assert.Equal(t, "12.4", got.Values.Extras["Nivel Carga Batería_entrada"])
}

func TestSave_DosVecesPisaLaFilaAnterior(t *testing.T) {
	uc, checklists := newUseCaseConOrden(t)

	primera := dto.SaveChecklistRequest{Values: dto.ChecklistValuesPayload{
		Status: map[string]string{"Pastillas_entrada": "bad"},
	}}
	_, err := uc.Save(context.Background(), 1, primera)
	require.NoError(t, err)

	segunda := dto.SaveChecklistRequest{Values: dto.ChecklistValuesPayload{
		Status: map[string]string{"Pastillas_salida": "ok"},
	}}
	_, err = uc.Save(context.Background(), 1, segunda)
	require.NoError(t, err)

	// Upsert por order_id: sigue habiendo una sola fila y con el contenido nuevo
	require.Len(t, checklists.byOrder, 1)
	got, err := uc.GetByOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Values.Status["Pastillas_salida"])
	assert.NotContains(t, got.Values.Status, "Pastillas_entrada")
}

func TestSave_OrdenInexistente(t *testing.T) {
	uc, _ := newUseCaseConOrden(t)

	in := dto.SaveChecklistRequest{Values: dto.ChecklistValuesPayload{
		Status: map[string]string{"Pastillas_entrada": "ok"},
	}}
	_, err := uc.Save(context.Background(), 42, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSave_EstadoInvalido(t *testing.T) {
	uc, _ := newUseCaseConOrden(t)

	in := dto.SaveChecklistRequest{Values: dto.ChecklistValuesPayload{
		Status: map[string]string{"Pastillas_entrada": "regular"},
	}}
	_, err := uc.Save(context.Background(), 1, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSave_ValoresNilQuedanComoMapasVacios(t *testing.T) {
	uc, _ := newUseCaseConOrden(t)

	saved, err := uc.Save(context.Background(), 1, dto.SaveChecklistRequest{})
	require.NoError(t, err)
	assert.NotNil(t, saved.Values.Status)
	assert.NotNil(t, saved.Values.Extras)
}
