package orders

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
)

// ─── Fakes en memoria ────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	seq   int64
	items map[int64]*entity.WorkOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: map[int64]*entity.WorkOrder{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.WorkOrder) error {
	f.seq++
	o.ID = f.seq
	cp := *o
	f.items[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.WorkOrder, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListActivas(_ context.Context) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range f.items {
		if o.Status == entity.OrderFinalizado {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) ListFinalizadasConItems(_ context.Context) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range f.items {
		if o.Status != entity.OrderFinalizado {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status string, deliveryDate *time.Time) error {
	o, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	if deliveryDate != nil {
		o.DeliveryDate = deliveryDate
	}
	return nil
}

type fakeItemRepo struct {
	seq   int64
	items map[int64]*entity.OrderItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[int64]*entity.OrderItem{}}
}

func (f *fakeItemRepo) Create(_ context.Context, it *entity.OrderItem) error {
	f.seq++
	it.ID = f.seq
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *fakeItemRepo) ListByOrder(_ context.Context, orderID int64) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	for _, it := range f.items {
		if it.OrderID == orderID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeVehicleRepo struct {
	vehicles map[int64]*entity.Vehicle
}

func (f *fakeVehicleRepo) Create(v *entity.Vehicle) error { return nil }
func (f *fakeVehicleRepo) GetByID(id int64) (*entity.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}
func (f *fakeVehicleRepo) ListByClient(int64) ([]*entity.Vehicle, error) { return nil, nil }
func (f *fakeVehicleRepo) Delete(int64) error                            { return nil }

var (
	admin    = domain.Session{UserID: "1", Name: "Ana Admin", Role: domain.RoleAdmin}
	mecanico = domain.Session{UserID: "2", Name: "Marcos Mecánico", Role: domain.RoleMecanico}
)

func newTestUseCase() (*UseCase, *fakeOrderRepo, *fakeItemRepo) {
	orderRepo := newFakeOrderRepo()
	itemRepo := newFakeItemRepo()
	vehicleRepo := &fakeVehicleRepo{vehicles: map[int64]*entity.Vehicle{
		1: {ID: 1, ClientID: 1, Brand: "Ford", Model: "Fiesta", Patent: "AB123CD"},
	}}
	return NewUseCase(orderRepo, itemRepo, vehicleRepo, nil), orderRepo, itemRepo
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestCreate_ArrancaPendiente(t *testing.T) {
	uc, _, _ := newTestUseCase()

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		VehicleID: 1, Description: "ruido en la suspensión",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPendiente, resp.Status)
}

func TestCreate_VehiculoInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		VehicleID: 99, Description: "algo",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_AdminFinalizaYEstampaEntrega(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		VehicleID: 1, Description: "frenos",
	})
	require.NoError(t, err)

	resp, err := uc.UpdateStatus(context.Background(), created.ID, entity.OrderFinalizado, admin)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderFinalizado, resp.Status)
	require.NotNil(t, resp.DeliveryDate, "finalizar estampa la fecha de entrega")

	stored, _ := repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, entity.OrderFinalizado, stored.Status)
	assert.NotNil(t, stored.DeliveryDate)
}

func TestUpdateStatus_MecanicoQueFinalizaVaARevision(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		VehicleID: 1, Description: "embrague",
	})
	require.NoError(t, err)

	resp, err := uc.UpdateStatus(context.Background(), created.ID, entity.OrderFinalizado, mecanico)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderRevision, resp.Status,
		"un mecánico no finaliza: la orden queda en revisión")
	assert.Nil(t, resp.DeliveryDate, "sin finalización no hay fecha de entrega")

	stored, _ := repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, entity.OrderRevision, stored.Status)
}

func TestUpdateStatus_FinalizadaNoVuelveAtras(t *testing.T) {
	uc, _, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		VehicleID: 1, Description: "frenos",
	})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), created.ID, entity.OrderFinalizado, admin)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), created.ID, entity.OrderEnProceso, admin)
	assert.ErrorIs(t, err, domain.ErrOrderFinalized)
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _, _ := newTestUseCase()
	_, err := uc.UpdateStatus(context.Background(), 1, "terminada", admin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_Validacion(t *testing.T) {
	uc, _, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		VehicleID: 1, Description: "correa",
	})
	require.NoError(t, err)

	cases := []struct {
		name string
		in   dto.AddOrderItemRequest
	}{
		{"descripción vacía", dto.AddOrderItemRequest{Description: "", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}},
		{"cantidad cero", dto.AddOrderItemRequest{Description: "correa", Quantity: 0, UnitPrice: decimal.NewFromInt(10)}},
		{"precio negativo", dto.AddOrderItemRequest{Description: "correa", Quantity: 1, UnitPrice: decimal.NewFromInt(-10)}},
		{"tipo desconocido", dto.AddOrderItemRequest{Description: "correa", Quantity: 1, UnitPrice: decimal.NewFromInt(10), ItemType: "otro"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.AddItem(context.Background(), created.ID, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAddItem_TipoPorDefectoEsRepuesto(t *testing.T) {
	uc, _, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		VehicleID: 1, Description: "correa",
	})
	require.NoError(t, err)

	item, err := uc.AddItem(context.Background(), created.ID, dto.AddOrderItemRequest{
		Description: "correa de distribución", Quantity: 1, UnitPrice: decimal.NewFromInt(4500),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemRepuesto, item.ItemType)
	assert.True(t, item.Subtotal.Equal(decimal.NewFromInt(4500)))
}

func TestGetByID_TotalSumaLosItems(t *testing.T) {
	uc, _, _ := newTestUseCase()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		VehicleID: 1, Description: "service completo",
	})
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), created.ID, dto.AddOrderItemRequest{
		Description: "filtro de aire", Quantity: 2, UnitPrice: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	_, err = uc.AddItem(context.Background(), created.ID, dto.AddOrderItemRequest{
		Description: "mano de obra", Quantity: 1, UnitPrice: decimal.NewFromInt(3000), ItemType: entity.ItemManoObra,
	})
	require.NoError(t, err)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(5000)), "total = Σ precio × cantidad")
}
