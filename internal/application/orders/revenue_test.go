package orders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tallerok/taller-api/internal/domain/entity"
)

func TestOrderRevenue_SumaPrecioPorCantidad(t *testing.T) {
	o := &entity.WorkOrder{
		Items: []entity.OrderItem{
			{UnitPrice: decimal.NewFromInt(1500), Quantity: 2},    // 3000
			{UnitPrice: decimal.NewFromFloat(99.50), Quantity: 3}, // 298.50
		},
	}
	assert.True(t, OrderRevenue(o).Equal(decimal.NewFromFloat(3298.50)))
}

func TestOrderRevenue_SinItemsValeCero(t *testing.T) {
	o := &entity.WorkOrder{}
	assert.True(t, OrderRevenue(o).IsZero())
}

func TestEffectiveDate_PrefiereEntrega(t *testing.T) {
	created := time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)
	delivered := time.Date(2026, time.January, 5, 16, 0, 0, 0, time.UTC)

	o := &entity.WorkOrder{CreatedAt: created, DeliveryDate: &delivered}
	assert.True(t, EffectiveDate(o).Equal(delivered))

	o.DeliveryDate = nil
	assert.True(t, EffectiveDate(o).Equal(created),
		"sin fecha de entrega se cae a created_at")
}
