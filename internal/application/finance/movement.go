package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallerok/taller-api/internal/application/orders"
	"github.com/tallerok/taller-api/internal/domain/entity"
)

// Tipos de movimiento del feed.
const (
	KindIngreso = "ingreso"
	KindGasto   = "gasto"
)

// Movement es la vista normalizada de un evento de caja: un ingreso por orden
// finalizada o un gasto aprobado. Se construye de cero en cada corrida de la
// conciliación y nunca se persiste.
type Movement struct {
	ID          string // "orden-<id>" | "gasto-<id>"
	Kind        string
	Date        time.Time
	Description string
	Amount      decimal.Decimal // siempre no-negativo; la resta ocurre solo en el neto
	SourceID    int64           // id de la fila de origen, desempata fechas iguales
}

// movementFromOrder construye el movimiento de ingreso de una orden finalizada.
func movementFromOrder(o *entity.WorkOrder, loc *time.Location) Movement {
	desc := fmt.Sprintf("Orden #%d", o.ID)
	if o.Vehicle != nil {
		desc = fmt.Sprintf("Orden #%d · %s %s", o.ID, o.Vehicle.Brand, o.Vehicle.Model)
	}
	return Movement{
		ID:          fmt.Sprintf("orden-%d", o.ID),
		Kind:        KindIngreso,
		Date:        fixDate(orders.EffectiveDate(o), loc),
		Description: desc,
		Amount:      orders.OrderRevenue(o),
		SourceID:    o.ID,
	}
}

// movementFromExpense construye el movimiento de un gasto aprobado.
func movementFromExpense(e *entity.Expense, loc *time.Location) Movement {
	return Movement{
		ID:          fmt.Sprintf("gasto-%d", e.ID),
		Kind:        KindGasto,
		Date:        fixDate(e.Date, loc),
		Description: e.Description,
		Amount:      e.Amount,
		SourceID:    e.ID,
	}
}

// fixDate normaliza fechas calendario puras (00:00:00 en punto, típico de una
// columna DATE) al mediodía de la zona del reporte. Sin esto, convertir la
// medianoche UTC a una zona con offset negativo corre la fecha al día
// anterior: el bug más repetido de la historia de este sistema. Una fecha con
// hora real solo se convierte de zona.
func fixDate(t time.Time, loc *time.Location) time.Time {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		y, m, d := t.Date()
		return time.Date(y, m, d, 12, 0, 0, 0, loc)
	}
	return t.In(loc)
}
