// Package finance implementa el motor de conciliación de caja: fusiona la
// facturación de las órdenes finalizadas con los gastos aprobados en un feed
// cronológico único y en agregados por período (día, mes o semestre).
package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain/entity"
)

// Granularidades del reporte. Cada una define su ventana natural:
// día ⇒ mes en curso, mes y semestre ⇒ año en curso.
const (
	GranularityDay      = "day"
	GranularityMonth    = "month"
	GranularitySemester = "semester"
)

// Reconcile ejecuta la conciliación sobre datos ya cargados. Es una función
// pura (el reloj y la zona entran como parámetros) para poder testearla sin
// DB:
//
//  1. solo cuentan los gastos con status aprobado; los pendientes no aparecen
//     en ningún total ni en el feed;
//  2. cada orden finalizada aporta un movimiento de ingreso con su facturación
//     y su fecha efectiva;
//  3. se fusiona, se ordena por fecha descendente (a igual instante gana el id
//     de origen más grande: lo creado más recientemente primero) y se agrupa
//     según la granularidad;
//  4. neto = ingresos − gastos, siempre; una ventana sin movimientos devuelve
//     un resultado vacío, nunca un error.
func Reconcile(
	finalizadas []*entity.WorkOrder,
	gastos []*entity.Expense,
	granularity string,
	now time.Time,
	loc *time.Location,
) dto.FinancialFeedResponse {
	movements := make([]Movement, 0, len(finalizadas)+len(gastos))
	for _, o := range finalizadas {
		movements = append(movements, movementFromOrder(o, loc))
	}
	for _, e := range gastos {
		if e.Status != entity.ExpenseApproved {
			continue
		}
		movements = append(movements, movementFromExpense(e, loc))
	}

	from, to := reportWindow(granularity, now, loc)
	inWindow := movements[:0]
	for _, m := range movements {
		if m.Date.Before(from) || m.Date.After(to) {
			continue
		}
		inWindow = append(inWindow, m)
	}
	movements = inWindow

	sort.Slice(movements, func(i, j int) bool {
		a, b := movements[i], movements[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if a.SourceID != b.SourceID {
			return a.SourceID > b.SourceID
		}
		return a.ID > b.ID
	})

	totals := dto.FinanceTotals{Ingresos: decimal.Zero, Gastos: decimal.Zero, Neto: decimal.Zero}
	grouped := make(map[string]*dto.BucketDTO)
	for _, m := range movements {
		key, label := bucketKey(granularity, m.Date)
		b, ok := grouped[key]
		if !ok {
			b = &dto.BucketDTO{Key: key, Label: label, Ingresos: decimal.Zero, Gastos: decimal.Zero}
			grouped[key] = b
		}
		switch m.Kind {
		case KindIngreso:
			totals.Ingresos = totals.Ingresos.Add(m.Amount)
			b.Ingresos = b.Ingresos.Add(m.Amount)
			b.Ordenes++
		case KindGasto:
			totals.Gastos = totals.Gastos.Add(m.Amount)
			b.Gastos = b.Gastos.Add(m.Amount)
			b.GastosCount++
		}
	}
	totals.Neto = totals.Ingresos.Sub(totals.Gastos)

	buckets := make([]dto.BucketDTO, 0, len(grouped))
	for _, b := range grouped {
		b.Neto = b.Ingresos.Sub(b.Gastos)
		buckets = append(buckets, *b)
	}
	// Más nuevo primero; las tres formas de clave ordenan bien como string.
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Key > buckets[j].Key })

	feed := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		feed = append(feed, dto.MovementDTO{
			ID:          m.ID,
			Kind:        m.Kind,
			Date:        m.Date,
			Description: m.Description,
			Amount:      m.Amount,
		})
	}

	return dto.FinancialFeedResponse{
		Granularity: granularity,
		Movements:   feed,
		Totals:      totals,
		Buckets:     buckets,
	}
}

// reportWindow devuelve la ventana [from, to] de la granularidad:
// day ⇒ mes en curso; month y semester ⇒ año en curso.
func reportWindow(granularity string, now time.Time, loc *time.Location) (time.Time, time.Time) {
	now = now.In(loc)
	switch granularity {
	case GranularityDay:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return from, to
	default: // month, semester
		from := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		to := time.Date(now.Year(), 12, 31, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
		return from, to
	}
}

// bucketKey devuelve la clave y la etiqueta del período al que cae una fecha.
func bucketKey(granularity string, d time.Time) (key, label string) {
	switch granularity {
	case GranularityDay:
		return d.Format("2006-01-02"), d.Format("02/01/2006")
	case GranularitySemester:
		sem := 1
		if d.Month() > time.June {
			sem = 2
		}
		key = fmt.Sprintf("%d-S%d", d.Year(), sem)
		if sem == 1 {
			return key, fmt.Sprintf("1er Semestre %d", d.Year())
		}
		return key, fmt.Sprintf("2do Semestre %d", d.Year())
	default: // month
		return d.Format("2006-01"), monthLabel(d)
	}
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
