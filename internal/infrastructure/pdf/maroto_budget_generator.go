// Package pdf implementa la generación del presupuesto imprimible de una
// orden usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del taller  │  Dirección / Tel / Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre, vehículo, patente, diagnóstico            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Tipo | Cant. | P.Unit | Subtotal      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                              │
//	│  FOOTER: validez del presupuesto                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tallerok/taller-api/internal/application/billing"
	"github.com/tallerok/taller-api/internal/application/orders"
	"github.com/tallerok/taller-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// esAR formatea montos con separadores de miles del español.
var esAR = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoBudgetGenerator implementa billing.BudgetPDFGenerator usando Maroto v2.
type MarotoBudgetGenerator struct{}

// NewMarotoBudgetGenerator construye el generador.
func NewMarotoBudgetGenerator() *MarotoBudgetGenerator { return &MarotoBudgetGenerator{} }

// GenerateBudgetPDF genera el PDF del presupuesto y devuelve sus bytes.
func (g *MarotoBudgetGenerator) GenerateBudgetPDF(
	_ context.Context,
	taller billing.TallerInfo,
	order *entity.WorkOrder,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Presupuesto", true).
		WithAuthor(taller.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(taller))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(orders.OrderRevenue(order)))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del taller (izq), dirección, teléfono y fecha (der).
func headerRow(taller billing.TallerInfo) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(strings.ToUpper(taller.Nombre), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(taller.Direccion, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Tel: "+taller.Telefono, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del cliente, el vehículo y el diagnóstico.
func clienteRow(order *entity.WorkOrder) core.Row {
	cliente, vehiculo, patente := "-", "-", "-"
	if v := order.Vehicle; v != nil {
		vehiculo = fmt.Sprintf("%s %s (%d)", v.Brand, v.Model, v.Year)
		patente = v.Patent
		if v.Client != nil {
			cliente = v.Client.FullName
		}
	}
	return row.New(24).Add(
		col.New(12).Add(
			text.New("Cliente: "+cliente, props.Text{Size: 9, Top: 2}),
			text.New("Vehículo: "+vehiculo, props.Text{Size: 9, Top: 7}),
			text.New("Patente: "+patente, props.Text{Size: 9, Top: 12}),
			text.New("Diagnóstico: "+order.Description, props.Text{Size: 9, Top: 17}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Align: align.Right}
	return row.New(8).Add(
		col.New(5).Add(text.New("DESCRIPCIÓN", header)),
		col.New(2).Add(text.New("TIPO", header)),
		col.New(1).Add(text.New("CANT.", header)),
		col.New(2).Add(text.New("P. UNIT.", headerRight)),
		col.New(2).Add(text.New("SUBTOTAL", headerRight)),
	)
}

// tableDetailRows: una fila por ítem de la orden.
func tableDetailRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, item := range items {
		tipo := strings.ReplaceAll(item.ItemType, "_", " ")
		rows = append(rows, row.New(7).Add(
			col.New(5).Add(text.New(item.Description, props.Text{Size: 9})),
			col.New(2).Add(text.New(tipo, props.Text{Size: 8, Color: colorGray})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9})),
			col.New(2).Add(text.New(formatMonto(item.UnitPrice), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(formatMonto(item.Subtotal()), props.Text{Size: 9, Align: align.Right})),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(7).Add(
			col.New(12).Add(text.New("Sin costos cargados aún.", props.Text{
				Size: 9, Color: colorGray, Align: align.Center,
			})),
		))
	}
	return rows
}

// totalRow: total a pagar.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TOTAL A PAGAR: "+formatMonto(total), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 3,
			}),
		),
	)
}

// footerRow: leyenda de validez.
func footerRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Presupuesto válido por 15 días. Gracias por su confianza.", props.Text{
				Size: 8, Color: colorGray, Align: align.Center, Top: 2,
			}),
		),
	)
}

// formatMonto formatea un monto con separadores de miles, ej: "$ 12.500,50".
func formatMonto(d decimal.Decimal) string {
	return esAR.Sprintf("$ %.2f", d.InexactFloat64())
}
