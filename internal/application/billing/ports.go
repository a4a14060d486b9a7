package billing

import (
	"context"

	"github.com/tallerok/taller-api/internal/domain/entity"
)

// TallerInfo datos del taller para la cabecera del presupuesto.
type TallerInfo struct {
	Nombre    string
	Direccion string
	Telefono  string
}

// BudgetPDFGenerator genera el comprobante imprimible de una orden.
// La orden llega con vehículo (y su cliente) e ítems cargados.
type BudgetPDFGenerator interface {
	GenerateBudgetPDF(ctx context.Context, taller TallerInfo, order *entity.WorkOrder) ([]byte, error)
}
