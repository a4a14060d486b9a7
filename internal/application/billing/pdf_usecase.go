// Package billing arma el presupuesto imprimible de una orden: el comprobante
// que el taller le entrega al cliente con los repuestos, la mano de obra y el
// total a pagar.
package billing

import (
	"context"
	"fmt"

	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

// PDFUseCase genera el PDF del presupuesto de una orden.
type PDFUseCase struct {
	orderRepo   repository.WorkOrderRepository
	itemRepo    repository.OrderItemRepository
	vehicleRepo repository.VehicleRepository
	clientRepo  repository.ClientRepository
	generator   BudgetPDFGenerator
	taller      TallerInfo
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	orderRepo repository.WorkOrderRepository,
	itemRepo repository.OrderItemRepository,
	vehicleRepo repository.VehicleRepository,
	clientRepo repository.ClientRepository,
	generator BudgetPDFGenerator,
	taller TallerInfo,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		vehicleRepo: vehicleRepo,
		clientRepo:  clientRepo,
		generator:   generator,
		taller:      taller,
	}
}

// GenerateBudget arma el PDF del presupuesto de la orden y devuelve sus bytes
// junto con un nombre de archivo sugerido.
func (uc *PDFUseCase) GenerateBudget(ctx context.Context, orderID int64) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.itemRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	order.Items = items

	if order.Vehicle == nil {
		vehicle, err := uc.vehicleRepo.GetByID(order.VehicleID)
		if err != nil {
			return nil, "", err
		}
		order.Vehicle = vehicle
	}
	if order.Vehicle != nil && order.Vehicle.Client == nil {
		client, err := uc.clientRepo.GetByID(order.Vehicle.ClientID)
		if err != nil {
			return nil, "", err
		}
		order.Vehicle.Client = client
	}

	pdfBytes, err := uc.generator.GenerateBudgetPDF(ctx, uc.taller, order)
	if err != nil {
		return nil, "", fmt.Errorf("presupuesto orden %d: %w", orderID, err)
	}

	filename := fmt.Sprintf("presupuesto-orden-%d.pdf", orderID)
	if order.Vehicle != nil && order.Vehicle.Patent != "" {
		filename = fmt.Sprintf("presupuesto-%s.pdf", order.Vehicle.Patent)
	}
	return pdfBytes, filename, nil
}
