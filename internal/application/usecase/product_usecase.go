package usecase

import (
	"time"

	"github.com/tallerok/taller-api/internal/application/dto"
	"github.com/tallerok/taller-api/internal/domain"
	"github.com/tallerok/taller-api/internal/domain/entity"
	"github.com/tallerok/taller-api/internal/domain/repository"
)

const defaultMinStock = 5 // umbral de reposición si no se indica uno

// ProductUseCase inventario de repuestos: alta, listado y ajuste de stock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Stock < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock <= 0 {
		in.MinStock = defaultMinStock
	}
	product := &entity.Product{
		Name:      in.Name,
		Stock:     in.Stock,
		MinStock:  in.MinStock,
		Price:     in.Price,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List devuelve el inventario completo ordenado por nombre.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// AdjustStock aplica un delta al stock (botones +/- de la pantalla de
// inventario). El stock nunca baja de cero.
func (uc *ProductUseCase) AdjustStock(id int64, delta int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	newStock := product.Stock + delta
	if newStock < 0 {
		newStock = 0
	}
	if err := uc.repo.UpdateStock(id, newStock); err != nil {
		return nil, err
	}
	product.Stock = newStock
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		Price:     p.Price,
		LowStock:  p.LowStock(),
		CreatedAt: p.CreatedAt,
	}
}
