package ports

import (
	"context"

	"github.com/medsupply/inventory-api/internal/core/domain"
)

// UpdateProductFields carries the partial-update payload for a product.
// Nil fields are left untouched.
type UpdateProductFields struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Image       *string
	Category    *domain.Category
}

// ProductRepository defines persistence operations for catalog products.
//
// DecrementStock applies "stock = stock - qty where stock >= qty" as a single
// conditional write and returns the updated product. When no document matches,
// the repository distinguishes a missing product (domain.ErrProductNotFound)
// from an insufficient floor (*domain.InsufficientStockError carrying the
// current stock). IncrementStock is the unconditional counterpart.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, fields UpdateProductFields) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, qty int) (*domain.Product, error)
	IncrementStock(ctx context.Context, id string, qty int) (*domain.Product, error)
}
