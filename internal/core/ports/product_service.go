package ports

import (
	"context"

	"github.com/medsupply/inventory-api/internal/core/domain"
)

// CreateProductInput carries all data needed to add a product to the catalog.
// Image and Category are optional; the service applies defaults.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Image       string
	Category    domain.Category
}

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, fields UpdateProductFields) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// InventoryService applies stock adjustments with floor enforcement.
type InventoryService interface {
	ReduceStock(ctx context.Context, productID string, quantity int) (*domain.Product, error)
	IncreaseStock(ctx context.Context, productID string, quantity int) (*domain.Product, error)
}
