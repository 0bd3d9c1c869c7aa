package handler

import (
	"github.com/medsupply/inventory-api/internal/core/domain"
	"github.com/medsupply/inventory-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Category:    domain.Category(req.Category),
	}
}

func toUpdateFields(req updateProductRequest) ports.UpdateProductFields {
	fields := ports.UpdateProductFields{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		fields.Category = &category
	}
	return fields
}
