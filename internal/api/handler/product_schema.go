package handler

import "github.com/medsupply/inventory-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
	Stock       int     `json:"stock"       validate:"required,gte=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category"    validate:"omitempty,oneof=Diagnostic Surgical Therapy Monitoring Other"`
}

// updateProductRequest carries a partial update; absent fields are left
// untouched. Pointers distinguish "not sent" from zero values.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=Diagnostic Surgical Therapy Monitoring Other"`
}

type adjustStockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// --- Response types ---

type productMessageResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

type messageResponse struct {
	Message string `json:"message"`
}
