package domain

import (
	"errors"
	"fmt"
	"time"
)

// Category classifies a product within the medical-supply catalog.
type Category string

const (
	CategoryDiagnostic Category = "Diagnostic"
	CategorySurgical   Category = "Surgical"
	CategoryTherapy    Category = "Therapy"
	CategoryMonitoring Category = "Monitoring"
	CategoryOther      Category = "Other"
)

// DefaultImage is used when a product is created without an image reference.
const DefaultImage = "https://via.placeholder.com/250"

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")
var ErrInvalidCategory = errors.New("invalid product category")

// InsufficientStockError signals that a stock reduction would drive stock
// below zero. Available carries the unchanged current stock so callers can
// report it.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

// ValidCategory reports whether c is one of the known catalog categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryDiagnostic, CategorySurgical, CategoryTherapy, CategoryMonitoring, CategoryOther:
		return true
	}
	return false
}

// Product is an inventory record. Stock never goes below zero; reductions are
// applied as conditional writes so concurrent requests cannot overdraw it.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
