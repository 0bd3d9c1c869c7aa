package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/medsupply/inventory-api/internal/api/metrics"
	"github.com/medsupply/inventory-api/internal/core/domain"
	"github.com/medsupply/inventory-api/internal/core/ports"
)

// InventoryService applies stock adjustments. The floor check ("never below
// zero") is pushed down to the repository as a conditional write, so two
// concurrent reductions on the same product cannot both pass their check and
// overdraw the stock.
type InventoryService struct {
	repo  ports.ProductRepository
	cache ProductCache
	log   zerolog.Logger
}

func NewInventoryService(repo ports.ProductRepository, cache ProductCache, log zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, cache: cache, log: log}
}

// ReduceStock decrements a product's stock by quantity, failing with
// *domain.InsufficientStockError when fewer than quantity units are available.
func (s *InventoryService) ReduceStock(ctx context.Context, productID string, quantity int) (*domain.Product, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.repo.DecrementStock(ctx, productID, quantity)
	if err != nil {
		metrics.StockAdjustmentsTotal.WithLabelValues("reduce", adjustmentResult(err)).Inc()
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			s.log.Info().
				Str("product_id", productID).
				Int("requested", quantity).
				Int("available", insufficient.Available).
				Msg("stock reduction rejected")
		}
		return nil, err
	}

	s.invalidate(ctx, productID)
	metrics.StockAdjustmentsTotal.WithLabelValues("reduce", "ok").Inc()
	s.log.Info().
		Str("product_id", productID).
		Int("quantity", quantity).
		Int("remaining", product.Stock).
		Msg("stock reduced")
	return product, nil
}

// IncreaseStock increments a product's stock by quantity. No upper bound.
func (s *InventoryService) IncreaseStock(ctx context.Context, productID string, quantity int) (*domain.Product, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.repo.IncrementStock(ctx, productID, quantity)
	if err != nil {
		metrics.StockAdjustmentsTotal.WithLabelValues("increase", adjustmentResult(err)).Inc()
		return nil, err
	}

	s.invalidate(ctx, productID)
	metrics.StockAdjustmentsTotal.WithLabelValues("increase", "ok").Inc()
	s.log.Info().
		Str("product_id", productID).
		Int("quantity", quantity).
		Int("stock", product.Stock).
		Msg("stock increased")
	return product, nil
}

func (s *InventoryService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("product_id", id).Msg("product cache invalidation failed")
	}
}

// adjustmentResult maps a repository error to a metric label.
func adjustmentResult(err error) string {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return "not_found"
	case errors.As(err, &insufficient):
		return "insufficient"
	default:
		return "error"
	}
}
