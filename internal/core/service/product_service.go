package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medsupply/inventory-api/internal/api/metrics"
	"github.com/medsupply/inventory-api/internal/core/domain"
	"github.com/medsupply/inventory-api/internal/core/ports"
)

// ProductCache abstracts the read-through cache for single products (Redis).
// A (nil, nil) Get result means cache miss.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	Set(ctx context.Context, p *domain.Product) error
	Invalidate(ctx context.Context, id string) error
}

// ProductService implements catalog CRUD on top of the repository, keeping the
// product cache coherent on every mutation.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ProductCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ProductCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

// CreateProduct validates input, applies catalog defaults, and persists.
func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Image == "" {
		input.Image = domain.DefaultImage
	}
	if input.Category == "" {
		input.Category = domain.CategoryOther
	}
	if !domain.ValidCategory(input.Category) {
		return nil, domain.ErrInvalidCategory
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
		Category:    input.Category,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(string(created.Category)).Inc()
	s.logger.Info().Str("product_id", created.ID).Str("category", string(created.Category)).Msg("product created")
	return created, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetProduct serves reads through the cache; cache failures degrade to a
// repository read and are logged, never surfaced.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("product cache read failed")
	} else if cached != nil {
		metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.ProductCacheTotal.WithLabelValues("miss").Inc()

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, product); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("product cache write failed")
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, fields ports.UpdateProductFields) (*domain.Product, error) {
	if fields.Category != nil && !domain.ValidCategory(*fields.Category) {
		return nil, domain.ErrInvalidCategory
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("product cache invalidation failed")
	}
}
