package services

import (
	"context"
	"errors"

	"techgear/internal/models"
	"techgear/internal/repositories"
	"techgear/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// EventPublisher delivers product change events. *rabbitmq.Client
// implements it.
type EventPublisher interface {
	PublishProductEvent(ctx context.Context, event rabbitmq.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
	log       *zap.Logger
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case no events are sent.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher, log *zap.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		validate:  NewValidator(),
		log:       log,
	}
}

// ListProducts returns the catalogue in the requested order.
func (s *ProductService) ListProducts(ctx context.Context, sort repositories.SortOrder) ([]models.ProductRow, error) {
	rows, err := s.repo.List(ctx, sort)
	if err != nil {
		return nil, storageError(err)
	}
	return rows, nil
}

// GetProduct returns one product row.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.ProductRow, error) {
	row, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageError(err)
	}
	return row, nil
}

// SearchProducts returns products whose name contains term. An empty result
// is reported as ErrNotFound.
func (s *ProductService) SearchProducts(ctx context.Context, term string) ([]models.ProductRow, error) {
	rows, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, storageError(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

// ProductsInCategory returns the products of one category. An unknown or
// empty category is reported as ErrNotFound.
func (s *ProductService) ProductsInCategory(ctx context.Context, categoryID uint) ([]models.ProductRow, error) {
	rows, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, storageError(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

// CreateProduct validates in, stores it and returns the new product ID.
func (s *ProductService) CreateProduct(ctx context.Context, in models.ProductInput) (uint, error) {
	if err := validate(s.validate, in); err != nil {
		return 0, err
	}

	product := in.ToProduct()
	if err := s.repo.Create(ctx, &product); err != nil {
		return 0, storageError(err)
	}

	s.publish(ctx, rabbitmq.ProductCreated, product.ID)
	return product.ID, nil
}

// UpdateProduct validates in and overwrites the product with the given ID.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in models.ProductInput) error {
	if err := validate(s.validate, in); err != nil {
		return err
	}

	product := in.ToProduct()
	changed, err := s.repo.Update(ctx, id, &product)
	if err != nil {
		return storageError(err)
	}
	if changed == 0 {
		return ErrNotFound
	}

	s.publish(ctx, rabbitmq.ProductUpdated, id)
	return nil
}

// DeleteProduct removes the product with the given ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	changed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if changed == 0 {
		return ErrNotFound
	}

	s.publish(ctx, rabbitmq.ProductDeleted, id)
	return nil
}

// publish is best effort: the database change has already happened, so a
// broker failure is only logged.
func (s *ProductService) publish(ctx context.Context, eventType string, productID uint) {
	if s.publisher == nil {
		return
	}
	event := rabbitmq.NewProductEvent(eventType, productID)
	if err := s.publisher.PublishProductEvent(ctx, event); err != nil {
		s.log.Warn("failed to publish product event",
			zap.String("type", eventType),
			zap.Uint("product_id", productID),
			zap.Error(err))
	}
}
