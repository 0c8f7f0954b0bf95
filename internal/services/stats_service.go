package services

import (
	"context"

	"techgear/internal/models"
	"techgear/internal/repositories"
)

// StatsService exposes the catalogue and review aggregates.
type StatsService struct {
	products repositories.ProductRepository
	reviews  repositories.ReviewRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(products repositories.ProductRepository, reviews repositories.ReviewRepository) *StatsService {
	return &StatsService{products: products, reviews: reviews}
}

// ProductStats returns per-category product counts and average prices.
func (s *StatsService) ProductStats(ctx context.Context) ([]models.CategoryStat, error) {
	stats, err := s.products.CategoryStats(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return stats, nil
}

// ReviewStats returns the average rating of each reviewed product.
func (s *StatsService) ReviewStats(ctx context.Context) ([]models.ReviewStat, error) {
	stats, err := s.reviews.RatingStats(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return stats, nil
}
