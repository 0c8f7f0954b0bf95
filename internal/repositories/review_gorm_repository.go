package repositories

import (
	"context"
	"fmt"

	"techgear/internal/models"

	"gorm.io/gorm"
)

const ratingStatsQuery = `
SELECT products.name AS product,
       ROUND(AVG(reviews.rating), 2) AS average_rating
FROM products
JOIN reviews ON products.product_id = reviews.product_id
GROUP BY products.name
ORDER BY products.name`

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// RatingStats averages the review ratings of every reviewed product.
func (r *GORMReviewRepository) RatingStats(ctx context.Context) ([]models.ReviewStat, error) {
	stats := make([]models.ReviewStat, 0)
	if err := r.db.WithContext(ctx).Raw(ratingStatsQuery).Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to get review stats: %w", err)
	}
	return stats, nil
}
