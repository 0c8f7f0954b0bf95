package repositories

import (
	"context"

	"techgear/internal/models"
)

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	GetCustomer(ctx context.Context, customerID uint) ([]models.CustomerOrderRow, error)
	GetOrders(ctx context.Context, customerID uint) ([]models.OrderLineRow, error)
	Update(ctx context.Context, customerID uint, update models.CustomerUpdate) (int64, error)
}

// ReviewRepository defines the interface for review aggregates.
type ReviewRepository interface {
	RatingStats(ctx context.Context) ([]models.ReviewStat, error)
}
