package repositories

import (
	"context"
	"fmt"

	"techgear/internal/models"

	"gorm.io/gorm"
)

const (
	customerOrdersQuery = `
SELECT customers.name AS name,
       customers.email AS email,
       customers.phone AS phone,
       customers.address AS address,
       orders.order_date AS order_date,
       orders.order_id AS order_id
FROM orders
INNER JOIN customers ON orders.customer_id = customers.customer_id
WHERE customers.customer_id = ?
ORDER BY orders.order_date`

	customerOrderLinesQuery = `
SELECT customers.name AS name,
       products.name AS product,
       orders_products.quantity AS quantity,
       orders_products.unit_price AS unit_price,
       orders.order_id AS order_id,
       orders.order_date AS order_date
FROM customers
INNER JOIN orders ON customers.customer_id = orders.customer_id
INNER JOIN orders_products ON orders.order_id = orders_products.order_id
INNER JOIN products ON orders_products.product_id = products.product_id
WHERE customers.customer_id = ?
ORDER BY orders.order_date`
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// GetCustomer returns the customer's contact details once per order,
// oldest order first.
func (r *GORMCustomerRepository) GetCustomer(ctx context.Context, customerID uint) ([]models.CustomerOrderRow, error) {
	rows := make([]models.CustomerOrderRow, 0)
	if err := r.db.WithContext(ctx).Raw(customerOrdersQuery, customerID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}
	return rows, nil
}

// GetOrders returns every ordered product of the customer, oldest order first.
func (r *GORMCustomerRepository) GetOrders(ctx context.Context, customerID uint) ([]models.OrderLineRow, error) {
	rows := make([]models.OrderLineRow, 0)
	if err := r.db.WithContext(ctx).Raw(customerOrderLinesQuery, customerID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders of customer %d: %w", customerID, err)
	}
	return rows, nil
}

// Update overwrites email, phone and address of a customer.
func (r *GORMCustomerRepository) Update(ctx context.Context, customerID uint, update models.CustomerUpdate) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("customer_id = ?", customerID).
		Updates(map[string]interface{}{
			"email":   update.Email,
			"phone":   update.Phone,
			"address": update.Address,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update customer %d: %w", customerID, res.Error)
	}
	return res.RowsAffected, nil
}
