package repositories

import (
	"context"
	"fmt"

	"techgear/internal/models"

	"gorm.io/gorm"
)

const productRowSelect = `
SELECT products.product_id AS id,
       products.name AS name,
       products.price AS price,
       products.description AS description,
       products.stock_quantity AS stock_quantity,
       categories.name AS category,
       manufacturers.name AS manufacturer
FROM products
LEFT JOIN products_categories ON products.product_id = products_categories.product_id
LEFT JOIN manufacturers ON products.manufacturer_id = manufacturers.manufacturer_id
LEFT JOIN categories ON products_categories.category_id = categories.category_id`

// Each sort mode owns a complete statement; nothing from the request is
// concatenated into SQL.
var listProductsQueries = map[SortOrder]string{
	SortNone:      productRowSelect,
	SortPriceAsc:  productRowSelect + "\nORDER BY products.price ASC",
	SortPriceDesc: productRowSelect + "\nORDER BY products.price DESC",
}

const (
	productByIDQuery        = productRowSelect + "\nWHERE products.product_id = ?"
	productsByNameQuery     = productRowSelect + "\nWHERE LOWER(products.name) LIKE LOWER(?)"
	productsByCategoryQuery = productRowSelect + "\nWHERE products_categories.category_id = ?"

	categoryStatsQuery = `
SELECT categories.name AS category,
       COUNT(products.product_id) AS product_count,
       ROUND(AVG(products.price), 2) AS average_price
FROM categories
JOIN products_categories ON products_categories.category_id = categories.category_id
JOIN products ON products_categories.product_id = products.product_id
GROUP BY categories.name
ORDER BY categories.name`
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func (r *GORMProductRepository) selectRows(ctx context.Context, query string, args ...interface{}) ([]models.ProductRow, error) {
	rows := make([]models.ProductRow, 0)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// List retrieves all products joined with category and manufacturer names.
func (r *GORMProductRepository) List(ctx context.Context, sort SortOrder) ([]models.ProductRow, error) {
	query, ok := listProductsQueries[sort]
	if !ok {
		query = listProductsQueries[SortNone]
	}
	rows, err := r.selectRows(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products (sort %s): %w", sort, err)
	}
	return rows, nil
}

// GetByID retrieves the first joined row of a product.
func (r *GORMProductRepository) GetByID(ctx context.Context, id uint) (*models.ProductRow, error) {
	rows, err := r.selectRows(ctx, productByIDQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	}
	return &rows[0], nil
}

// SearchByName matches term as a case-insensitive substring of the name.
func (r *GORMProductRepository) SearchByName(ctx context.Context, term string) ([]models.ProductRow, error) {
	rows, err := r.selectRows(ctx, productsByNameQuery, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search products by name %q: %w", term, err)
	}
	return rows, nil
}

// ListByCategory retrieves the products linked to one category.
func (r *GORMProductRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.ProductRow, error) {
	rows, err := r.selectRows(ctx, productsByCategoryQuery, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products in category %d: %w", categoryID, err)
	}
	return rows, nil
}

// Create inserts a product and fills in its generated ID.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the product with the given ID.
func (r *GORMProductRepository) Update(ctx context.Context, id uint, product *models.Product) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("product_id = ?", id).
		Updates(map[string]interface{}{
			"manufacturer_id": product.ManufacturerID,
			"name":            product.Name,
			"description":     product.Description,
			"price":           product.Price,
			"stock_quantity":  product.StockQuantity,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a product by its ID.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("product_id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// CategoryStats counts products and averages their price per category.
func (r *GORMProductRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	stats := make([]models.CategoryStat, 0)
	if err := r.db.WithContext(ctx).Raw(categoryStatsQuery).Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to get product stats: %w", err)
	}
	return stats, nil
}
