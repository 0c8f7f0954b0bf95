package repositories

import (
	"context"
	"errors"

	"techgear/internal/models"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// SortOrder selects one of the fixed orderings of the product listing.
type SortOrder int

const (
	SortNone SortOrder = iota
	SortPriceAsc
	SortPriceDesc
)

// ParseSortOrder maps the "sort" query value onto a SortOrder. Unknown
// values fall back to SortNone.
func ParseSortOrder(s string) SortOrder {
	switch s {
	case "price_asc":
		return SortPriceAsc
	case "price_desc":
		return SortPriceDesc
	default:
		return SortNone
	}
}

func (s SortOrder) String() string {
	switch s {
	case SortPriceAsc:
		return "price_asc"
	case SortPriceDesc:
		return "price_desc"
	default:
		return "none"
	}
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, sort SortOrder) ([]models.ProductRow, error)
	GetByID(ctx context.Context, id uint) (*models.ProductRow, error)
	SearchByName(ctx context.Context, term string) ([]models.ProductRow, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.ProductRow, error)
	Create(ctx context.Context, product *models.Product) error
	// Update and Delete report the number of rows affected; zero means the
	// id did not exist.
	Update(ctx context.Context, id uint, product *models.Product) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
}
