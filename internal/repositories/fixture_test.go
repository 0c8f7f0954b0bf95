package repositories_test

import (
	"testing"
	"time"

	"techgear/internal/database"
	"techgear/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the shop schema
// and a small fixture catalogue.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Migrate(db))

	fixtures := []interface{}{
		&[]models.Manufacturer{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Sonic"}},
		&[]models.Category{{ID: 1, Name: "Phones"}, {ID: 2, Name: "Audio"}, {ID: 3, Name: "Computers"}},
		&[]models.Product{
			{ID: 1, ManufacturerID: 1, Name: "Smartphone", Description: "Pocket computer", Price: 500, StockQuantity: 10},
			{ID: 2, ManufacturerID: 2, Name: "Headphone", Description: "Over-ear", Price: 150.5, StockQuantity: 5},
			{ID: 3, ManufacturerID: 1, Name: "Laptop", Description: "14 inch", Price: 1200, StockQuantity: 3},
			{ID: 4, ManufacturerID: 2, Name: "Cable", Description: "USB-C", Price: 9.99, StockQuantity: 0},
		},
		&[]models.ProductCategory{
			{ProductID: 1, CategoryID: 1},
			{ProductID: 1, CategoryID: 2},
			{ProductID: 2, CategoryID: 2},
			{ProductID: 3, CategoryID: 3},
		},
		&[]models.Customer{
			{ID: 1, Name: "Anna", Email: "anna@example.se", Phone: "070-1", Address: "Storgatan 1"},
			{ID: 2, Name: "Erik", Email: "erik@example.se", Phone: "070-2", Address: "Kungsgatan 5"},
		},
		&[]models.Order{
			{ID: 10, CustomerID: 1, OrderDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 11, CustomerID: 1, OrderDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 12, CustomerID: 2, OrderDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		},
		&[]models.OrderProduct{
			{OrderID: 10, ProductID: 1, Quantity: 1, UnitPrice: 500},
			{OrderID: 11, ProductID: 2, Quantity: 2, UnitPrice: 150.5},
			{OrderID: 11, ProductID: 4, Quantity: 3, UnitPrice: 9.99},
			{OrderID: 12, ProductID: 3, Quantity: 1, UnitPrice: 1200},
		},
		&[]models.Review{
			{ProductID: 1, CustomerID: 1, Rating: 5},
			{ProductID: 1, CustomerID: 2, Rating: 4},
			{ProductID: 1, CustomerID: 2, Rating: 4},
			{ProductID: 2, CustomerID: 1, Rating: 3},
		},
	}
	for _, f := range fixtures {
		require.NoError(t, db.Create(f).Error)
	}
	return db
}
