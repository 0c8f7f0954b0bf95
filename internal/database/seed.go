package database

import (
	"fmt"
	"time"

	"techgear/internal/models"

	"gorm.io/gorm"
)

// Seed fills an empty database with a small demo catalogue. It does nothing
// when products already exist. IDs are left to the storage engine so that
// PostgreSQL sequences stay in step.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		create := func(value interface{}) error {
			if err := tx.Create(value).Error; err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}
			return nil
		}

		samsung := models.Manufacturer{Name: "Samsung"}
		sony := models.Manufacturer{Name: "Sony"}
		logitech := models.Manufacturer{Name: "Logitech"}
		for _, m := range []*models.Manufacturer{&samsung, &sony, &logitech} {
			if err := create(m); err != nil {
				return err
			}
		}

		phones := models.Category{Name: "Phones"}
		audio := models.Category{Name: "Audio"}
		accessories := models.Category{Name: "Accessories"}
		for _, c := range []*models.Category{&phones, &audio, &accessories} {
			if err := create(c); err != nil {
				return err
			}
		}

		phone := models.Product{ManufacturerID: samsung.ID, Name: "Galaxy Smartphone", Description: "6.1 inch flagship phone", Price: 8999, StockQuantity: 25}
		headphone := models.Product{ManufacturerID: sony.ID, Name: "Noise Cancelling Headphone", Description: "Over-ear wireless headphone", Price: 3499, StockQuantity: 40}
		mouse := models.Product{ManufacturerID: logitech.ID, Name: "Wireless Mouse", Description: "Ergonomic mouse", Price: 499, StockQuantity: 120}
		keyboard := models.Product{ManufacturerID: logitech.ID, Name: "Mechanical Keyboard", Description: "Tenkeyless keyboard", Price: 1299, StockQuantity: 60}
		for _, p := range []*models.Product{&phone, &headphone, &mouse, &keyboard} {
			if err := create(p); err != nil {
				return err
			}
		}

		links := []models.ProductCategory{
			{ProductID: phone.ID, CategoryID: phones.ID},
			{ProductID: headphone.ID, CategoryID: audio.ID},
			{ProductID: mouse.ID, CategoryID: accessories.ID},
			{ProductID: keyboard.ID, CategoryID: accessories.ID},
		}
		if err := create(&links); err != nil {
			return err
		}

		anna := models.Customer{Name: "Anna Svensson", Email: "anna@example.se", Phone: "070-1234567", Address: "Storgatan 1, Stockholm"}
		erik := models.Customer{Name: "Erik Larsson", Email: "erik@example.se", Phone: "070-7654321", Address: "Kungsgatan 5, Göteborg"}
		for _, c := range []*models.Customer{&anna, &erik} {
			if err := create(c); err != nil {
				return err
			}
		}

		january := models.Order{CustomerID: anna.ID, OrderDate: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)}
		march := models.Order{CustomerID: anna.ID, OrderDate: time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)}
		february := models.Order{CustomerID: erik.ID, OrderDate: time.Date(2024, 2, 14, 15, 45, 0, 0, time.UTC)}
		for _, o := range []*models.Order{&january, &march, &february} {
			if err := create(o); err != nil {
				return err
			}
		}

		lines := []models.OrderProduct{
			{OrderID: january.ID, ProductID: phone.ID, Quantity: 1, UnitPrice: phone.Price},
			{OrderID: january.ID, ProductID: mouse.ID, Quantity: 2, UnitPrice: mouse.Price},
			{OrderID: march.ID, ProductID: headphone.ID, Quantity: 1, UnitPrice: headphone.Price},
			{OrderID: february.ID, ProductID: keyboard.ID, Quantity: 1, UnitPrice: keyboard.Price},
		}
		if err := create(&lines); err != nil {
			return err
		}

		reviews := []models.Review{
			{ProductID: phone.ID, CustomerID: anna.ID, Rating: 5, Comment: "Great phone"},
			{ProductID: phone.ID, CustomerID: erik.ID, Rating: 4},
			{ProductID: headphone.ID, CustomerID: anna.ID, Rating: 3},
		}
		return create(&reviews)
	})
}
