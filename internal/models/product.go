package models

// Product represents a product row in the shop catalogue.
type Product struct {
	ID             uint    `json:"id" gorm:"primaryKey;column:product_id"`
	ManufacturerID uint    `json:"manufacturer_id" gorm:"column:manufacturer_id;not null;index"`
	Name           string  `json:"name" gorm:"type:varchar(255);not null"`
	Description    string  `json:"description" gorm:"type:text"`
	Price          float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity  int     `json:"stock_quantity" gorm:"column:stock_quantity;not null;default:0"`
}

func (Product) TableName() string { return "products" }

// ProductInput is the request body accepted when creating or updating a
// product. Field order matters: validation reports the first failing field.
type ProductInput struct {
	Name           string  `json:"name" validate:"notblank"`
	Price          float64 `json:"price" validate:"gt=0"`
	ManufacturerID uint    `json:"manufacturer_id" validate:"required"`
	Description    string  `json:"description"`
	StockQuantity  int     `json:"stock_quantity" validate:"gte=0"`
}

// ToProduct converts the input into a persistable Product.
func (in ProductInput) ToProduct() Product {
	return Product{
		ManufacturerID: in.ManufacturerID,
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		StockQuantity:  in.StockQuantity,
	}
}

// ProductRow is a product joined with its category and manufacturer names.
// A product in several categories yields one row per category.
type ProductRow struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	StockQuantity int     `json:"stock_quantity"`
	Category      *string `json:"category"`
	Manufacturer  *string `json:"manufacturer"`
}
