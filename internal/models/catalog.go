package models

// Category groups products; the relation lives in products_categories.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey;column:category_id"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

func (Category) TableName() string { return "categories" }

// Manufacturer is referenced by Product.ManufacturerID.
type Manufacturer struct {
	ID   uint   `json:"id" gorm:"primaryKey;column:manufacturer_id"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

func (Manufacturer) TableName() string { return "manufacturers" }

// ProductCategory is the join table between products and categories.
type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey;column:product_id;autoIncrement:false"`
	CategoryID uint `gorm:"primaryKey;column:category_id;autoIncrement:false"`
}

func (ProductCategory) TableName() string { return "products_categories" }

// CategoryStat is the per-category product count and average price.
type CategoryStat struct {
	Category     string  `json:"category"`
	ProductCount int64   `json:"product_count"`
	AveragePrice float64 `json:"average_price"`
}
