package models

// Review is a customer's rating of a product.
type Review struct {
	ID         uint   `json:"id" gorm:"primaryKey;column:review_id"`
	ProductID  uint   `json:"product_id" gorm:"column:product_id;not null;index"`
	CustomerID uint   `json:"customer_id" gorm:"column:customer_id"`
	Rating     int    `json:"rating" gorm:"not null"`
	Comment    string `json:"comment" gorm:"type:text"`
}

func (Review) TableName() string { return "reviews" }

// ReviewStat is the average rating of one product.
type ReviewStat struct {
	Product       string  `json:"product"`
	AverageRating float64 `json:"average_rating"`
}
