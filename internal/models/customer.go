package models

// Customer represents a registered shop customer.
type Customer struct {
	ID      uint   `json:"id" gorm:"primaryKey;column:customer_id"`
	Name    string `json:"name" gorm:"type:varchar(255);not null"`
	Email   string `json:"email" gorm:"type:varchar(255)"`
	Phone   string `json:"phone" gorm:"type:varchar(50)"`
	Address string `json:"address" gorm:"type:varchar(255)"`
}

func (Customer) TableName() string { return "customers" }

// CustomerUpdate is the request body for updating a customer's contact data.
type CustomerUpdate struct {
	Email   string `json:"email" validate:"omitempty,shopemail"`
	Phone   string `json:"phone"`
	Address string `json:"address" validate:"required"`
}
