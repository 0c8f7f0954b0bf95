package models

import "time"

// Order is a customer order header.
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey;column:order_id"`
	CustomerID uint      `json:"customer_id" gorm:"column:customer_id;not null;index"`
	OrderDate  time.Time `json:"order_date" gorm:"column:order_date;not null"`
}

func (Order) TableName() string { return "orders" }

// OrderProduct is a single line of an order.
type OrderProduct struct {
	OrderID   uint    `json:"order_id" gorm:"primaryKey;column:order_id;autoIncrement:false"`
	ProductID uint    `json:"product_id" gorm:"primaryKey;column:product_id;autoIncrement:false"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"column:unit_price;type:decimal(10,2);not null"`
}

func (OrderProduct) TableName() string { return "orders_products" }

// CustomerOrderRow is one order of a customer joined with the customer's
// contact details.
type CustomerOrderRow struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	OrderDate time.Time `json:"order_date"`
	OrderID   uint      `json:"order_id"`
}

// OrderLineRow is one ordered product of a customer.
type OrderLineRow struct {
	Name      string    `json:"name"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	OrderID   uint      `json:"order_id"`
	OrderDate time.Time `json:"order_date"`
}
