package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order represents a complete customer order
type Order struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index"`
	OrderNumber string     `json:"order_number"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	Discount    float64    `json:"discount"`
	TotalAmount float64    `json:"total_amount"`
	Status      string     `json:"status" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem represents an individual product in an order.
// ProductName and ProductNameTranslations are snapshotted at checkout so
// reports keep the name the customer saw.
type OrderItem struct {
	ID                      string         `json:"id" gorm:"primaryKey"`
	OrderID                 string         `json:"order_id" gorm:"index"`
	ProductID               string         `json:"product_id" gorm:"index"`
	ProductName             string         `json:"product_name"`
	ProductNameTranslations datatypes.JSON `json:"product_name_translations,omitempty"` // {"fr": "...", "es": "..."}
	Price                   float64        `json:"price"`
	Quantity                int            `json:"quantity"`
	Subtotal                float64        `json:"subtotal"`
	CreatedAt               time.Time      `json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
