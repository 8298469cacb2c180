package models

import "gorm.io/gorm"

const (
	OrderStatusInProgress = "in progress"
	OrderStatusDelivered  = "delivered"
)

type Order struct {
	gorm.Model
	UserID       uint        `gorm:"not null;index" json:"userId"`
	Total        float64     `gorm:"not null" json:"total"`
	CustomerName string      `gorm:"size:100;not null" json:"customerName"`
	Address      string      `gorm:"size:200;not null" json:"address"`
	Phone        string      `gorm:"size:20;not null" json:"phone"`
	Status       string      `gorm:"size:50;not null" json:"status"`
	OrderItems   []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// CheckoutData is the delivery form submitted at checkout. The values are
// copied onto the order as a snapshot, so later profile edits do not
// rewrite order history.
type CheckoutData struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
}

// OrderItem captures name and price at checkout time so that later
// catalog edits never alter a placed order.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"orderId"`
	ProductID uint    `gorm:"not null" json:"productId"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}
