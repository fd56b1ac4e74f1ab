package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusActive    OrderStatus = "ACTIVE"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

type Customer struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	Email     string `gorm:"size:128;uniqueIndex;not null"`
	Name      string `gorm:"size:128"`
	CreatedAt time.Time
}

type Product struct {
	ID       string  `gorm:"primaryKey;size:64;not null"` // product sku
	Name     string  `gorm:"size:128;not null"`
	Price    float64 `gorm:"not null"` // unit price, major units
	Currency string  `gorm:"size:8;not null"`
}

type Order struct {
	ID         string      `gorm:"primaryKey;size:64;not null"`
	CustomerID string      `gorm:"size:64;index;not null"`
	Status     OrderStatus `gorm:"size:32;index;not null"` // PENDING, ACTIVE, DELIVERED
	Items      []OrderItem `gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Total recomputes the order amount from the current product prices.
// It is never stored; Items must be preloaded with their Product.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].LineTotal())
	}
	return total
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → order.id
	OrderID string `gorm:"size:64;index;not null"`
	// FK → product.id
	ProductID string  `gorm:"size:64;index;not null"`
	Product   Product `gorm:"foreignKey:ProductID"`
	Quantity  int32   `gorm:"not null"`

	CreatedAt time.Time
}

func (i *OrderItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Product.Price).Mul(decimal.NewFromInt32(i.Quantity))
}

// OrderHistory is the settled record of a paid order. Written exactly once
// per successful payment, never updated.
type OrderHistory struct {
	ID            string      `gorm:"primaryKey;size:64;not null"`
	OrderID       string      `gorm:"size:64;uniqueIndex;not null"`
	CustomerID    string      `gorm:"size:64;index;not null"`
	PaymentMethod string      `gorm:"size:64;not null"`
	Amount        float64     `gorm:"not null"` // major units
	Status        OrderStatus `gorm:"size:32;not null"`
	PaidAt        time.Time
	CreatedAt     time.Time
}
