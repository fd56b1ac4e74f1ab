package dto

import "time"

type AddItemRequest struct {
	Sku      string `json:"sku" validate:"required"`
	Quantity int32  `json:"quantity" validate:"required,gt=0"`
}

type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type PaymentReceipt struct {
	CreatedAt     time.Time `json:"created_at"`
	Amount        float64   `json:"amount"`         // major units
	EndingBalance float64   `json:"ending_balance"` // major units
}

type OrderResponse struct {
	OrderID string      `json:"order_id"`
	Status  string      `json:"status"`
	Total   float64     `json:"total"`
	Items   []OrderItem `json:"items"`
}

type OrderItem struct {
	Sku       string  `json:"sku"`
	Quantity  int32   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}
