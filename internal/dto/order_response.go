package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID          int64           `json:"id"`
	OrderDate   time.Time       `json:"orderDate"`
	OrderStatus string          `json:"orderStatus"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type OrderItemResponse struct {
	ProductID int64           `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderDetailResponse struct {
	OrderResponse
	CustomerName string              `json:"customerName"`
	Items        []OrderItemResponse `json:"items"`
}
