package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           int64           `db:"id"`
	CustomerID   int64           `db:"customer_id"`
	CustomerName string          `db:"customer_name"`
	OrderDate    time.Time       `db:"order_date"`
	OrderStatus  string          `db:"order_status"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	Items        []OrderItem     `db:"-"`
}

type OrderItem struct {
	ID        int64           `db:"id"`
	OrderID   int64           `db:"order_id"`
	ProductID int64           `db:"product_id"`
	Quantity  int64           `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}
