package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusArchived ProductStatus = "archived"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusArchived:
		return true
	}
	return false
}

type Product struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	CategoryID  int64           `db:"category_id"`
	SellerID    *int64          `db:"seller_id"`
	Status      ProductStatus   `db:"status"`
	Price       decimal.Decimal `db:"price"`
	Stock       int64           `db:"stock"`
	AvailableAt time.Time       `db:"available_at"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	Slug        string          `db:"slug"`
	Images      []ProductImage  `db:"-"`
}

// OwnedBy reports whether sellerID owns the product. Products without an
// owner belong to nobody.
func (p Product) OwnedBy(sellerID int64) bool {
	return p.SellerID != nil && *p.SellerID == sellerID
}

type ProductImage struct {
	ID        int64  `db:"id"`
	ProductID int64  `db:"product_id"`
	ImageURL  string `db:"image_url"`
}
