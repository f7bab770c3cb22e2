package repository

import (
	"context"

	"github.com/alimikegami/seller-dashboard/internal/domain"
)

type ProductFilter struct {
	Q      string
	Status string
	Offset int
	Limit  int
}

type ProductRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error
	// HandleSnapshot runs fn in a read-only REPEATABLE READ transaction so
	// every read sees the same snapshot.
	HandleSnapshot(ctx context.Context, fn func(ctx context.Context, repo ProductRepository) error) error

	GetProducts(ctx context.Context, sellerID int64, filter ProductFilter) (data []domain.Product, err error)
	CountProducts(ctx context.Context, sellerID int64, filter ProductFilter) (count int64, err error)
	GetImagesByProductIDs(ctx context.Context, productIDs []int64) (data []domain.ProductImage, err error)
	GetProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	LockProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	InsertProduct(ctx context.Context, data domain.Product) (id int64, inserted bool, err error)
	AddProductImages(ctx context.Context, data []domain.ProductImage) (err error)
	DeleteProductImages(ctx context.Context, productID int64) (err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
}

type SellerRepository interface {
	GetSellerByEmail(ctx context.Context, email string) (data domain.Seller, err error)
	InsertSellerIfAbsent(ctx context.Context, data domain.Seller) (res domain.Seller, inserted bool, err error)
	UpdateSellerProfile(ctx context.Context, data domain.SellerProfileUpdate) (rowsAffected int64, err error)
}

type PaymentRepository interface {
	GetPaymentDetail(ctx context.Context, userType string, userID int64) (data domain.PaymentDetail, err error)
	UpsertPaymentDetail(ctx context.Context, data domain.PaymentDetail) (res domain.PaymentDetail, err error)
}

type CategoryRepository interface {
	GetCategories(ctx context.Context) (data []domain.Category, err error)
}

type OrderRepository interface {
	GetOrdersBySeller(ctx context.Context, sellerID int64, limit int) (data []domain.Order, err error)
	GetOrderByID(ctx context.Context, id int64) (data domain.Order, err error)
	GetOrderItemsForSeller(ctx context.Context, orderID int64, sellerID int64) (data []domain.OrderItem, err error)
}
