package service

import (
	"context"
	"io"
	"time"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/oauth"
	pkgdto "github.com/alimikegami/seller-dashboard/pkg/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, caller identity.Identity, filter pkgdto.Filter) (res dto.ProductListResponse, err error)
	AddProduct(ctx context.Context, caller identity.Identity, req dto.ProductRequest) (id int64, err error)
	GetOwnedProduct(ctx context.Context, caller identity.Identity, productID int64) (res *dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, caller identity.Identity, productID int64, req dto.ProductRequest) (err error)
	DeleteProduct(ctx context.Context, caller identity.Identity, productID int64) (err error)
}

type PaymentService interface {
	UpsertPaymentMethod(ctx context.Context, caller identity.Identity, req dto.PaymentMethodRequest) (res dto.PaymentMethodResponse, err error)
	GetPaymentMethod(ctx context.Context, caller identity.Identity) (res *dto.PaymentMethodResponse, err error)
}

type SellerService interface {
	ProvisionSeller(ctx context.Context, email string, name string) (res domain.Seller, err error)
	GetSellerProfile(ctx context.Context, caller identity.Identity) (res dto.SellerResponse, err error)
	UpdateSellerProfile(ctx context.Context, caller identity.Identity, req dto.SellerProfileRequest) (err error)
}

type AuthService interface {
	BeginGoogleLogin(ctx context.Context) (redirectURL string, err error)
	CompleteGoogleLogin(ctx context.Context, state string, code string) (res dto.LoginResponse, err error)
}

type CategoryService interface {
	GetCategories(ctx context.Context) (res []domain.Category, err error)
	RefreshCategoryCache(ctx context.Context) (err error)
}

type OrderService interface {
	GetOrders(ctx context.Context, caller identity.Identity) (res []dto.OrderResponse, err error)
	GetOrder(ctx context.Context, caller identity.Identity, orderID int64) (res dto.OrderDetailResponse, err error)
}

type UploadService interface {
	UploadProductImage(ctx context.Context, caller identity.Identity, filename string, contentType string, size int64, r io.Reader) (res dto.UploadResponse, err error)
	UploadProfileImage(ctx context.Context, caller identity.Identity, filename string, contentType string, size int64, r io.Reader) (res dto.UploadResponse, err error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, eventType string, data interface{}) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type StateStore interface {
	SetOnce(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Take(ctx context.Context, key string) (string, error)
}

type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (oauth.UserInfo, error)
}

type Uploader interface {
	Upload(ctx context.Context, objectPath string, contentType string, r io.Reader) (url string, err error)
}

type WelcomeMailer interface {
	SendWelcome(ctx context.Context, to string, name string) error
}
