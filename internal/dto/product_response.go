package dto

import (
	"time"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"categoryId"`
	SellerID    *int64          `json:"sellerId"`
	Status      string          `json:"status"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	AvailableAt time.Time       `json:"availableAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Slug        string          `json:"slug"`
	Images      []string        `json:"images"`
}

type ProductListResponse struct {
	Products      []ProductResponse `json:"products"`
	NewOffset     *int              `json:"newOffset"`
	TotalProducts int64             `json:"totalProducts"`
}

type CreateProductResponse struct {
	ID int64 `json:"id"`
}

func NewProductResponse(p domain.Product) ProductResponse {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.ImageURL)
	}

	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		SellerID:    p.SellerID,
		Status:      string(p.Status),
		Price:       p.Price,
		Stock:       p.Stock,
		AvailableAt: p.AvailableAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Slug:        p.Slug,
		Images:      images,
	}
}
