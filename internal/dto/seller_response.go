package dto

import (
	"time"

	"github.com/alimikegami/seller-dashboard/internal/domain"
)

type SellerResponse struct {
	ID           int64     `json:"id"`
	ExternalID   string    `json:"externalId"`
	SellerName   string    `json:"sellerName"`
	Email        string    `json:"email"`
	ContactPhone string    `json:"contactPhone"`
	CompanyName  *string   `json:"companyName"`
	WebsiteURL   *string   `json:"websiteUrl"`
	ProfileURL   *string   `json:"profileUrl"`
	Address      *string   `json:"address"`
	Country      *string   `json:"country"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	Token  string         `json:"token"`
	Seller SellerResponse `json:"seller"`
}

func NewSellerResponse(s domain.Seller) SellerResponse {
	return SellerResponse{
		ID:           s.ID,
		ExternalID:   s.ExternalID,
		SellerName:   s.SellerName,
		Email:        s.Email,
		ContactPhone: s.ContactPhone,
		CompanyName:  s.CompanyName,
		WebsiteURL:   s.WebsiteURL,
		ProfileURL:   s.ProfileURL,
		Address:      s.Address,
		Country:      s.Country,
		Role:         s.Role,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
