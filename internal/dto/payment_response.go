package dto

import (
	"time"

	"github.com/alimikegami/seller-dashboard/internal/domain"
)

type PaymentMethodResponse struct {
	ID               int64     `json:"id"`
	UserType         string    `json:"user_type"`
	UserID           int64     `json:"user_id"`
	MethodType       string    `json:"methodType"`
	CardHolderName   *string   `json:"cardHolderName"`
	CardNumberLast4  *string   `json:"cardNumberLast4"`
	ExpiryMonth      *int64    `json:"expiryMonth"`
	ExpiryYear       *int64    `json:"expiryYear"`
	MpesaPhoneNumber *string   `json:"mpesaPhoneNumber"`
	MpesaFullName    *string   `json:"mpesaFullName"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewPaymentMethodResponse omits the card token.
func NewPaymentMethodResponse(p domain.PaymentDetail) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:               p.ID,
		UserType:         p.UserType,
		UserID:           p.UserID,
		MethodType:       string(p.MethodType),
		CardHolderName:   p.CardHolderName,
		CardNumberLast4:  p.CardNumberLast4,
		ExpiryMonth:      p.ExpiryMonth,
		ExpiryYear:       p.ExpiryYear,
		MpesaPhoneNumber: p.MpesaPhoneNumber,
		MpesaFullName:    p.MpesaFullName,
		UpdatedAt:        p.UpdatedAt,
	}
}
