package dto

import "github.com/alimikegami/seller-dashboard/pkg/errs"

type PaymentMethodRequest struct {
	UserType         string `json:"user_type"`
	UserID           int64  `json:"user_id"`
	MethodType       string `json:"methodType"`
	CardHolderName   string `json:"cardHolderName"`
	CardNumberLast4  string `json:"cardNumberLast4"`
	CardToken        string `json:"cardToken"`
	ExpiryMonth      int64  `json:"expiryMonth"`
	ExpiryYear       int64  `json:"expiryYear"`
	MpesaPhoneNumber string `json:"mpesaPhoneNumber"`
	MpesaFullName    string `json:"mpesaFullName"`
}

func (r PaymentMethodRequest) Validate() error {
	if r.UserType == "" || r.UserID == 0 || r.MethodType == "" {
		return errs.ErrMissingFields
	}
	return nil
}
