package domain

import "time"

type PaymentMethodType string

const (
	PaymentMethodCard  PaymentMethodType = "card"
	PaymentMethodMpesa PaymentMethodType = "mpesa"
)

func (m PaymentMethodType) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodMpesa
}

const UserTypeSeller = "seller"

type PaymentDetail struct {
	ID               int64             `db:"id"`
	UserType         string            `db:"user_type"`
	UserID           int64             `db:"user_id"`
	MethodType       PaymentMethodType `db:"method_type"`
	CardHolderName   *string           `db:"card_holder_name"`
	CardNumberLast4  *string           `db:"card_number_last4"`
	CardToken        *string           `db:"card_token"`
	ExpiryMonth      *int64            `db:"expiry_month"`
	ExpiryYear       *int64            `db:"expiry_year"`
	MpesaPhoneNumber *string           `db:"mpesa_phone_number"`
	MpesaFullName    *string           `db:"mpesa_full_name"`
	CreatedAt        time.Time         `db:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"`
}

// Normalize clears every field that belongs to the method type not in use.
func (p PaymentDetail) Normalize() PaymentDetail {
	switch p.MethodType {
	case PaymentMethodCard:
		p.MpesaPhoneNumber = nil
		p.MpesaFullName = nil
	case PaymentMethodMpesa:
		p.CardHolderName = nil
		p.CardNumberLast4 = nil
		p.CardToken = nil
		p.ExpiryMonth = nil
		p.ExpiryYear = nil
	}
	return p
}
