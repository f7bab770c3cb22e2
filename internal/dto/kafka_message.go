package dto

const (
	EventProductCreated       = "product_created"
	EventProductUpdated       = "product_updated"
	EventProductDeleted       = "product_deleted"
	EventSellerProvisioned    = "seller_provisioned"
	EventSellerUpdated        = "seller_updated"
	EventPaymentMethodUpdated = "payment_method_updated"
)

type ProductEvent struct {
	ProductID int64  `json:"product_id"`
	SellerID  int64  `json:"seller_id"`
	Slug      string `json:"slug,omitempty"`
}

type SellerEvent struct {
	SellerID   int64  `json:"seller_id"`
	ExternalID string `json:"external_id"`
	Email      string `json:"email"`
}

type PaymentMethodEvent struct {
	UserType   string `json:"user_type"`
	UserID     int64  `json:"user_id"`
	MethodType string `json:"method_type"`
}
