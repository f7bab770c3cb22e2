package dto

import (
	"strings"
	"time"

	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	CategoryID  *int64           `json:"categoryId"`
	SellerID    *int64           `json:"sellerId"`
	Status      *string          `json:"status"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock"`
	AvailableAt *time.Time       `json:"availableAt"`
	Images      []string         `json:"images"`
}

// ValidateCreate lists every field a new product is missing.
func (r ProductRequest) ValidateCreate() error {
	missing := r.missingFields(true)
	if len(missing) > 0 {
		return errs.NewMissingFieldsError("Missing required fields", missing)
	}
	return nil
}

// ValidateUpdate is ValidateCreate without the owner, which comes from the
// caller.
func (r ProductRequest) ValidateUpdate() error {
	missing := r.missingFields(false)
	if len(missing) > 0 {
		return errs.NewMissingFieldsError("Missing fields", missing)
	}
	return nil
}

func (r ProductRequest) missingFields(withSeller bool) []string {
	var missing []string

	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		missing = append(missing, "name")
	}
	if r.Description == nil || strings.TrimSpace(*r.Description) == "" {
		missing = append(missing, "description")
	}
	if r.CategoryID == nil {
		missing = append(missing, "categoryId")
	}
	if withSeller && r.SellerID == nil {
		missing = append(missing, "sellerId")
	}
	if r.Status == nil || *r.Status == "" {
		missing = append(missing, "status")
	}
	if r.Price == nil {
		missing = append(missing, "price")
	}
	if r.Stock == nil {
		missing = append(missing, "stock")
	}
	if r.AvailableAt == nil {
		missing = append(missing, "availableAt")
	}
	if len(r.Images) == 0 {
		missing = append(missing, "images")
	}

	return missing
}
