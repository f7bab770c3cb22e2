package domain

import "time"

const RoleSeller = "seller"

type Seller struct {
	ID           int64     `db:"id"`
	ExternalID   string    `db:"external_id"`
	SellerName   string    `db:"seller_name"`
	Email        string    `db:"email"`
	ContactPhone string    `db:"contact_phone"`
	CompanyName  *string   `db:"company_name"`
	WebsiteURL   *string   `db:"website_url"`
	ProfileURL   *string   `db:"profile_url"`
	Address      *string   `db:"address"`
	Country      *string   `db:"country"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// SellerProfileUpdate carries only the fields a seller asked to change.
type SellerProfileUpdate struct {
	Email        string  `db:"email"`
	SellerName   *string `db:"seller_name"`
	ContactPhone *string `db:"contact_phone"`
	CompanyName  *string `db:"company_name"`
	WebsiteURL   *string `db:"website_url"`
	ProfileURL   *string `db:"profile_url"`
	Address      *string `db:"address"`
	Country      *string `db:"country"`
}
