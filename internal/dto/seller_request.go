package dto

type SellerProfileRequest struct {
	SellerName   *string `json:"sellerName"`
	ContactPhone *string `json:"contactPhone"`
	CompanyName  *string `json:"companyName"`
	WebsiteURL   *string `json:"websiteUrl"`
	Address      *string `json:"address"`
	Country      *string `json:"country"`
	ProfileURL   *string `json:"profileUrl"`
}
