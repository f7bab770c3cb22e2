package dto

import "github.com/alimikegami/seller-dashboard/internal/domain"

type CategoryResponse struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
	Slug         string `json:"slug"`
}

func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, CategoryResponse{
			ID:           c.ID,
			CategoryName: c.CategoryName,
			Slug:         c.Slug,
		})
	}
	return res
}
