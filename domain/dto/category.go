package dto

import (
	"github.com/DsDac0/Website/domain/models"
)

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	NameEn      string `json:"nameEn"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

func CategoryToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		NameEn:      category.NameEn,
		Slug:        category.Slug,
		Description: category.Description,
		Icon:        category.Icon,
	}
}

func CategoriesToCategoryResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, *CategoryToCategoryResponse(c))
	}
	return responses
}
