package dto

import (
	"github.com/DsDac0/Website/domain/models"
)

type CarBrandResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CarModelResponse struct {
	ID      uint   `json:"id"`
	BrandID uint   `json:"brandId"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
}

func CarBrandsToResponses(brands []*models.CarBrand) []CarBrandResponse {
	out := make([]CarBrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, CarBrandResponse{ID: b.ID, Name: b.Name, Slug: b.Slug})
	}
	return out
}

func CarModelsToResponses(carModels []*models.CarModel) []CarModelResponse {
	out := make([]CarModelResponse, 0, len(carModels))
	for _, m := range carModels {
		out = append(out, CarModelResponse{ID: m.ID, BrandID: m.BrandID, Name: m.Name, Slug: m.Slug})
	}
	return out
}
