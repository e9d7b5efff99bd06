package dto

import (
	"time"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
)

// ProductListQuery binds the catalog query string. Empty values impose no constraint.
type ProductListQuery struct {
	CategoryID      string `query:"categoryId"`
	BrandID         string `query:"brandId"`
	Search          string `query:"search"`
	CompatibleBrand string `query:"compatibleBrand"`
	CompatibleModel string `query:"compatibleModel"`
	CompatibleYear  string `query:"compatibleYear"`
}

type ProductResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            string    `json:"price"`
	CategoryID       *uint     `json:"categoryId"`
	ImageURL         string    `json:"imageUrl"`
	InStock          bool      `json:"inStock"`
	PartNumber       string    `json:"partNumber"`
	Brand            string    `json:"brand"`
	CompatibleBrands []string  `json:"compatibleBrands"`
	CompatibleModels []string  `json:"compatibleModels"`
	CompatibleYears  []string  `json:"compatibleYears"`
	CreatedAt        time.Time `json:"createdAt"`
}

type UploadImageResponse struct {
	ProductID uint   `json:"productId"`
	ImageURL  string `json:"imageUrl"`
}

func ProductToProductResponse(p *models.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Price:            FormatMoney(p.Price),
		CategoryID:       p.CategoryID,
		ImageURL:         p.ImageURL,
		InStock:          p.InStock,
		PartNumber:       p.PartNumber,
		Brand:            p.Brand,
		CompatibleBrands: nonNil(p.CompatibleBrands),
		CompatibleModels: nonNil(p.CompatibleModels),
		CompatibleYears:  nonNil(p.CompatibleYears),
		CreatedAt:        p.CreatedAt,
	}
}

func ProductsToProductResponses(products []*models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *ProductToProductResponse(p))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ToFilter converts the query into a repository filter. It returns the name of the
// first numeric parameter that failed to parse, if any.
func (q *ProductListQuery) ToFilter() (repositories.ProductFilter, string) {
	filter := repositories.ProductFilter{
		Search:          q.Search,
		CompatibleBrand: q.CompatibleBrand,
		CompatibleModel: q.CompatibleModel,
		CompatibleYear:  q.CompatibleYear,
	}
	if q.CategoryID != "" {
		id, ok := parseID(q.CategoryID)
		if !ok {
			return filter, "categoryId"
		}
		filter.CategoryID = id
	}
	if q.BrandID != "" {
		id, ok := parseID(q.BrandID)
		if !ok {
			return filter, "brandId"
		}
		filter.BrandID = id
	}
	return filter, ""
}
