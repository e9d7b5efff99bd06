package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product compatibility lists are free text; they are matched by substring
// against their stored JSON form and carry no reference to car_brands/car_models.
type Product struct {
	ID               uint            `gorm:"primaryKey"`
	Name             string          `gorm:"size:255;not null"`
	Description      string          `gorm:"type:text"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID       *uint           `gorm:"index"`
	ImageURL         string          `gorm:"size:500"`
	InStock          bool            `gorm:"not null;default:true"`
	PartNumber       string          `gorm:"size:100;index"`
	Brand            string          `gorm:"size:100"`
	CompatibleBrands []string        `gorm:"type:text;serializer:json"`
	CompatibleModels []string        `gorm:"type:text;serializer:json"`
	CompatibleYears  []string        `gorm:"type:text;serializer:json"`
	CreatedAt        time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string {
	return "products"
}
