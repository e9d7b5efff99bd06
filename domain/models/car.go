package models

type CarBrand struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
	Slug string `gorm:"size:100;uniqueIndex;not null"`

	Models []CarModel `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

func (CarBrand) TableName() string {
	return "car_brands"
}

type CarModel struct {
	ID      uint   `gorm:"primaryKey"`
	BrandID uint   `gorm:"not null;index"`
	Name    string `gorm:"size:100;not null"`
	Slug    string `gorm:"size:150;not null"`

	Brand *CarBrand `gorm:"foreignKey:BrandID"`
}

func (CarModel) TableName() string {
	return "car_models"
}
