package models

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:150;not null"` // Macedonian display name
	NameEn      string `gorm:"size:150;not null"`
	Slug        string `gorm:"size:150;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"size:100"`

	Products []Product `gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "categories"
}
