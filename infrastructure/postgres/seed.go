package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/pkg/logger"
)

type seedProduct struct {
	Name        string
	Description string
	Price       string
	Category    string // category slug
	ImageURL    string
	PartNumber  string
	Brand       string
	Brands      []string
	Models      []string
	Years       []string
}

var seedCategories = []models.Category{
	{Name: "Делови за мотор", NameEn: "Engine Parts", Slug: "engine-parts", Description: "Делови за мотор и систем за гориво", Icon: "🔧"},
	{Name: "Кочници", NameEn: "Brakes", Slug: "brakes", Description: "Кочни плочки, дискови и цилиндри", Icon: "🛑"},
	{Name: "Филтери", NameEn: "Filters", Slug: "filters", Description: "Масленец, воздушен и горивен филтер", Icon: "🌪️"},
	{Name: "Електрика", NameEn: "Electrical", Slug: "electrical", Description: "Батерии, свеќи и електрични делови", Icon: "⚡"},
	{Name: "Каросерија", NameEn: "Body Parts", Slug: "body-parts", Description: "Фарови, браници и делови за каросерија", Icon: "🚗"},
	{Name: "Гуми и Тркала", NameEn: "Tyres & Wheels", Slug: "tyres-wheels", Description: "Гуми, тркала и делови за ходување", Icon: "🛞"},
	{Name: "Климатизација", NameEn: "Air Conditioning", Slug: "air-conditioning", Description: "Делови за климатизација и греење", Icon: "❄️"},
	{Name: "Трансмисија", NameEn: "Transmission", Slug: "transmission", Description: "Квачило, менувач и трансмисија", Icon: "⚙️"},
}

var seedBrands = []models.CarBrand{
	{Name: "BMW", Slug: "bmw"},
	{Name: "Mercedes-Benz", Slug: "mercedes-benz"},
	{Name: "Audi", Slug: "audi"},
	{Name: "Volkswagen", Slug: "volkswagen"},
	{Name: "Hyundai", Slug: "hyundai"},
	{Name: "Kia", Slug: "kia"},
	{Name: "Toyota", Slug: "toyota"},
	{Name: "Honda", Slug: "honda"},
	{Name: "Ford", Slug: "ford"},
	{Name: "Opel", Slug: "opel"},
	{Name: "Peugeot", Slug: "peugeot"},
	{Name: "Renault", Slug: "renault"},
	{Name: "Citroën", Slug: "citroen"},
	{Name: "Fiat", Slug: "fiat"},
	{Name: "Škoda", Slug: "skoda"},
	{Name: "Seat", Slug: "seat"},
	{Name: "Mazda", Slug: "mazda"},
	{Name: "Nissan", Slug: "nissan"},
	{Name: "Mitsubishi", Slug: "mitsubishi"},
	{Name: "Subaru", Slug: "subaru"},
}

// seedModels lists the models loaded per brand slug.
var seedModels = map[string][]string{
	"bmw":           {"X1", "X3", "X5", "3 Series", "5 Series", "7 Series", "1 Series", "Z4"},
	"mercedes-benz": {"A-Class", "C-Class", "E-Class", "S-Class", "GLA", "GLC", "GLE", "ML"},
	"hyundai":       {"i10", "i20", "i30", "i40", "Tucson", "Santa Fe", "Elantra", "Accent", "Genesis"},
	"volkswagen":    {"Golf", "Passat", "Polo", "Tiguan", "Touran", "Jetta", "Beetle", "Arteon"},
}

var seedProducts = []seedProduct{
	{
		Name:        "Кочни плочки Brembo Premium",
		Description: "Висококвалитетни кочни плочки за европски возила. Одлична спирачка моќ и долготрајност.",
		Price:       "2850.00",
		Category:    "brakes",
		ImageURL:    "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop",
		PartNumber:  "BRM-P50020",
		Brand:       "Brembo",
		Brands:      []string{"BMW", "Mercedes-Benz", "Audi"},
		Models:      []string{"3 Series", "C-Class", "A4"},
		Years:       []string{"2015", "2016", "2017", "2018", "2019", "2020"},
	},
	{
		Name:        "Турбо пунач Garrett Motion GT1749V",
		Description: "Оригинален турбо пунач за дизел мотори. Зголемена моќност и подобрена економичност.",
		Price:       "18500.00",
		Category:    "engine-parts",
		ImageURL:    "https://images.unsplash.com/photo-1486262715619-67b85e0b08d3?w=400&h=300&fit=crop",
		PartNumber:  "GTM-GT1749V",
		Brand:       "Garrett Motion",
		Brands:      []string{"Volkswagen", "Škoda", "Seat"},
		Models:      []string{"Golf", "Octavia", "Leon"},
		Years:       []string{"2012", "2013", "2014", "2015", "2016"},
	},
	{
		Name:        "Масленец филтер Bosch Premium",
		Description: "Висококвалитетен масленец филтер за заштита на мотор. Комплетна филтрација на масло.",
		Price:       "850.00",
		Category:    "filters",
		ImageURL:    "https://images.unsplash.com/photo-1541443131876-44b03de101c5?w=400&h=300&fit=crop",
		PartNumber:  "BSH-0451103318",
		Brand:       "Bosch",
		Brands:      []string{"BMW", "Mercedes-Benz", "Audi", "Volkswagen"},
		Models:      []string{"320d", "C220d", "A4 TDI", "Golf TDI"},
		Years:       []string{"2010", "2011", "2012", "2013", "2014", "2015"},
	},
	{
		Name:        "Батерија Varta Blue Dynamic E11",
		Description: "Автомобилска батерија 74Ah. Долготрајна и сигурна за сите временски услови.",
		Price:       "6500.00",
		Category:    "electrical",
		ImageURL:    "https://images.unsplash.com/photo-1609592067849-5b774eb4fa14?w=400&h=300&fit=crop",
		PartNumber:  "VARTA-E11-74AH",
		Brand:       "Varta",
		Brands:      []string{"Hyundai", "Kia", "Toyota", "Honda"},
		Models:      []string{"i30", "Ceed", "Corolla", "Civic"},
		Years:       []string{"2012", "2013", "2014", "2015", "2016", "2017", "2018"},
	},
	{
		Name:        "Кочни дискови Zimmermann Sport",
		Description: "Перфорирани спортски кочни дискови за подобрена перформанса при кочење.",
		Price:       "4200.00",
		Category:    "brakes",
		ImageURL:    "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop",
		PartNumber:  "ZIM-100.3234.52",
		Brand:       "Zimmermann",
		Brands:      []string{"BMW", "Mercedes-Benz"},
		Models:      []string{"X3", "GLC"},
		Years:       []string{"2016", "2017", "2018", "2019", "2020"},
	},
	{
		Name:        "Свеќи за палење NGK Laser Platinum",
		Description: "Платински свеќи за палење со подолг животен век и подобра перформанса.",
		Price:       "1650.00",
		Category:    "electrical",
		ImageURL:    "https://images.unsplash.com/photo-1600586747245-a42b05b20afe?w=400&h=300&fit=crop",
		PartNumber:  "NGK-PFR7S8EG",
		Brand:       "NGK",
		Brands:      []string{"Toyota", "Honda", "Mazda"},
		Models:      []string{"Corolla", "Civic", "CX-5"},
		Years:       []string{"2015", "2016", "2017", "2018", "2019"},
	},
	{
		Name:        "Амортизери Monroe OESpectrum",
		Description: "Оригинални спецификации амортизери за комфорт и сигурност при возење.",
		Price:       "3200.00",
		Category:    "tyres-wheels",
		ImageURL:    "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=400&h=300&fit=crop",
		PartNumber:  "MON-G7440",
		Brand:       "Monroe",
		Brands:      []string{"Ford", "Opel"},
		Models:      []string{"Focus", "Astra"},
		Years:       []string{"2014", "2015", "2016", "2017", "2018"},
	},
	{
		Name:        "Ремен за распоред Gates PowerGrip",
		Description: "Висококвалитетен ремен за распоред на мотор со долг животен век.",
		Price:       "1850.00",
		Category:    "engine-parts",
		ImageURL:    "https://images.unsplash.com/photo-1486262715619-67b85e0b08d3?w=400&h=300&fit=crop",
		PartNumber:  "GTS-5455XS",
		Brand:       "Gates",
		Brands:      []string{"Peugeot", "Citroën", "Renault"},
		Models:      []string{"308", "C4", "Megane"},
		Years:       []string{"2012", "2013", "2014", "2015", "2016"},
	},
	{
		Name:        "Воздушен филтер K&N Performance",
		Description: "Спортски воздушен филтер за зголемена моќност и подобра респирација на мотор.",
		Price:       "2400.00",
		Category:    "filters",
		ImageURL:    "https://images.unsplash.com/photo-1541443131876-44b03de101c5?w=400&h=300&fit=crop",
		PartNumber:  "KN-33-2865",
		Brand:       "K&N",
		Brands:      []string{"BMW", "Audi"},
		Models:      []string{"320i", "A3"},
		Years:       []string{"2013", "2014", "2015", "2016", "2017"},
	},
	{
		Name:        "Фар предна десна Hella",
		Description: "Оригинален фар со LED технologija за подобра видливост и модерен изглед.",
		Price:       "8500.00",
		Category:    "body-parts",
		ImageURL:    "https://images.unsplash.com/photo-1544967881-6ad5e8b4b7d8?w=400&h=300&fit=crop",
		PartNumber:  "HLA-1EL010845121",
		Brand:       "Hella",
		Brands:      []string{"Volkswagen", "Škoda"},
		Models:      []string{"Passat", "Superb"},
		Years:       []string{"2015", "2016", "2017", "2018"},
	},
	{
		Name:        "Водна пумпа Febi Bilstein",
		Description: "Оригинална водна пумпа за систем за ладење. Сигурна работа и долготрајност.",
		Price:       "3800.00",
		Category:    "engine-parts",
		ImageURL:    "https://images.unsplash.com/photo-1486262715619-67b85e0b08d3?w=400&h=300&fit=crop",
		PartNumber:  "FEBI-01289",
		Brand:       "Febi Bilstein",
		Brands:      []string{"Mercedes-Benz", "BMW"},
		Models:      []string{"E-Class", "5 Series"},
		Years:       []string{"2009", "2010", "2011", "2012", "2013"},
	},
	{
		Name:        "Термостат Wahler 4055.87D",
		Description: "Прецизен термостат за оптимална температура на мотор во сите услови.",
		Price:       "1250.00",
		Category:    "engine-parts",
		ImageURL:    "https://images.unsplash.com/photo-1486262715619-67b85e0b08d3?w=400&h=300&fit=crop",
		PartNumber:  "WAH-405587D",
		Brand:       "Wahler",
		Brands:      []string{"Audi", "Volkswagen", "Škoda"},
		Models:      []string{"A4", "Passat", "Octavia"},
		Years:       []string{"2008", "2009", "2010", "2011", "2012"},
	},
	{
		Name:        "Генератор Bosch 0124525079",
		Description: "Висококвалитетен алтернатор за стабилно напојување на електричната мрежа.",
		Price:       "12500.00",
		Category:    "electrical",
		ImageURL:    "https://images.unsplash.com/photo-1600586747245-a42b05b20afe?w=400&h=300&fit=crop",
		PartNumber:  "BSH-0124525079",
		Brand:       "Bosch",
		Brands:      []string{"Ford", "Mazda"},
		Models:      []string{"Mondeo", "6"},
		Years:       []string{"2010", "2011", "2012", "2013", "2014"},
	},
	{
		Name:        "Квачило комплет Sachs 3000950711",
		Description: "Комплетен сет за квачило со плоча, диск и лежиште за перфектна трансмисија.",
		Price:       "7800.00",
		Category:    "transmission",
		ImageURL:    "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=400&h=300&fit=crop",
		PartNumber:  "SACHS-3000950711",
		Brand:       "Sachs",
		Brands:      []string{"Opel", "Chevrolet"},
		Models:      []string{"Corsa", "Aveo"},
		Years:       []string{"2006", "2007", "2008", "2009", "2010"},
	},
	{
		Name:        "Стартер Valeo 458178",
		Description: "Моќен и сигурен стартер за брзо и лесно стартување на мотор.",
		Price:       "9500.00",
		Category:    "electrical",
		ImageURL:    "https://images.unsplash.com/photo-1600586747245-a42b05b20afe?w=400&h=300&fit=crop",
		PartNumber:  "VAL-458178",
		Brand:       "Valeo",
		Brands:      []string{"Peugeot", "Citroën"},
		Models:      []string{"207", "C3"},
		Years:       []string{"2006", "2007", "2008", "2009", "2010", "2011"},
	},
	{
		Name:        "Гуми Michelin Primacy 4",
		Description: "Летни гуми со одлична сцепка и економичност. Димензија 205/55R16.",
		Price:       "5500.00",
		Category:    "tyres-wheels",
		ImageURL:    "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=300&fit=crop",
		PartNumber:  "MICH-205-55R16-91H",
		Brand:       "Michelin",
		Brands:      []string{"Toyota", "Honda", "Hyundai"},
		Models:      []string{"Auris", "Civic", "i30"},
		Years:       []string{"2012", "2013", "2014", "2015", "2016", "2017"},
	},
	{
		Name:        "Климатик компресор Denso 447220-3421",
		Description: "Ефикасен компресор за систем за климатизација со тивка работа.",
		Price:       "15500.00",
		Category:    "air-conditioning",
		ImageURL:    "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=400&h=300&fit=crop",
		PartNumber:  "DNS-4472203421",
		Brand:       "Denso",
		Brands:      []string{"Toyota", "Lexus"},
		Models:      []string{"Camry", "ES"},
		Years:       []string{"2012", "2013", "2014", "2015", "2016"},
	},
	{
		Name:        "Спојка стабилизатор TRW JTS419",
		Description: "Висококвалитетна спојка за стабилизатор за подобра стабилност при возење.",
		Price:       "680.00",
		Category:    "tyres-wheels",
		ImageURL:    "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=400&h=300&fit=crop",
		PartNumber:  "TRW-JTS419",
		Brand:       "TRW",
		Brands:      []string{"Fiat", "Alfa Romeo"},
		Models:      []string{"Punto", "Giulietta"},
		Years:       []string{"2008", "2009", "2010", "2011", "2012"},
	},
	{
		Name:        "Горивен филтер Mann WK 820/17",
		Description: "Прецизен горивен филтер за заштита на системот за впрскување.",
		Price:       "950.00",
		Category:    "filters",
		ImageURL:    "https://images.unsplash.com/photo-1541443131876-44b03de101c5?w=400&h=300&fit=crop",
		PartNumber:  "MANN-WK82017",
		Brand:       "Mann-Filter",
		Brands:      []string{"BMW", "Mini"},
		Models:      []string{"X1", "Cooper"},
		Years:       []string{"2010", "2011", "2012", "2013", "2014"},
	},
	{
		Name:        "Браник предна Mercedes W204",
		Description: "Оригинален предна браник за Mercedes C-Class W204 во одлична состојба.",
		Price:       "12800.00",
		Category:    "body-parts",
		ImageURL:    "https://images.unsplash.com/photo-1544967881-6ad5e8b4b7d8?w=400&h=300&fit=crop",
		PartNumber:  "MB-W204-FB-OEM",
		Brand:       "Mercedes-Benz",
		Brands:      []string{"Mercedes-Benz"},
		Models:      []string{"C-Class"},
		Years:       []string{"2007", "2008", "2009", "2010", "2011", "2012", "2013", "2014"},
	},
}

// Seed loads the starter catalog into an empty database. It is a no-op once
// any category exists, so it is safe to call on every start.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := make([]models.Category, len(seedCategories))
		copy(categories, seedCategories)
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		categoryIDs := make(map[string]uint, len(categories))
		for _, c := range categories {
			categoryIDs[c.Slug] = c.ID
		}

		brands := make([]models.CarBrand, len(seedBrands))
		copy(brands, seedBrands)
		if err := tx.Create(&brands).Error; err != nil {
			return fmt.Errorf("seed car brands: %w", err)
		}

		var carModels []models.CarModel
		for _, b := range brands {
			for _, name := range seedModels[b.Slug] {
				carModels = append(carModels, models.CarModel{
					BrandID: b.ID,
					Name:    name,
					Slug:    modelSlug(name),
				})
			}
		}
		if err := tx.Create(&carModels).Error; err != nil {
			return fmt.Errorf("seed car models: %w", err)
		}

		products := make([]models.Product, 0, len(seedProducts))
		for _, sp := range seedProducts {
			categoryID := categoryIDs[sp.Category]
			products = append(products, models.Product{
				Name:             sp.Name,
				Description:      sp.Description,
				Price:            decimal.RequireFromString(sp.Price),
				CategoryID:       &categoryID,
				ImageURL:         sp.ImageURL,
				InStock:          true,
				PartNumber:       sp.PartNumber,
				Brand:            sp.Brand,
				CompatibleBrands: sp.Brands,
				CompatibleModels: sp.Models,
				CompatibleYears:  sp.Years,
			})
		}
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Database seeded with starter catalog",
		"categories", len(seedCategories),
		"brands", len(seedBrands),
		"products", len(seedProducts),
	)
	return nil
}

// modelSlug lower-cases the name and joins words with dashes ("3 Series" -> "3-series").
func modelSlug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
