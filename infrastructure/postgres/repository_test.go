package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewInMemoryDatabase(uuid.NewString())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func uintPtr(v uint) *uint { return &v }

func seedFilterProducts(t *testing.T, db *gorm.DB) repositories.ProductRepository {
	t.Helper()
	ctx := context.Background()
	categories := NewCategoryRepository(db)
	for _, slug := range []string{"engine-parts", "brakes", "filters", "electrical"} {
		if err := categories.Create(ctx, &models.Category{Name: slug, NameEn: slug, Slug: slug}); err != nil {
			t.Fatalf("create category: %v", err)
		}
	}

	repo := NewProductRepository(db)
	products := []*models.Product{
		{
			Name:             "Brake Pads Brembo",
			Description:      "Front brake pads",
			Price:            decimal.RequireFromString("2850.00"),
			CategoryID:       uintPtr(2),
			PartNumber:       "BRM-P50020",
			CompatibleBrands: []string{"BMW", "Audi"},
			CompatibleModels: []string{"3 Series", "A4"},
			CompatibleYears:  []string{"2015", "2016"},
		},
		{
			Name:             "Oil Filter Bosch",
			Description:      "Engine oil filter",
			Price:            decimal.RequireFromString("850.00"),
			CategoryID:       uintPtr(3),
			PartNumber:       "BSH-0451103318",
			CompatibleBrands: []string{"BMW", "Volkswagen"},
			CompatibleModels: []string{"Golf"},
			CompatibleYears:  []string{"2010", "2011"},
		},
		{
			Name:             "Battery Varta",
			Description:      "74Ah battery with brake light support",
			Price:            decimal.RequireFromString("6500.00"),
			CategoryID:       uintPtr(4),
			PartNumber:       "VARTA-E11",
			CompatibleBrands: []string{"Hyundai"},
			CompatibleModels: []string{"i30"},
			CompatibleYears:  []string{"2016"},
		},
	}
	for _, p := range products {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create product: %v", err)
		}
	}
	return repo
}

func productNames(products []*models.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func TestProductRepositoryList(t *testing.T) {
	db := newTestDB(t)
	repo := seedFilterProducts(t, db)

	tests := []struct {
		name   string
		filter repositories.ProductFilter
		want   []string
	}{
		{"no filters", repositories.ProductFilter{}, []string{"Brake Pads Brembo", "Oil Filter Bosch", "Battery Varta"}},
		{"category", repositories.ProductFilter{CategoryID: 3}, []string{"Oil Filter Bosch"}},
		{"search name", repositories.ProductFilter{Search: "Brembo"}, []string{"Brake Pads Brembo"}},
		{"search description", repositories.ProductFilter{Search: "brake"}, []string{"Brake Pads Brembo", "Battery Varta"}},
		{"search part number", repositories.ProductFilter{Search: "BSH-04"}, []string{"Oil Filter Bosch"}},
		{"search is case sensitive", repositories.ProductFilter{Search: "bosch"}, []string{}},
		{"compatible brand", repositories.ProductFilter{CompatibleBrand: "BMW"}, []string{"Brake Pads Brembo", "Oil Filter Bosch"}},
		{"compatible model", repositories.ProductFilter{CompatibleModel: "Golf"}, []string{"Oil Filter Bosch"}},
		{"compatible year", repositories.ProductFilter{CompatibleYear: "2016"}, []string{"Brake Pads Brembo", "Battery Varta"}},
		{"filters are combined", repositories.ProductFilter{CompatibleBrand: "BMW", CompatibleYear: "2016"}, []string{"Brake Pads Brembo"}},
		{"category and search disagree", repositories.ProductFilter{CategoryID: 4, Search: "Brembo"}, []string{}},
		{"brand id is ignored", repositories.ProductFilter{BrandID: 99}, []string{"Brake Pads Brembo", "Oil Filter Bosch", "Battery Varta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			names := productNames(got)
			if len(names) != len(tt.want) {
				t.Fatalf("got %v, want %v", names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Errorf("got %v, want %v", names, tt.want)
					break
				}
			}
		})
	}
}

func TestProductRepositoryRoundTripsCompatibility(t *testing.T) {
	db := newTestDB(t)
	repo := seedFilterProducts(t, db)

	p, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(p.CompatibleBrands) != 2 || p.CompatibleBrands[1] != "Audi" {
		t.Errorf("unexpected compatible brands %v", p.CompatibleBrands)
	}
	if !p.Price.Equal(decimal.RequireFromString("2850")) {
		t.Errorf("price = %s", p.Price)
	}
	if !p.InStock {
		t.Error("expected product to default to in stock")
	}

	if _, err := repo.GetByID(context.Background(), 404); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	byID, err := repo.GetByIDs(context.Background(), []uint{1, 3, 404})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(byID) != 2 || byID[3] == nil {
		t.Errorf("unexpected GetByIDs result %v", byID)
	}

	featured, err := repo.ListFeatured(context.Background(), 2)
	if err != nil || len(featured) != 2 {
		t.Errorf("ListFeatured = %d, %v", len(featured), err)
	}
}

func TestCartRepositoryMergesLines(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedFilterProducts(t, db)
	repo := NewCartRepository(db)

	first, err := repo.AddOrIncrement(ctx, "s1", 1, 1)
	if err != nil {
		t.Fatalf("AddOrIncrement: %v", err)
	}
	second, err := repo.AddOrIncrement(ctx, "s1", 1, 2)
	if err != nil {
		t.Fatalf("AddOrIncrement: %v", err)
	}
	if first.ID != second.ID || second.Quantity != 3 {
		t.Errorf("expected merged line with quantity 3, got id %d/%d qty %d", first.ID, second.ID, second.Quantity)
	}
	if second.Product == nil || second.Product.ID != 1 {
		t.Error("expected product to be loaded")
	}

	if _, err := repo.AddOrIncrement(ctx, "s2", 1, 1); err != nil {
		t.Fatalf("AddOrIncrement other session: %v", err)
	}

	items, err := repo.ListBySession(ctx, "s1")
	if err != nil || len(items) != 1 {
		t.Fatalf("ListBySession = %d, %v", len(items), err)
	}

	updated, err := repo.UpdateQuantity(ctx, first.ID, 5)
	if err != nil || updated.Quantity != 5 {
		t.Errorf("UpdateQuantity = %+v, %v", updated, err)
	}
	if _, err := repo.UpdateQuantity(ctx, 999, 5); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	deleted, err := repo.Delete(ctx, first.ID)
	if err != nil || !deleted {
		t.Errorf("Delete = %v, %v", deleted, err)
	}
	deleted, _ = repo.Delete(ctx, first.ID)
	if deleted {
		t.Error("expected second delete to report nothing removed")
	}

	n, err := repo.ClearSession(ctx, "s2")
	if err != nil || n != 1 {
		t.Errorf("ClearSession = %d, %v", n, err)
	}
}

func TestCartItemKeyIsUnique(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedFilterProducts(t, db)

	if err := db.Omit("Product").Create(&models.CartItem{SessionID: "s", ProductID: 1, Quantity: 1}).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := db.Omit("Product").Create(&models.CartItem{SessionID: "s", ProductID: 1, Quantity: 1}).Error; err == nil {
		t.Error("expected a second line for the same session and product to be rejected")
	}

	repo := NewCartRepository(db)
	line, err := repo.AddOrIncrement(ctx, "s", 1, 4)
	if err != nil {
		t.Fatalf("AddOrIncrement: %v", err)
	}
	if line.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", line.Quantity)
	}

	var count int64
	db.Model(&models.CartItem{}).Where("session_id = ? AND product_id = ?", "s", 1).Count(&count)
	if count != 1 {
		t.Errorf("lines for key = %d, want 1", count)
	}
}

func TestOrderRepositoryCreateWithItems(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	products := seedFilterProducts(t, db)
	repo := NewOrderRepository(db)

	order := &models.Order{
		FirstName:     "Ana",
		LastName:      "Petrovska",
		Email:         "ana@example.mk",
		Phone:         "070123456",
		Address:       "Partizanska 10",
		City:          "Skopje",
		PostalCode:    "1000",
		PaymentMethod: models.PaymentMethodCash,
		Total:         decimal.RequireFromString("3700.00"),
		Status:        models.OrderStatusPending,
	}
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 1, Price: decimal.RequireFromString("2850.00")},
		{ProductID: 2, Quantity: 1, Price: decimal.RequireFromString("850.00")},
	}
	if err := repo.CreateWithItems(ctx, order, items); err != nil {
		t.Fatalf("CreateWithItems: %v", err)
	}
	if order.ID == 0 {
		t.Fatal("expected order id to be assigned")
	}

	// Later catalog price changes must not touch the snapshot.
	p, _ := products.GetByID(ctx, 1)
	p.Price = decimal.RequireFromString("9999.00")
	if err := products.Update(ctx, p); err != nil {
		t.Fatalf("Update product: %v", err)
	}

	got, err := repo.GetWithItems(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetWithItems: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if !got.Items[0].Price.Equal(decimal.RequireFromString("2850")) {
		t.Errorf("snapshot price changed to %s", got.Items[0].Price)
	}
	if got.Items[0].Product == nil || got.Items[0].Product.Name != "Brake Pads Brembo" {
		t.Error("expected item product to be loaded")
	}

	if err := repo.UpdateStatus(ctx, order.ID, models.OrderStatusShipped); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := repo.UpdateStatus(ctx, 404, models.OrderStatusShipped); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	all, err := repo.ListWithItems(ctx)
	if err != nil || len(all) != 1 || all[0].Status != models.OrderStatusShipped {
		t.Errorf("ListWithItems = %+v, %v", all, err)
	}
}

func TestSessionStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := NewSessionStore(db)
	now := time.Now().UTC()

	live := &models.AdminSession{ID: "live", AdminID: 1, Username: "admin", ExpiresAt: now.Add(time.Hour)}
	stale := &models.AdminSession{ID: "stale", AdminID: 1, Username: "admin", ExpiresAt: now.Add(-time.Hour)}
	for _, s := range []*models.AdminSession{live, stale} {
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if _, err := store.Get(ctx, "live"); err != nil {
		t.Errorf("Get live: %v", err)
	}
	if _, err := store.Get(ctx, "stale"); !errors.Is(err, ports.ErrSessionNotFound) {
		t.Errorf("expected expired session to be hidden, got %v", err)
	}

	n, err := store.PurgeExpired(ctx, now)
	if err != nil || n != 1 {
		t.Errorf("PurgeExpired = %d, %v", n, err)
	}

	if err := store.Delete(ctx, "live"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "live"); !errors.Is(err, ports.ErrSessionNotFound) {
		t.Errorf("expected deleted session to be gone, got %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, db); err != nil {
			t.Fatalf("Seed #%d: %v", i+1, err)
		}
	}

	count, _ := NewCategoryRepository(db).Count(ctx)
	if count != int64(len(seedCategories)) {
		t.Errorf("categories = %d, want %d", count, len(seedCategories))
	}
	products, _ := NewProductRepository(db).Count(ctx)
	if products != int64(len(seedProducts)) {
		t.Errorf("products = %d, want %d", products, len(seedProducts))
	}

	bmw, err := NewProductRepository(db).List(ctx, repositories.ProductFilter{CompatibleBrand: "BMW"})
	if err != nil || len(bmw) == 0 {
		t.Errorf("expected BMW-compatible products, got %d, %v", len(bmw), err)
	}

	carModels, err := NewCarRepository(db).ListModelsByBrand(ctx, 1)
	if err != nil || len(carModels) != len(seedModels["bmw"]) {
		t.Errorf("bmw models = %d, %v", len(carModels), err)
	}
}

func TestModelSlug(t *testing.T) {
	tests := map[string]string{
		"3 Series": "3-series",
		"A-Class":  "a-class",
		"Santa Fe": "santa-fe",
		"i30":      "i30",
	}
	for in, want := range tests {
		if got := modelSlug(in); got != want {
			t.Errorf("modelSlug(%q) = %q, want %q", in, got, want)
		}
	}
}
