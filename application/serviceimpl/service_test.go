package serviceimpl

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/infrastructure/export"
	"github.com/DsDac0/Website/infrastructure/postgres"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := postgres.NewInMemoryDatabase(uuid.NewString())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: decimal.RequireFromString(price), InStock: true}
	if err := postgres.NewProductRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

type failingMailer struct{ calls int }

func (m *failingMailer) SendOrderConfirmation(context.Context, *models.Order) error {
	m.calls++
	return errors.New("smtp down")
}

type failingNotifier struct{ calls int }

func (n *failingNotifier) SendNewOrderAlert(context.Context, *models.Order) error {
	n.calls++
	return errors.New("telegram down")
}

func (n *failingNotifier) SendContactMessageAlert(context.Context, *models.ContactMessage) error {
	n.calls++
	return errors.New("telegram down")
}

func (n *failingNotifier) IsEnabled() bool { return true }

type recordingPublisher struct {
	mu     sync.Mutex
	events []*ports.OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, e *ports.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func orderRequest(productID uint, qty int, price, total string) *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		Order: dto.OrderDetails{
			FirstName:     "Ана",
			LastName:      "Стојанова",
			Email:         "ana@example.com",
			Phone:         "070123456",
			Address:       "Илинденска 5",
			City:          "Битола",
			PostalCode:    "7000",
			PaymentMethod: "cash",
			Total:         decimal.RequireFromString(total),
		},
		Items: []dto.OrderItemInput{{ProductID: productID, Quantity: qty, Price: decimal.RequireFromString(price)}},
	}
}

func TestOrderServiceCreateKeepsSubmittedTotal(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Филтер за масло", "450")
	pub := &recordingPublisher{}
	svc := NewOrderService(postgres.NewOrderRepository(db), postgres.NewProductRepository(db), OrderDeps{Publisher: pub})

	order, err := svc.Create(context.Background(), orderRequest(p.ID, 2, "450", "1234.56"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !order.Total.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("expected submitted total to be stored, got %s", order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("expected pending status, got %s", order.Status)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", order.Items)
	}
	if len(pub.events) != 1 || pub.events[0].Type != ports.OrderEventCreated || pub.events[0].ItemCount != 2 {
		t.Errorf("unexpected events: %+v", pub.events)
	}
}

func TestOrderServiceSideEffectFailuresKeepOrder(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Свеќица", "300")
	mailer := &failingMailer{}
	notifier := &failingNotifier{}
	svc := NewOrderService(postgres.NewOrderRepository(db), postgres.NewProductRepository(db), OrderDeps{
		Mailer:   mailer,
		Notifier: notifier,
	})

	order, err := svc.Create(context.Background(), orderRequest(p.ID, 1, "300", "300"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if mailer.calls != 1 || notifier.calls != 1 {
		t.Errorf("expected one mail and one alert attempt, got %d/%d", mailer.calls, notifier.calls)
	}
	if _, err := svc.GetByID(context.Background(), order.ID); err != nil {
		t.Errorf("order should be persisted: %v", err)
	}
}

func TestOrderServiceRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Ремен", "900")
	svc := NewOrderService(postgres.NewOrderRepository(db), postgres.NewProductRepository(db), OrderDeps{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, orderRequest(p.ID+100, 1, "900", "900")); !errors.Is(err, services.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.Create(ctx, orderRequest(p.ID, 1, "900", "-1")); !errors.Is(err, services.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateOrderRequest{}); !errors.Is(err, services.ErrEmptyOrder) {
		t.Errorf("expected ErrEmptyOrder, got %v", err)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no orders, got %d", count)
	}
}

func TestOrderServiceQuoteUsesCatalogPrice(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Амортизер", "2500")
	svc := NewOrderService(postgres.NewOrderRepository(db), postgres.NewProductRepository(db), OrderDeps{})

	q, err := svc.Quote(context.Background(), []dto.OrderItemInput{{ProductID: p.ID, Quantity: 2, Price: decimal.NewFromInt(1)}})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if !q.Subtotal.Equal(decimal.NewFromInt(5000)) || q.Items != 2 {
		t.Errorf("unexpected quote: %+v", q)
	}
}

func TestOrderServiceQuoteMergesRepeatedProducts(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Филтер за масло", "450")
	svc := NewOrderService(postgres.NewOrderRepository(db), postgres.NewProductRepository(db), OrderDeps{})

	q, err := svc.Quote(context.Background(), []dto.OrderItemInput{
		{ProductID: p.ID, Quantity: 1},
		{ProductID: p.ID, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if q.Items != 4 || !q.Subtotal.Equal(decimal.NewFromInt(1800)) || !q.Shipping.Equal(decimal.NewFromInt(200)) {
		t.Errorf("unexpected quote: %+v", q)
	}
}

func TestOrderServiceUpdateStatusAndExport(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Акумулатор", "5200")
	pub := &recordingPublisher{}
	svc := NewOrderService(postgres.NewOrderRepository(db), postgres.NewProductRepository(db), OrderDeps{
		Publisher: pub,
		Exporter:  export.NewXLSXOrderExporter(),
	})
	ctx := context.Background()

	order, err := svc.Create(ctx, orderRequest(p.ID, 1, "5200", "5200"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatus("lost")); !errors.Is(err, services.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, order.ID+1, models.OrderStatusShipped); !errors.Is(err, services.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.OrderStatusShipped {
		t.Errorf("expected shipped, got %s", updated.Status)
	}
	if last := pub.events[len(pub.events)-1]; last.Type != ports.OrderEventStatusChanged || last.Status != "shipped" {
		t.Errorf("unexpected last event: %+v", last)
	}

	var buf bytes.Buffer
	ext, contentType, err := svc.Export(ctx, &buf)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if ext != "xlsx" || contentType == "" || buf.Len() == 0 {
		t.Errorf("unexpected export result %q %q %d bytes", ext, contentType, buf.Len())
	}
}

func TestCartServiceMergesLines(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Метлички", "350")
	svc := NewCartService(postgres.NewCartRepository(db), postgres.NewProductRepository(db))
	ctx := context.Background()
	session, err := svc.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if _, err := svc.AddItem(ctx, session, p.ID, 0); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	item, err := svc.AddItem(ctx, session, p.ID, 2)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Quantity != 3 {
		t.Errorf("expected merged quantity 3, got %d", item.Quantity)
	}

	if _, err := svc.AddItem(ctx, session, p.ID+50, 1); !errors.Is(err, services.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	removed, err := svc.UpdateQuantity(ctx, item.ID, 0)
	if err != nil || removed != nil {
		t.Fatalf("UpdateQuantity(0) = %+v, %v", removed, err)
	}
	if err := svc.RemoveItem(ctx, item.ID); !errors.Is(err, services.ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound, got %v", err)
	}

	items, err := svc.GetCart(ctx, session)
	if err != nil || len(items) != 0 {
		t.Errorf("expected empty cart, got %d items (%v)", len(items), err)
	}
}

func TestCartServiceUpdateQuantityAndTotals(t *testing.T) {
	db := newTestDB(t)
	oil := seedProduct(t, db, "Моторно масло", "900")
	bulb := seedProduct(t, db, "Сијалица H7", "150.50")
	svc := NewCartService(postgres.NewCartRepository(db), postgres.NewProductRepository(db))
	ctx := context.Background()
	session, err := svc.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	line, err := svc.AddItem(ctx, session, oil.ID, 1)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := svc.AddItem(ctx, session, bulb.ID, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	updated, err := svc.UpdateQuantity(ctx, line.ID, 3)
	if err != nil || updated == nil || updated.Quantity != 3 {
		t.Fatalf("UpdateQuantity(3) = %+v, %v", updated, err)
	}
	if _, err := svc.UpdateQuantity(ctx, line.ID+100, 2); !errors.Is(err, services.ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound, got %v", err)
	}

	items, err := svc.GetCart(ctx, session)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	resp := dto.CartToResponse(session, items)
	if resp.TotalItems != 5 || resp.TotalPrice != "3001.00" {
		t.Errorf("totals = %d / %s, want 5 / 3001.00", resp.TotalItems, resp.TotalPrice)
	}

	if _, err := svc.UpdateQuantity(ctx, line.ID, -1); err != nil {
		t.Fatalf("UpdateQuantity(-1): %v", err)
	}
	items, _ = svc.GetCart(ctx, session)
	if len(items) != 1 || items[0].ProductID != bulb.ID {
		t.Errorf("expected only the bulb line left, got %d lines", len(items))
	}
}

func newAuthService(t *testing.T, db *gorm.DB) *AdminAuthServiceImpl {
	t.Helper()
	return NewAdminAuthService(postgres.NewAdminUserRepository(db), postgres.NewSessionStore(db), "test-secret", time.Hour).(*AdminAuthServiceImpl)
}

func TestAdminAuthLoginLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	admin, created, err := svc.EnsureAdmin(ctx, "admin", "s3cret-pass")
	if err != nil || !created {
		t.Fatalf("EnsureAdmin = %v, %v", created, err)
	}
	if _, again, _ := svc.EnsureAdmin(ctx, "admin", "other"); again {
		t.Error("expected EnsureAdmin to be idempotent")
	}

	token, loggedIn, err := svc.Login(ctx, "admin", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.ID != admin.ID {
		t.Errorf("expected admin %d, got %d", admin.ID, loggedIn.ID)
	}

	adminCtx, err := svc.Authenticate(ctx, token)
	if err != nil || adminCtx.Username != "admin" {
		t.Fatalf("Authenticate = %+v, %v", adminCtx, err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, services.ErrUnauthorized) {
		t.Errorf("expected revoked token to fail, got %v", err)
	}
	if err := svc.Logout(ctx, token); err != nil {
		t.Errorf("second logout should be a no-op, got %v", err)
	}
}

func TestAdminAuthRejectsWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	if _, _, err := svc.EnsureAdmin(ctx, "admin", "correct-horse"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}

	for _, tc := range []struct{ user, pass string }{{"admin", "wrong"}, {"ghost", "correct-horse"}} {
		if _, _, err := svc.Login(ctx, tc.user, tc.pass); !errors.Is(err, services.ErrInvalidCredentials) {
			t.Errorf("Login(%s) expected ErrInvalidCredentials, got %v", tc.user, err)
		}
	}

	var sessions int64
	db.Model(&models.AdminSession{}).Count(&sessions)
	if sessions != 0 {
		t.Errorf("expected no sessions after failed logins, got %d", sessions)
	}
}

func TestAdminAuthRejectsInactiveAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	admin, _, err := svc.EnsureAdmin(ctx, "old", "password1")
	if err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	if err := db.Model(admin).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, _, err := svc.Login(ctx, "old", "password1"); !errors.Is(err, services.ErrAdminInactive) {
		t.Errorf("expected ErrAdminInactive, got %v", err)
	}
}

func TestAdminAuthDeactivatedAdminLosesSession(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	admin, _, err := svc.EnsureAdmin(ctx, "clerk", "password1")
	if err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	token, _, err := svc.Login(ctx, "clerk", "password1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.Authenticate(ctx, token); err != nil {
		t.Fatalf("Authenticate before deactivation: %v", err)
	}

	if err := db.Model(admin).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, services.ErrUnauthorized) {
		t.Errorf("expected deactivated admin to be rejected, got %v", err)
	}

	var sessions int64
	db.Model(&models.AdminSession{}).Count(&sessions)
	if sessions != 0 {
		t.Errorf("expected the session to be revoked, %d left", sessions)
	}
}

func TestAdminAuthExpiredSession(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	if _, _, err := svc.EnsureAdmin(ctx, "admin", "password1"); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	token, _, err := svc.Login(ctx, "admin", "password1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	svc.now = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }
	n, err := svc.PurgeExpiredSessions(ctx)
	if err != nil || n != 1 {
		t.Fatalf("PurgeExpiredSessions = %d, %v", n, err)
	}
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, services.ErrUnauthorized) {
		t.Errorf("expected purged session to fail, got %v", err)
	}
}

func TestContactServiceSubmit(t *testing.T) {
	db := newTestDB(t)
	notifier := &failingNotifier{}
	svc := NewContactService(postgres.NewContactRepository(db), notifier, nil)
	ctx := context.Background()

	msg, err := svc.Submit(ctx, &dto.CreateContactMessageRequest{Name: "Иван", Email: "ivan@example.com", Message: "Дали имате дискови?"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if msg.ID == 0 || notifier.calls != 1 {
		t.Errorf("unexpected result id=%d alerts=%d", msg.ID, notifier.calls)
	}

	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 {
		t.Errorf("List = %d, %v", len(list), err)
	}
}
