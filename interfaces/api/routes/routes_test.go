package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/DsDac0/Website/application/serviceimpl"
	"github.com/DsDac0/Website/infrastructure/postgres"
	"github.com/DsDac0/Website/infrastructure/websocket"
	"github.com/DsDac0/Website/interfaces/api/handlers"
	"github.com/DsDac0/Website/interfaces/api/middleware"
)

const testCookie = "map_admin_test"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()

	db, err := postgres.NewInMemoryDatabase(uuid.NewString())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := postgres.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	productRepo := postgres.NewProductRepository(db)
	authService := serviceimpl.NewAdminAuthService(postgres.NewAdminUserRepository(db), postgres.NewSessionStore(db), "route-test-secret", time.Hour)
	if _, _, err := authService.EnsureAdmin(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	h := handlers.NewHandlers(&handlers.Services{
		CategoryService:  serviceimpl.NewCategoryService(postgres.NewCategoryRepository(db), nil),
		CarService:       serviceimpl.NewCarService(postgres.NewCarRepository(db), nil),
		ProductService:   serviceimpl.NewProductService(productRepo, nil),
		CartService:      serviceimpl.NewCartService(postgres.NewCartRepository(db), productRepo),
		OrderService:     serviceimpl.NewOrderService(postgres.NewOrderRepository(db), productRepo, serviceimpl.OrderDeps{}),
		ContactService:   serviceimpl.NewContactService(postgres.NewContactRepository(db), nil, nil),
		AdminAuthService: authService,
		PaymentService:   serviceimpl.NewPaymentService(nil, nil, "mkd"),
		WebSocketManager: websocket.NewManager(),
		CookieName:       testCookie,
		SessionMaxAge:    3600,
	})

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestIDMiddleware())
	SetupRoutes(app, h, Options{AuthService: authService, CookieName: testCookie, ServiceName: "test"})
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string, cookies ...*http.Cookie) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &env)
	return resp, env
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookie && c.Value != "" {
			return c
		}
	}
	return nil
}

func TestAdminRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/admin/orders"},
		{http.MethodGet, "/api/admin/orders/export"},
		{http.MethodPut, "/api/admin/orders/1/status"},
		{http.MethodGet, "/api/admin/contact-messages"},
		{http.MethodPost, "/api/admin/products/1/image"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			resp, env := do(t, app, p.method, p.path, "")
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", resp.StatusCode)
			}
			if env.Error == nil || env.Error.Code != "UNAUTHORIZED" {
				t.Errorf("expected UNAUTHORIZED envelope, got %+v", env.Error)
			}
		})
	}

	forged := &http.Cookie{Name: testCookie, Value: "not-a-token"}
	if resp, _ := do(t, app, http.MethodGet, "/api/admin/orders", "", forged); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("forged cookie: expected 401, got %d", resp.StatusCode)
	}
}

func TestAdminLoginFlow(t *testing.T) {
	app := newTestApp(t)

	resp, _ := do(t, app, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"wrong"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", resp.StatusCode)
	}
	if sessionCookie(resp) != nil {
		t.Fatal("wrong password must not set a session cookie")
	}

	resp, _ = do(t, app, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"admin123"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	cookie := sessionCookie(resp)
	if cookie == nil {
		t.Fatal("expected session cookie")
	}

	resp, env := do(t, app, http.MethodGet, "/api/admin/check", "", cookie)
	var check struct {
		IsAuthenticated bool `json:"isAuthenticated"`
		User            *struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	_ = json.Unmarshal(env.Data, &check)
	if resp.StatusCode != http.StatusOK || !check.IsAuthenticated || check.User == nil || check.User.Username != "admin" {
		t.Errorf("unexpected check response %d %s", resp.StatusCode, env.Data)
	}

	if resp, _ := do(t, app, http.MethodGet, "/api/admin/orders", "", cookie); resp.StatusCode != http.StatusOK {
		t.Errorf("orders with session: expected 200, got %d", resp.StatusCode)
	}

	if resp, _ := do(t, app, http.MethodPost, "/api/admin/logout", "", cookie); resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.StatusCode)
	}
	if resp, _ := do(t, app, http.MethodGet, "/api/admin/orders", "", cookie); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("orders after logout: expected 401, got %d", resp.StatusCode)
	}
}

func TestAdminCheckWithoutSession(t *testing.T) {
	app := newTestApp(t)

	resp, env := do(t, app, http.MethodGet, "/api/admin/check", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if string(env.Data) != `{"isAuthenticated":false,"user":null}` {
		t.Errorf("unexpected body %s", env.Data)
	}
}

func TestCatalogRoutes(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"categories", "/api/categories", http.StatusOK},
		{"category by slug", "/api/categories/brakes", http.StatusOK},
		{"unknown category", "/api/categories/no-such-thing", http.StatusNotFound},
		{"brands", "/api/car-brands", http.StatusOK},
		{"models", "/api/car-models/1", http.StatusOK},
		{"models bad id", "/api/car-models/abc", http.StatusBadRequest},
		{"products", "/api/products", http.StatusOK},
		{"products bad brand", "/api/products?brandId=abc", http.StatusBadRequest},
		{"featured", "/api/products/featured", http.StatusOK},
		{"product", "/api/products/1", http.StatusOK},
		{"product bad id", "/api/products/abc", http.StatusBadRequest},
		{"product missing", "/api/products/9999", http.StatusNotFound},
		{"health", "/health", http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := do(t, app, http.MethodGet, tc.path, "")
			if resp.StatusCode != tc.status {
				t.Errorf("GET %s: expected %d, got %d", tc.path, tc.status, resp.StatusCode)
			}
		})
	}
}

func TestProductListWithoutFiltersReturnsCatalog(t *testing.T) {
	app := newTestApp(t)

	_, env := do(t, app, http.MethodGet, "/api/products", "")
	var products []map[string]any
	if err := json.Unmarshal(env.Data, &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 20 {
		t.Errorf("expected 20 seeded products, got %d", len(products))
	}
}

func TestCartRoutes(t *testing.T) {
	app := newTestApp(t)

	resp, env := do(t, app, http.MethodPost, "/api/cart/session", "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("session: expected 201, got %d", resp.StatusCode)
	}
	var session struct {
		SessionID string `json:"sessionId"`
	}
	_ = json.Unmarshal(env.Data, &session)

	body := `{"sessionId":"` + session.SessionID + `","productId":1,"quantity":2}`
	do(t, app, http.MethodPost, "/api/cart", body)
	resp, env = do(t, app, http.MethodPost, "/api/cart", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d", resp.StatusCode)
	}
	var item struct {
		ID       uint `json:"id"`
		Quantity int  `json:"quantity"`
	}
	_ = json.Unmarshal(env.Data, &item)
	if item.Quantity != 4 {
		t.Errorf("expected merged quantity 4, got %d", item.Quantity)
	}

	_, env = do(t, app, http.MethodGet, "/api/cart/"+session.SessionID, "")
	var cart struct {
		Items      []json.RawMessage `json:"items"`
		TotalItems int               `json:"totalItems"`
	}
	_ = json.Unmarshal(env.Data, &cart)
	if len(cart.Items) != 1 || cart.TotalItems != 4 {
		t.Errorf("unexpected cart: %s", env.Data)
	}

	if resp, _ := do(t, app, http.MethodDelete, "/api/cart/9999", ""); resp.StatusCode != http.StatusNotFound {
		t.Errorf("delete missing: expected 404, got %d", resp.StatusCode)
	}
	if resp, _ := do(t, app, http.MethodPut, "/api/cart/"+itoa(item.ID), `{"quantity":0}`); resp.StatusCode != http.StatusOK {
		t.Errorf("update to zero: expected 200, got %d", resp.StatusCode)
	}
	if resp, _ := do(t, app, http.MethodDelete, "/api/cart/"+itoa(item.ID), ""); resp.StatusCode != http.StatusNotFound {
		t.Errorf("line removed by zero quantity: expected 404, got %d", resp.StatusCode)
	}
	if resp, _ := do(t, app, http.MethodDelete, "/api/cart/clear/"+session.SessionID, ""); resp.StatusCode != http.StatusOK {
		t.Errorf("clear: expected 200, got %d", resp.StatusCode)
	}
}

func TestCreateOrderRoute(t *testing.T) {
	app := newTestApp(t)

	resp, env := do(t, app, http.MethodPost, "/api/orders", `{"order":{"firstName":"","email":"bad","postalCode":"12","paymentMethod":"crypto"},"items":[{"productId":1,"quantity":1,"price":100}]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid order: expected 400, got %d", resp.StatusCode)
	}
	for _, field := range []string{"order.firstName", "order.email", "order.postalCode", "order.paymentMethod"} {
		if _, ok := env.Error.Details[field]; !ok {
			t.Errorf("expected field error for %s, got %v", field, env.Error.Details)
		}
	}

	valid := `{"order":{"firstName":"Марко","lastName":"Петров","email":"marko@example.com","phone":"070123456",` +
		`"address":"Партизанска 12","city":"Скопје","postalCode":"10 00","paymentMethod":"cash","total":"3700.00"},` +
		`"items":[{"productId":1,"quantity":2,"price":"1000.00"}]}`
	resp, env = do(t, app, http.MethodPost, "/api/orders", valid)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("valid order: expected 201, got %d (%+v)", resp.StatusCode, env.Error)
	}
	var order struct {
		ID     uint   `json:"id"`
		Total  string `json:"total"`
		Status string `json:"status"`
	}
	_ = json.Unmarshal(env.Data, &order)
	if order.Total != "3700.00" || order.Status != "pending" {
		t.Errorf("unexpected order: %s", env.Data)
	}

	if resp, _ := do(t, app, http.MethodGet, "/api/orders/"+itoa(order.ID), ""); resp.StatusCode != http.StatusOK {
		t.Errorf("get order: expected 200, got %d", resp.StatusCode)
	}
	if resp, _ := do(t, app, http.MethodGet, "/api/orders/abc", ""); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("get order bad id: expected 400, got %d", resp.StatusCode)
	}
}

func TestPaymentRoutesWithoutProviders(t *testing.T) {
	app := newTestApp(t)

	if resp, _ := do(t, app, http.MethodPost, "/api/create-payment-intent", `{"amount":100}`); resp.StatusCode == http.StatusOK {
		t.Errorf("payment intent without Stripe should fail, got %d", resp.StatusCode)
	}
	if resp, _ := do(t, app, http.MethodGet, "/setup", ""); resp.StatusCode == http.StatusOK {
		t.Errorf("PayPal setup without credentials should fail, got %d", resp.StatusCode)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
