package handlers

import (
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/infrastructure/websocket"
)

// Services contains all the services needed for handlers
type Services struct {
	CategoryService  services.CategoryService
	CarService       services.CarService
	ProductService   services.ProductService
	CartService      services.CartService
	OrderService     services.OrderService
	ContactService   services.ContactService
	AdminAuthService services.AdminAuthService
	PaymentService   services.PaymentService
	WebSocketManager *websocket.Manager

	CookieName    string
	CookieSecure  bool
	SessionMaxAge int // seconds
	MaxUploadSize int64
}

// Handlers contains all HTTP handlers
type Handlers struct {
	CategoryHandler  *CategoryHandler
	CarHandler       *CarHandler
	ProductHandler   *ProductHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
	ContactHandler   *ContactHandler
	AuthHandler      *AuthHandler
	AdminHandler     *AdminHandler
	PaymentHandler   *PaymentHandler
	WebSocketHandler *WebSocketHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		CategoryHandler:  NewCategoryHandler(s.CategoryService),
		CarHandler:       NewCarHandler(s.CarService),
		ProductHandler:   NewProductHandler(s.ProductService),
		CartHandler:      NewCartHandler(s.CartService),
		OrderHandler:     NewOrderHandler(s.OrderService),
		ContactHandler:   NewContactHandler(s.ContactService),
		AuthHandler:      NewAuthHandler(s.AdminAuthService, CookieOptions{Name: s.CookieName, Secure: s.CookieSecure, MaxAge: s.SessionMaxAge}),
		AdminHandler:     NewAdminHandler(s.OrderService, s.ContactService, s.ProductService, s.MaxUploadSize),
		PaymentHandler:   NewPaymentHandler(s.PaymentService),
		WebSocketHandler: NewWebSocketHandler(s.WebSocketManager),
	}
}
