package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/repositories"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/cart"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/metrics"
)

// OrderDeps groups the optional collaborators of the order service.
// Nil mailer, notifier or publisher simply disables that side effect.
type OrderDeps struct {
	Mailer    ports.OrderMailerPort
	Notifier  ports.NotifierPort
	Publisher ports.OrderEventPublisherPort
	Exporter  ports.OrderExporterPort
	Metrics   *metrics.AppMetrics
	Shipping  cart.ShippingPolicy
}

type OrderServiceImpl struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	mailer      ports.OrderMailerPort
	notifier    ports.NotifierPort
	publisher   ports.OrderEventPublisherPort
	exporter    ports.OrderExporterPort
	metrics     *metrics.AppMetrics
	shipping    cart.ShippingPolicy
}

func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, deps OrderDeps) services.OrderService {
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewNoop()
	}
	if deps.Shipping.Fee.IsZero() && deps.Shipping.FreeAbove.IsZero() {
		deps.Shipping = cart.DefaultShippingPolicy()
	}
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		mailer:      deps.Mailer,
		notifier:    deps.Notifier,
		publisher:   deps.Publisher,
		exporter:    deps.Exporter,
		metrics:     deps.Metrics,
		shipping:    deps.Shipping,
	}
}

// Quote prices the lines at the current catalog prices; client-side prices are ignored.
func (s *OrderServiceImpl) Quote(ctx context.Context, items []dto.OrderItemInput) (cart.Quote, error) {
	if len(items) == 0 {
		return cart.Quote{}, services.ErrEmptyOrder
	}

	products, err := s.loadProducts(ctx, items)
	if err != nil {
		return cart.Quote{}, err
	}

	pending := cart.New("")
	for _, it := range items {
		p := products[it.ProductID]
		pending.AddQuantity(cart.Item{ProductID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL}, it.Quantity)
	}
	return s.shipping.Quote(pending.Items), nil
}

func (s *OrderServiceImpl) Create(ctx context.Context, req *dto.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, services.ErrEmptyOrder
	}
	if len(req.MoneyErrors()) > 0 {
		return nil, services.ErrInvalidAmount
	}
	if _, err := s.loadProducts(ctx, req.Items); err != nil {
		return nil, err
	}

	// The stored total is the one the customer confirmed. A disagreement with the
	// server-side computation is only reported.
	computed := s.shipping.Quote(req.Lines()).Total
	if !computed.Equal(req.Order.Total) {
		logger.WarnContext(ctx, "Order total differs from computed total",
			"submitted", req.Order.Total.StringFixed(2),
			"computed", computed.StringFixed(2),
		)
	}

	order, items := dto.CreateOrderRequestToOrder(req)
	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		logger.ErrorContext(ctx, "Failed to create order", "email", order.Email, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Order created",
		"order_id", order.ID,
		"total", order.Total.StringFixed(2),
		"payment_method", order.PaymentMethod,
		"items", len(items),
	)

	created, err := s.orderRepo.GetWithItems(ctx, order.ID)
	if err != nil {
		logger.WarnContext(ctx, "Failed to reload created order", "order_id", order.ID, "error", err)
		order.Items = items
		created = order
	}

	total, _ := created.Total.Float64()
	s.metrics.RecordOrder(ctx, string(created.PaymentMethod), total)

	s.afterCreate(ctx, created)
	return created, nil
}

// afterCreate runs the post-commit side effects. None of them can fail the order.
func (s *OrderServiceImpl) afterCreate(ctx context.Context, order *models.Order) {
	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(ctx, order); err != nil {
			logger.WarnContext(ctx, "Order confirmation email failed", "order_id", order.ID, "error", err)
		}
	}
	if s.notifier != nil && s.notifier.IsEnabled() {
		if err := s.notifier.SendNewOrderAlert(ctx, order); err != nil {
			logger.WarnContext(ctx, "Staff order alert failed", "order_id", order.ID, "error", err)
		}
	}
	s.publish(ctx, ports.OrderEventCreated, order)
}

func (s *OrderServiceImpl) publish(ctx context.Context, eventType string, order *models.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, NewOrderEvent(eventType, order)); err != nil {
		logger.WarnContext(ctx, "Failed to publish order event", "order_id", order.ID, "type", eventType, "error", err)
	}
}

func (s *OrderServiceImpl) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrOrderNotFound
		}
		logger.ErrorContext(ctx, "Failed to get order", "order_id", id, "error", err)
		return nil, err
	}
	return order, nil
}

func (s *OrderServiceImpl) ListAll(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orderRepo.ListWithItems(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list orders", "error", err)
		return nil, err
	}
	return orders, nil
}

func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, services.ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrOrderNotFound
		}
		logger.ErrorContext(ctx, "Failed to update order status", "order_id", id, "error", err)
		return nil, err
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Order status updated", "order_id", id, "status", status)
	s.publish(ctx, ports.OrderEventStatusChanged, order)
	return order, nil
}

func (s *OrderServiceImpl) Export(ctx context.Context, w io.Writer) (string, string, error) {
	if s.exporter == nil {
		return "", "", fmt.Errorf("order export: %w", ports.ErrExportUnavailable)
	}

	orders, err := s.ListAll(ctx)
	if err != nil {
		return "", "", err
	}
	if err := s.exporter.ExportOrders(orders, w); err != nil {
		logger.ErrorContext(ctx, "Failed to export orders", "error", err)
		return "", "", err
	}

	logger.InfoContext(ctx, "Orders exported", "count", len(orders), "format", s.exporter.FileExtension())
	return s.exporter.FileExtension(), s.exporter.ContentType(), nil
}

// loadProducts checks that every referenced product exists.
func (s *OrderServiceImpl) loadProducts(ctx context.Context, items []dto.OrderItemInput) (map[uint]*models.Product, error) {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load order products", "error", err)
		return nil, err
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			logger.WarnContext(ctx, "Order references unknown product", "product_id", id)
			return nil, fmt.Errorf("%w: %d", services.ErrProductNotFound, id)
		}
	}
	return products, nil
}

// NewOrderEvent builds the live-feed event for an order.
func NewOrderEvent(eventType string, order *models.Order) *ports.OrderEvent {
	count := 0
	for _, it := range order.Items {
		count += it.Quantity
	}
	return &ports.OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		Status:        string(order.Status),
		Total:         order.Total.StringFixed(2),
		CustomerName:  order.FirstName + " " + order.LastName,
		City:          order.City,
		PaymentMethod: string(order.PaymentMethod),
		ItemCount:     count,
		OccurredAt:    time.Now().Unix(),
	}
}
