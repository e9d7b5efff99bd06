package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/pkg/cart"
)

// OrderDetails mirrors the checkout wizard: shipping address, payment method
// and the total the customer saw on the review step.
type OrderDetails struct {
	FirstName     string          `json:"firstName" validate:"required,max=100"`
	LastName      string          `json:"lastName" validate:"required,max=100"`
	Email         string          `json:"email" validate:"required,looseemail,max=255"`
	Phone         string          `json:"phone" validate:"required,min=8,max=50"`
	Address       string          `json:"address" validate:"required,min=5"`
	City          string          `json:"city" validate:"required,max=100"`
	PostalCode    string          `json:"postalCode" validate:"required,postalcode"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,paymentmethod"`
	Total         decimal.Decimal `json:"total"`
}

type OrderItemInput struct {
	ProductID uint            `json:"productId" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gte=1"`
	Price     decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	Order OrderDetails     `json:"order" validate:"required"`
	Items []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// Normalize trims the free-text fields so whitespace-only input fails "required".
func (r *CreateOrderRequest) Normalize() {
	o := &r.Order
	o.FirstName = trim(o.FirstName)
	o.LastName = trim(o.LastName)
	o.Email = trim(o.Email)
	o.Phone = trim(o.Phone)
	o.Address = trim(o.Address)
	o.City = trim(o.City)
	o.PostalCode = trim(o.PostalCode)
	o.PaymentMethod = trim(o.PaymentMethod)
}

// MoneyErrors reports negative amounts, which struct tags cannot express for decimals.
func (r *CreateOrderRequest) MoneyErrors() map[string]string {
	errs := make(map[string]string)
	if r.Order.Total.IsNegative() {
		errs["order.total"] = "must not be negative"
	}
	for i, it := range r.Items {
		if it.Price.IsNegative() {
			errs["items["+itoa(i)+"].price"] = "must not be negative"
		}
	}
	return errs
}

// Lines folds the submitted items into cart lines. Repeated product ids are
// merged into one line carrying the first price snapshot.
func (r *CreateOrderRequest) Lines() []cart.Item {
	c := cart.New("")
	for _, it := range r.Items {
		c.AddQuantity(cart.Item{ProductID: it.ProductID, Price: it.Price}, it.Quantity)
	}
	return c.Items
}

type CheckoutQuoteRequest struct {
	Items []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type CheckoutQuoteResponse struct {
	Subtotal   string `json:"subtotal"`
	Shipping   string `json:"shipping"`
	Total      string `json:"total"`
	TotalItems int    `json:"totalItems"`
}

func QuoteToResponse(q cart.Quote) *CheckoutQuoteResponse {
	return &CheckoutQuoteResponse{
		Subtotal:   FormatMoney(q.Subtotal),
		Shipping:   FormatMoney(q.Shipping),
		Total:      FormatMoney(q.Total),
		TotalItems: q.Items,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,orderstatus"`
}

type OrderItemResponse struct {
	ID        uint             `json:"id"`
	OrderID   uint             `json:"orderId"`
	ProductID uint             `json:"productId"`
	Quantity  int              `json:"quantity"`
	Price     string           `json:"price"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	FirstName     string              `json:"firstName"`
	LastName      string              `json:"lastName"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	PostalCode    string              `json:"postalCode"`
	PaymentMethod string              `json:"paymentMethod"`
	Total         string              `json:"total"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []OrderItemResponse `json:"items"`
}

func OrderToOrderResponse(o *models.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	resp := &OrderResponse{
		ID:            o.ID,
		FirstName:     o.FirstName,
		LastName:      o.LastName,
		Email:         o.Email,
		Phone:         o.Phone,
		Address:       o.Address,
		City:          o.City,
		PostalCode:    o.PostalCode,
		PaymentMethod: string(o.PaymentMethod),
		Total:         FormatMoney(o.Total),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		Items:         make([]OrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     FormatMoney(it.Price),
			Product:   ProductToProductResponse(it.Product),
		})
	}
	return resp
}

func OrdersToOrderResponses(orders []*models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *OrderToOrderResponse(o))
	}
	return out
}

// CreateOrderRequestToOrder builds the order and its item snapshots; prices are copied verbatim.
func CreateOrderRequestToOrder(req *CreateOrderRequest) (*models.Order, []models.OrderItem) {
	o := req.Order
	order := &models.Order{
		FirstName:     o.FirstName,
		LastName:      o.LastName,
		Email:         o.Email,
		Phone:         o.Phone,
		Address:       o.Address,
		City:          o.City,
		PostalCode:    o.PostalCode,
		PaymentMethod: models.PaymentMethod(o.PaymentMethod),
		Total:         o.Total,
		Status:        models.OrderStatusPending,
	}
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return order, items
}
