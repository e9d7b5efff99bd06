package services

import "errors"

// Sentinel errors returned by the storefront services. Handlers map them to HTTP statuses.
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrBrandNotFound      = errors.New("car brand not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminInactive      = errors.New("admin account is inactive")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnsupportedImage   = errors.New("unsupported image type")
)
