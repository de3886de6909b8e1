package service

import "errors"

// 业务错误定义，由 handler 层统一映射为响应码
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserDisabled          = errors.New("user disabled")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrPasswordTooWeak       = errors.New("password too weak")
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrProductNotAvailable   = errors.New("product not available")
	ErrProductPriceInvalid   = errors.New("product price invalid")
	ErrProductStockInvalid   = errors.New("product quantity invalid")
	ErrCartItemNotFound      = errors.New("cart item not found")
	ErrCartQuantityInvalid   = errors.New("cart quantity invalid")
	ErrCartNotFound          = errors.New("cart not found")
	ErrContactNotFound       = errors.New("contact not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderStatusInvalid    = errors.New("order status invalid")
	ErrOrderTransitionDenied = errors.New("order status transition denied")
	ErrOrderConfirmFailed    = errors.New("order confirm failed")
	ErrOrderFetchFailed      = errors.New("order fetch failed")
	ErrOrderUpdateFailed     = errors.New("order update failed")
	ErrEmailServiceDisabled  = errors.New("email service disabled")
	ErrEmailNotConfigured    = errors.New("email service not configured")
	ErrInvalidEmail          = errors.New("invalid email address")
)
