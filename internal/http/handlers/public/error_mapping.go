package public

import (
	"errors"

	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartQuantityInvalid, code: response.CodeBadRequest, key: "error.cart_quantity_invalid"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_unavailable"},
}

var contactErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrContactNotFound, code: response.CodeNotFound, key: "error.contact_not_found"},
}

var orderConfirmErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrCartNotFound, code: response.CodeNotFound, key: "error.cart_not_found"},
	{target: service.ErrContactNotFound, code: response.CodeNotFound, key: "error.contact_not_found"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, key: "error.product_not_found"},
}

var orderStatusErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, key: "error.order_status_invalid"},
	{target: service.ErrOrderTransitionDenied, code: response.CodeBadRequest, key: "error.order_transition_invalid"},
}

var productSaveErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrSupplierNotFound, code: response.CodeBadRequest, key: "error.supplier_not_found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductPriceInvalid, code: response.CodeBadRequest, key: "error.product_price_invalid"},
	{target: service.ErrProductStockInvalid, code: response.CodeBadRequest, key: "error.product_stock_invalid"},
}

var supplierSaveErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrSupplierNotFound, code: response.CodeNotFound, key: "error.supplier_not_found"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondContactError(c *gin.Context, err error) {
	respondWithMappedError(c, err, contactErrorRules, response.CodeInternal, "error.contact_save_failed")
}

func respondOrderConfirmError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderConfirmErrorRules, response.CodeInternal, "error.order_confirm_failed")
}

func respondOrderStatusError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderStatusErrorRules, response.CodeInternal, "error.order_update_failed")
}

func respondProductSaveError(c *gin.Context, err error) {
	respondWithMappedError(c, err, productSaveErrorRules, response.CodeInternal, "error.product_save_failed")
}

func respondSupplierSaveError(c *gin.Context, err error) {
	respondWithMappedError(c, err, supplierSaveErrorRules, response.CodeInternal, "error.supplier_save_failed")
}
