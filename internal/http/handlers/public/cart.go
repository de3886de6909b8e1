package public

import (
	"strconv"

	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求，数量缺省为 1
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// CartProduct 购物车商品摘要
type CartProduct struct {
	ID       uint         `json:"id"`
	Title    string       `json:"title"`
	Price    models.Money `json:"price"`
	IsActive bool         `json:"is_active"`
}

// CartItemResponse 购物车项响应
type CartItemResponse struct {
	ID        uint         `json:"id"`
	ProductID uint         `json:"product_id"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	Subtotal  models.Money `json:"subtotal"`
	Product   CartProduct  `json:"product"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}

	respItems := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		respItems = append(respItems, CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
			Product: CartProduct{
				ID:       item.Product.ID,
				Title:    item.Product.Title,
				Price:    item.Product.Price,
				IsActive: item.Product.IsActive,
			},
		})
	}

	// 购物车 ID 即用户 ID，每个用户仅有一个隐式购物车
	response.Success(c, gin.H{"cart_id": uid, "items": respItems})
}

// UpsertCartItem 添加/更新购物车项
func (h *Handler) UpsertCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	item, err := h.CartService.UpsertItem(service.UpsertCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Quantity:  quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{
		"id":         item.ID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.CartService.RemoveItem(uid, uint(itemID)); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
