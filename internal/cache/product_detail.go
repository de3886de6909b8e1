package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/eshop-next/internal/models"
)

const productDetailCacheTTL = 5 * time.Minute

func productDetailKey(productID uint) string {
	return fmt.Sprintf("product:detail:%d", productID)
}

// GetProductDetail 读取商品详情缓存，未命中返回 nil
func GetProductDetail(ctx context.Context, productID uint) (*models.Product, error) {
	var product models.Product
	hit, err := GetJSON(ctx, productDetailKey(productID), &product)
	if err != nil || !hit {
		return nil, err
	}
	return &product, nil
}

// SetProductDetail 写入商品详情缓存
func SetProductDetail(ctx context.Context, product *models.Product) error {
	if product == nil || product.ID == 0 {
		return nil
	}
	return SetJSON(ctx, productDetailKey(product.ID), product, productDetailCacheTTL)
}

// DelProductDetail 删除商品详情缓存
func DelProductDetail(ctx context.Context, productID uint) error {
	return Del(ctx, productDetailKey(productID))
}
