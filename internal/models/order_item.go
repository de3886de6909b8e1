package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表（价格为确认时刻快照，之后不再回读商品价格）
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                               // 主键
	OrderID   uint           `gorm:"index;not null" json:"order_id"`                     // 订单ID
	ProductID uint           `gorm:"index;not null" json:"product_id"`                   // 商品ID
	Quantity  int            `gorm:"not null" json:"quantity"`                           // 数量
	Price     Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 单价快照
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                            // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
