package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`                 // 主键
	UserID    uint           `gorm:"index;not null" json:"user_id"`        // 买家用户ID
	ContactID *uint          `gorm:"index" json:"contact_id,omitempty"`    // 联系人ID（联系人删除后置空）
	Status    string         `gorm:"index;not null;default:'pending'" json:"status"` // 订单状态
	CreatedAt time.Time      `gorm:"index" json:"created_at"`              // 创建时间（不可变）
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间

	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`                                  // 订单项
	Contact *Contact    `gorm:"foreignKey:ContactID;constraint:OnDelete:SET NULL" json:"contact,omitempty"` // 联系人快照引用
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
