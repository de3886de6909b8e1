package models

import (
	"time"

	"gorm.io/gorm"
)

// Supplier 供应商表
type Supplier struct {
	ID        uint           `gorm:"primarykey" json:"id"`                // 主键
	Name      string         `gorm:"type:varchar(255);not null" json:"name"` // 名称
	IsActive  bool           `gorm:"index" json:"is_active"`              // 是否启用，默认值由服务层写入
	CreatedAt time.Time      `gorm:"index" json:"created_at"`             // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                          // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                      // 软删除时间

	Products []Product `gorm:"foreignKey:SupplierID" json:"products,omitempty"` // 关联商品
}

// TableName 指定表名
func (Supplier) TableName() string {
	return "suppliers"
}
