package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID             uint           `gorm:"primarykey" json:"id"`                              // 主键
	SupplierID     uint           `gorm:"not null;index" json:"supplier_id"`                 // 供应商ID
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`           // 标题
	Description    string         `gorm:"type:text" json:"description"`                      // 描述
	Price          Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 价格
	Quantity       int            `gorm:"not null;default:0" json:"quantity"`                // 库存数量
	ParametersJSON JSON           `gorm:"type:json" json:"parameters"`                       // 自由参数
	IsActive       bool           `gorm:"index" json:"is_active"`                            // 是否上架，默认值由服务层写入
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                           // 创建时间
	UpdatedAt      time.Time      `json:"updated_at"`                                        // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                    // 软删除时间

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"` // 关联供应商
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
