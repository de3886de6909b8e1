package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact 收货联系人表
type Contact struct {
	ID        uint           `gorm:"primarykey" json:"id"`                        // 主键
	UserID    uint           `gorm:"not null;index" json:"user_id"`               // 用户ID
	FirstName string         `gorm:"type:varchar(255);not null" json:"first_name"` // 名
	LastName  string         `gorm:"type:varchar(255);not null" json:"last_name"`  // 姓
	Email     string         `gorm:"type:varchar(255);not null" json:"email"`      // 邮箱
	Phone     string         `gorm:"type:varchar(20)" json:"phone"`                // 电话
	Address   string         `gorm:"type:text" json:"address"`                     // 地址
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                   // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除时间
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contacts"
}
