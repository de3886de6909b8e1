package repository

import (
	"errors"

	"github.com/eshop-next/internal/models"

	"gorm.io/gorm"
)

// ContactRepository 联系人数据访问接口
type ContactRepository interface {
	ListByUser(userID uint) ([]models.Contact, error)
	GetByIDAndUser(id, userID uint) (*models.Contact, error)
	Create(contact *models.Contact) error
	Update(contact *models.Contact) error
	DeleteByIDAndUser(id, userID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormContactRepository
}

// GormContactRepository GORM 实现
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系人仓库
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// WithTx 绑定事务
func (r *GormContactRepository) WithTx(tx *gorm.DB) *GormContactRepository {
	if tx == nil {
		return r
	}
	return &GormContactRepository{db: tx}
}

// ListByUser 获取用户联系人列表
func (r *GormContactRepository) ListByUser(userID uint) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetByIDAndUser 获取用户联系人
func (r *GormContactRepository) GetByIDAndUser(id, userID uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

// Create 创建联系人
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// Update 更新联系人
func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// DeleteByIDAndUser 删除联系人，返回受影响行数
func (r *GormContactRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Contact{})
	return result.RowsAffected, result.Error
}
