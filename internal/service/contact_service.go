package service

import (
	"net/mail"
	"strings"
	"time"

	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"

	"gorm.io/gorm"
)

// ContactInput 联系人输入
type ContactInput struct {
	UserID    uint
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// ContactService 联系人服务
type ContactService struct {
	contactRepo repository.ContactRepository
	orderRepo   repository.OrderRepository
}

// NewContactService 创建联系人服务
func NewContactService(contactRepo repository.ContactRepository, orderRepo repository.OrderRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		orderRepo:   orderRepo,
	}
}

// ListByUser 获取用户联系人列表
func (s *ContactService) ListByUser(userID uint) ([]models.Contact, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.contactRepo.ListByUser(userID)
}

// Create 创建联系人
func (s *ContactService) Create(input ContactInput) (*models.Contact, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}
	now := time.Now()
	contact := &models.Contact{
		UserID:    input.UserID,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Address:   strings.TrimSpace(input.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Update 更新联系人
func (s *ContactService) Update(contactID uint, input ContactInput) (*models.Contact, error) {
	if contactID == 0 {
		return nil, ErrInvalidInput
	}
	if err := validateContactInput(input); err != nil {
		return nil, err
	}
	contact, err := s.contactRepo.GetByIDAndUser(contactID, input.UserID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	contact.FirstName = strings.TrimSpace(input.FirstName)
	contact.LastName = strings.TrimSpace(input.LastName)
	contact.Email = strings.TrimSpace(input.Email)
	contact.Phone = strings.TrimSpace(input.Phone)
	contact.Address = strings.TrimSpace(input.Address)
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete 删除联系人，引用该联系人的订单将解除关联
func (s *ContactService) Delete(userID, contactID uint) error {
	if userID == 0 || contactID == 0 {
		return ErrInvalidInput
	}
	return models.DB.Transaction(func(tx *gorm.DB) error {
		contactRepo := s.contactRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		affected, err := contactRepo.DeleteByIDAndUser(contactID, userID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrContactNotFound
		}
		return orderRepo.ClearContactRef(contactID)
	})
}

func validateContactInput(input ContactInput) error {
	if input.UserID == 0 {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return ErrInvalidInput
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
