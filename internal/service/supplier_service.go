package service

import (
	"strings"

	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"

	"gorm.io/gorm"
)

// SupplierInput 供应商输入
type SupplierInput struct {
	Name     string
	IsActive *bool
}

// SupplierService 供应商服务
type SupplierService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewSupplierService 创建供应商服务
func NewSupplierService(supplierRepo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// List 供应商列表
func (s *SupplierService) List(filter repository.SupplierListFilter) ([]models.Supplier, int64, error) {
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize <= 0 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}
	return s.supplierRepo.List(filter)
}

// GetByID 获取供应商详情
func (s *SupplierService) GetByID(id uint) (*models.Supplier, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

// Create 创建供应商
func (s *SupplierService) Create(input SupplierInput) (*models.Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	supplier := &models.Supplier{
		Name:     name,
		IsActive: true,
	}
	if input.IsActive != nil {
		supplier.IsActive = *input.IsActive
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Update 更新供应商
func (s *SupplierService) Update(id uint, input SupplierInput) (*models.Supplier, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	supplier.Name = name
	if input.IsActive != nil {
		supplier.IsActive = *input.IsActive
	}
	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete 删除供应商并级联删除名下商品
func (s *SupplierService) Delete(id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return ErrSupplierNotFound
	}
	return models.DB.Transaction(func(tx *gorm.DB) error {
		productRepo := s.productRepo.WithTx(tx)
		supplierRepo := s.supplierRepo.WithTx(tx)

		if err := productRepo.DeleteBySupplier(id); err != nil {
			return err
		}
		return supplierRepo.Delete(id)
	})
}
