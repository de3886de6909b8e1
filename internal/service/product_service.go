package service

import (
	"strings"

	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"
)

// ProductInput 商品输入
type ProductInput struct {
	SupplierID  uint
	Title       string
	Description string
	Price       models.Money
	Quantity    int
	Parameters  models.JSON
	IsActive    *bool
}

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize <= 0 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}
	return s.productRepo.List(filter)
}

// GetByID 获取商品详情
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validateProductInput(input); err != nil {
		return nil, err
	}
	product := &models.Product{
		SupplierID:     input.SupplierID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Price:          input.Price,
		Quantity:       input.Quantity,
		ParametersJSON: input.Parameters,
		IsActive:       true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	if err := s.validateProductInput(input); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	product.SupplierID = input.SupplierID
	product.Title = strings.TrimSpace(input.Title)
	product.Description = input.Description
	product.Price = input.Price
	product.Quantity = input.Quantity
	product.ParametersJSON = input.Parameters
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

func (s *ProductService) validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Title) == "" || input.SupplierID == 0 {
		return ErrInvalidInput
	}
	if input.Price.IsNegative() {
		return ErrProductPriceInvalid
	}
	if input.Quantity < 0 {
		return ErrProductStockInvalid
	}
	supplier, err := s.supplierRepo.GetByID(input.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return ErrSupplierNotFound
	}
	return nil
}
