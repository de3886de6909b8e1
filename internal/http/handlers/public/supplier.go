package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/repository"
	"github.com/eshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SupplierRequest 供应商写入请求
type SupplierRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// GetSuppliers 获取供应商列表
func (h *Handler) GetSuppliers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	search := strings.TrimSpace(c.Query("search"))

	suppliers, total, err := h.SupplierService.List(repository.SupplierListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     search,
		OnlyActive: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.supplier_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, suppliers, response.NewPagination(page, pageSize, total))
}

// GetSupplier 获取供应商详情
func (h *Handler) GetSupplier(c *gin.Context) {
	supplierID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || supplierID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	supplier, err := h.SupplierService.GetByID(uint(supplierID))
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			respondError(c, response.CodeNotFound, "error.supplier_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.supplier_fetch_failed", err)
		return
	}
	response.Success(c, supplier)
}

// CreateSupplier 创建供应商
func (h *Handler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	supplier, err := h.SupplierService.Create(service.SupplierInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondSupplierSaveError(c, err)
		return
	}
	response.Success(c, supplier)
}

// UpdateSupplier 更新供应商
func (h *Handler) UpdateSupplier(c *gin.Context) {
	supplierID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || supplierID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	supplier, err := h.SupplierService.Update(uint(supplierID), service.SupplierInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondSupplierSaveError(c, err)
		return
	}
	response.Success(c, supplier)
}

// DeleteSupplier 删除供应商（连带下架其商品）
func (h *Handler) DeleteSupplier(c *gin.Context) {
	supplierID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || supplierID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.SupplierService.Delete(uint(supplierID)); err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			respondError(c, response.CodeNotFound, "error.supplier_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.supplier_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
