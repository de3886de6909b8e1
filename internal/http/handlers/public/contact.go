package public

import (
	"errors"
	"strconv"

	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactRequest 联系人请求
type ContactRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// ListContacts 获取联系人列表
func (h *Handler) ListContacts(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	contacts, err := h.ContactService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.contact_fetch_failed", err)
		return
	}
	response.Success(c, contacts)
}

// CreateContact 创建联系人
func (h *Handler) CreateContact(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	contact, err := h.ContactService.Create(service.ContactInput{
		UserID:    uid,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}
	response.Success(c, contact)
}

// UpdateContact 更新联系人
func (h *Handler) UpdateContact(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	contactID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || contactID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	contact, err := h.ContactService.Update(uint(contactID), service.ContactInput{
		UserID:    uid,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}
	response.Success(c, contact)
}

// DeleteContact 删除联系人
func (h *Handler) DeleteContact(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	contactID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || contactID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.ContactService.Delete(uid, uint(contactID)); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			respondError(c, response.CodeNotFound, "error.contact_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.contact_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
