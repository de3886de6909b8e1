package repository

import (
	"github.com/eshop-next/internal/constants"

	"gorm.io/gorm"
)

// applyPagination 应用分页参数，页码从 1 起，单页上限为 constants.MaxPageSize。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
