package service

import (
	"strings"

	"github.com/eshop-next/internal/constants"
)

// orderStatuses 合法订单状态集合
var orderStatuses = map[string]bool{
	constants.OrderStatusPending:   true,
	constants.OrderStatusConfirmed: true,
	constants.OrderStatusShipped:   true,
	constants.OrderStatusDelivered: true,
	constants.OrderStatusCanceled:  true,
}

// allowedTransitions 状态迁移表。当前任意两个合法状态间均可迁移，
// 显式列出以便后续收紧（例如禁止 delivered -> pending）。
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusPending:   true,
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusShipped:   true,
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCanceled:  true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusPending:   true,
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusShipped:   true,
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCanceled:  true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusPending:   true,
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusShipped:   true,
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCanceled:  true,
	},
	constants.OrderStatusDelivered: {
		constants.OrderStatusPending:   true,
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusShipped:   true,
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCanceled:  true,
	},
	constants.OrderStatusCanceled: {
		constants.OrderStatusPending:   true,
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusShipped:   true,
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCanceled:  true,
	},
}

// NormalizeOrderStatus 归一化状态值
func NormalizeOrderStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// IsValidOrderStatus 判断是否为合法状态
func IsValidOrderStatus(status string) bool {
	return orderStatuses[NormalizeOrderStatus(status)]
}

// CanTransitionOrderStatus 判断状态迁移是否被允许
func CanTransitionOrderStatus(from, to string) bool {
	targets, ok := allowedTransitions[NormalizeOrderStatus(from)]
	if !ok {
		return false
	}
	return targets[NormalizeOrderStatus(to)]
}
