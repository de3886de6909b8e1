package service

import (
	"errors"
	"time"

	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/queue"
	"github.com/eshop-next/internal/repository"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

// OrderNotifier 订单邮件任务投递口，queue.Client 为生产实现
type OrderNotifier interface {
	EnqueueOrderConfirmEmail(payload queue.OrderConfirmEmailPayload, opts ...asynq.Option) error
	EnqueueOrderStatusEmail(payload queue.OrderStatusEmailPayload, opts ...asynq.Option) error
}

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	contactRepo repository.ContactRepository
	notifier    OrderNotifier
}

// NewOrderService 创建订单服务，notifier 可为 nil（不投递邮件任务）
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, contactRepo repository.ContactRepository, notifier OrderNotifier) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// ConfirmOrderInput 确认订单输入
type ConfirmOrderInput struct {
	UserID    uint
	CartID    uint
	ContactID uint
}

// ConfirmOrder 将购物车原子转换为已确认订单：
// 快照商品当前价格生成订单项、清空购物车，提交后异步推送确认邮件。
// 每个用户只有一个隐式购物车，购物车 ID 即买家用户 ID。
func (s *OrderService) ConfirmOrder(input ConfirmOrderInput) (*models.Order, error) {
	if input.UserID == 0 || input.CartID == 0 || input.ContactID == 0 {
		return nil, ErrInvalidInput
	}
	if input.CartID != input.UserID {
		// 非本人购物车与不存在不可区分
		return nil, ErrCartNotFound
	}

	contact, err := s.contactRepo.GetByIDAndUser(input.ContactID, input.UserID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	now := time.Now()
	order := &models.Order{
		UserID:    input.UserID,
		ContactID: &contact.ID,
		Status:    constants.OrderStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		// 行锁阻止同一购物车被并发确认两次
		cartItems, err := cartRepo.ListByUserForUpdate(input.UserID)
		if err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(cartItems))
		for _, cartItem := range cartItems {
			if cartItem.Product == nil || cartItem.Product.ID == 0 {
				return ErrProductNotFound
			}
			items = append(items, models.OrderItem{
				ProductID: cartItem.ProductID,
				Quantity:  cartItem.Quantity,
				Price:     cartItem.Product.Price,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}

		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		return cartRepo.ClearByUser(input.UserID)
	})
	if err != nil {
		logger.Errorw("order_confirm_tx_failed",
			"user_id", input.UserID,
			"contact_id", input.ContactID,
			"error", err,
		)
		if errors.Is(err, ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, ErrOrderConfirmFailed
	}

	// 投递失败只记录，不回滚已确认订单
	if s.notifier != nil {
		if err := s.notifier.EnqueueOrderConfirmEmail(queue.OrderConfirmEmailPayload{
			OrderID:        order.ID,
			RecipientEmail: contact.Email,
		}); err != nil {
			logger.Errorw("order_enqueue_confirm_email_failed",
				"order_id", order.ID,
				"recipient", contact.Email,
				"error", err,
			)
		}
	}

	full, err := s.orderRepo.GetByID(order.ID)
	if err == nil && full != nil {
		return full, nil
	}
	return order, nil
}

// UpdateStatus 更新用户订单状态
func (s *OrderService) UpdateStatus(orderID, userID uint, targetStatus string) (*models.Order, error) {
	if orderID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}

	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	target := NormalizeOrderStatus(targetStatus)
	if !IsValidOrderStatus(target) {
		return nil, ErrOrderStatusInvalid
	}
	if order.Status == target {
		return order, nil
	}
	if !CanTransitionOrderStatus(order.Status, target) {
		return nil, ErrOrderTransitionDenied
	}

	if err := s.orderRepo.UpdateStatus(order.ID, target); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	order.Status = target
	order.UpdatedAt = time.Now()

	if s.notifier != nil {
		if err := s.notifier.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
			OrderID: order.ID,
			Status:  target,
		}); err != nil {
			logger.Warnw("order_enqueue_status_email_failed",
				"order_id", order.ID,
				"status", target,
				"error", err,
			)
		}
	}
	return order, nil
}

// GetOrderByUser 获取用户订单详情
func (s *OrderService) GetOrderByUser(orderID, userID uint) (*models.Order, error) {
	if orderID == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrdersByUser 获取用户订单列表
func (s *OrderService) ListOrdersByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrInvalidInput
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize <= 0 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}
	return s.orderRepo.ListByUser(filter)
}
