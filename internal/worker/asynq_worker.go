package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/provider"
	"github.com/eshop-next/internal/queue"
	"github.com/eshop-next/internal/service"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(container *provider.Container) *Consumer {
	return &Consumer{Container: container}
}

// Register 注册任务处理函数
func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TaskOrderConfirmEmail, c.handleOrderConfirmEmail)
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
}

func (c *Consumer) handleOrderConfirmEmail(ctx context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil {
		logger.Debugw("worker_container_missing", "task", queue.TaskOrderConfirmEmail)
		return nil
	}

	var payload queue.OrderConfirmEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirm_email_payload_invalid", "error", err)
		return nil
	}
	if payload.OrderID == 0 {
		logger.Warnw("worker_order_confirm_email_order_id_missing")
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Errorw("worker_order_confirm_email_load_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Warnw("worker_order_confirm_email_order_missing", "order_id", payload.OrderID)
		return nil
	}

	recipient := strings.TrimSpace(payload.RecipientEmail)
	if recipient == "" {
		recipient, err = c.OrderRepo.ResolveReceiverEmailByOrderID(order.ID)
		if err != nil {
			logger.Errorw("worker_order_confirm_email_resolve_receiver_failed", "order_id", order.ID, "error", err)
			return err
		}
	}
	if recipient == "" {
		logger.Warnw("worker_order_confirm_email_receiver_missing", "order_id", order.ID)
		return nil
	}

	total := decimal.Zero
	itemCount := 0
	for _, item := range order.Items {
		itemCount += item.Quantity
		total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	input := service.OrderConfirmEmailInput{
		OrderID:     order.ID,
		ItemCount:   itemCount,
		TotalAmount: models.NewMoneyFromDecimal(total),
	}

	if err := c.EmailService.SendOrderConfirmEmail(recipient, input, c.resolveOrderLocale(order.UserID)); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailNotConfigured) {
			logger.Debugw("worker_order_confirm_email_skipped", "order_id", order.ID, "reason", err)
			return nil
		}
		logger.Errorw("worker_order_confirm_email_send_failed", "order_id", order.ID, "error", err)
		return err
	}

	logger.Infow("worker_order_confirm_email_sent", "order_id", order.ID, "receiver", recipient)
	return nil
}

func (c *Consumer) handleOrderStatusEmail(ctx context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil {
		logger.Debugw("worker_container_missing", "task", queue.TaskOrderStatusEmail)
		return nil
	}

	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_payload_invalid", "error", err)
		return nil
	}
	if payload.OrderID == 0 || strings.TrimSpace(payload.Status) == "" {
		logger.Warnw("worker_order_status_email_payload_incomplete", "order_id", payload.OrderID, "status", payload.Status)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Errorw("worker_order_status_email_load_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Warnw("worker_order_status_email_order_missing", "order_id", payload.OrderID)
		return nil
	}

	recipient, err := c.OrderRepo.ResolveReceiverEmailByOrderID(order.ID)
	if err != nil {
		logger.Errorw("worker_order_status_email_resolve_receiver_failed", "order_id", order.ID, "error", err)
		return err
	}
	if recipient == "" {
		logger.Warnw("worker_order_status_email_receiver_missing", "order_id", order.ID)
		return nil
	}

	if err := c.EmailService.SendOrderStatusEmail(recipient, order.ID, payload.Status, c.resolveOrderLocale(order.UserID)); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailNotConfigured) {
			logger.Debugw("worker_order_status_email_skipped", "order_id", order.ID, "reason", err)
			return nil
		}
		logger.Errorw("worker_order_status_email_send_failed", "order_id", order.ID, "error", err)
		return err
	}

	logger.Infow("worker_order_status_email_sent", "order_id", order.ID, "status", payload.Status, "receiver", recipient)
	return nil
}

func (c *Consumer) resolveOrderLocale(userID uint) string {
	user, err := c.UserRepo.GetByID(userID)
	if err != nil || user == nil {
		return ""
	}
	return user.Locale
}
