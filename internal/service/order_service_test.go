package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/queue"
	"github.com/eshop-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// recordingNotifier 记录投递的邮件任务载荷
type recordingNotifier struct {
	confirmPayloads []queue.OrderConfirmEmailPayload
	statusPayloads  []queue.OrderStatusEmailPayload
	enqueueErr      error
}

func (n *recordingNotifier) EnqueueOrderConfirmEmail(payload queue.OrderConfirmEmailPayload, _ ...asynq.Option) error {
	n.confirmPayloads = append(n.confirmPayloads, payload)
	return n.enqueueErr
}

func (n *recordingNotifier) EnqueueOrderStatusEmail(payload queue.OrderStatusEmailPayload, _ ...asynq.Option) error {
	n.statusPayloads = append(n.statusPayloads, payload)
	return n.enqueueErr
}

func setupOrderServiceTest(t *testing.T, name string) (*gorm.DB, *OrderService) {
	t.Helper()
	db, svc, _ := setupOrderServiceTestWithNotifier(t, name)
	return db, svc
}

func setupOrderServiceTestWithNotifier(t *testing.T, name string) (*gorm.DB, *OrderService, *recordingNotifier) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Supplier{}, &models.Product{}, &models.CartItem{}, &models.Contact{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	notifier := &recordingNotifier{}
	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewContactRepository(db),
		notifier,
	)
	return db, svc, notifier
}

func seedOrderFixtures(t *testing.T, db *gorm.DB, userID uint) (models.Product, models.Contact) {
	t.Helper()
	supplier := models.Supplier{Name: "测试供应商", IsActive: true}
	if err := db.Create(&supplier).Error; err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	product := models.Product{
		SupplierID: supplier.ID,
		Title:      "测试商品",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(19.90)),
		Quantity:   10,
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	contact := models.Contact{
		UserID:    userID,
		FirstName: "三",
		LastName:  "张",
		Email:     "zhangsan@example.com",
	}
	if err := db.Create(&contact).Error; err != nil {
		t.Fatalf("create contact failed: %v", err)
	}
	return product, contact
}

func TestConfirmOrderSnapshotsPriceAndClearsCart(t *testing.T) {
	db, svc := setupOrderServiceTest(t, "order_confirm_snapshot")
	const userID = 1
	product, contact := seedOrderFixtures(t, db, userID)

	if err := db.Create(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 3}).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	order, err := svc.ConfirmOrder(ConfirmOrderInput{UserID: userID, CartID: userID, ContactID: contact.ID})
	if err != nil {
		t.Fatalf("ConfirmOrder error: %v", err)
	}
	if order.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", order.Status)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(order.Items))
	}
	if order.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", order.Items[0].Quantity)
	}
	if !order.Items[0].Price.Decimal.Equal(decimal.NewFromFloat(19.90)) {
		t.Fatalf("expected snapshot price 19.90, got %s", order.Items[0].Price.String())
	}

	// 确认后购物车应被清空
	var remaining int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&remaining).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected empty cart after confirm, got %d items", remaining)
	}

	// 商品涨价不影响已确认订单的快照价
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("price", models.NewMoneyFromDecimal(decimal.NewFromFloat(29.90))).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	var item models.OrderItem
	if err := db.Where("order_id = ?", order.ID).First(&item).Error; err != nil {
		t.Fatalf("load order item failed: %v", err)
	}
	if !item.Price.Decimal.Equal(decimal.NewFromFloat(19.90)) {
		t.Fatalf("snapshot price changed after product update: %s", item.Price.String())
	}
}

func TestConfirmOrderEnqueuesConfirmEmail(t *testing.T) {
	db, svc, notifier := setupOrderServiceTestWithNotifier(t, "order_confirm_enqueue")
	const userID = 4
	product, contact := seedOrderFixtures(t, db, userID)

	if err := db.Create(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 2}).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	order, err := svc.ConfirmOrder(ConfirmOrderInput{UserID: userID, CartID: userID, ContactID: contact.ID})
	if err != nil {
		t.Fatalf("ConfirmOrder error: %v", err)
	}

	if len(notifier.confirmPayloads) != 1 {
		t.Fatalf("expected 1 confirm email task, got %d", len(notifier.confirmPayloads))
	}
	payload := notifier.confirmPayloads[0]
	if payload.OrderID != order.ID {
		t.Fatalf("expected payload order id %d, got %d", order.ID, payload.OrderID)
	}
	if payload.RecipientEmail != contact.Email {
		t.Fatalf("expected recipient %s, got %s", contact.Email, payload.RecipientEmail)
	}
}

func TestConfirmOrderSurvivesEnqueueFailure(t *testing.T) {
	db, svc, notifier := setupOrderServiceTestWithNotifier(t, "order_confirm_enqueue_fail")
	notifier.enqueueErr = errors.New("queue unavailable")
	const userID = 6
	product, contact := seedOrderFixtures(t, db, userID)

	if err := db.Create(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 1}).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	// 投递失败不影响已确认订单
	order, err := svc.ConfirmOrder(ConfirmOrderInput{UserID: userID, CartID: userID, ContactID: contact.ID})
	if err != nil {
		t.Fatalf("ConfirmOrder error: %v", err)
	}
	if len(notifier.confirmPayloads) != 1 {
		t.Fatalf("expected enqueue attempt, got %d", len(notifier.confirmPayloads))
	}

	var persisted models.Order
	if err := db.First(&persisted, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if persisted.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", persisted.Status)
	}
	var remaining int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&remaining).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected empty cart after confirm, got %d items", remaining)
	}
}

func TestConfirmOrderRejectsForeignCart(t *testing.T) {
	db, svc := setupOrderServiceTest(t, "order_confirm_foreign_cart")
	_, contact := seedOrderFixtures(t, db, 1)

	_, err := svc.ConfirmOrder(ConfirmOrderInput{UserID: 1, CartID: 2, ContactID: contact.ID})
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected cart not found, got: %v", err)
	}
}

func TestConfirmOrderRejectsForeignContact(t *testing.T) {
	db, svc := setupOrderServiceTest(t, "order_confirm_foreign_contact")
	_, contact := seedOrderFixtures(t, db, 2)
	if contact.UserID != 2 {
		t.Fatalf("fixture contact should belong to user 2")
	}

	_, err := svc.ConfirmOrder(ConfirmOrderInput{UserID: 1, CartID: 1, ContactID: contact.ID})
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected contact not found, got: %v", err)
	}
}

func TestConfirmOrderEmptyCartCreatesEmptyOrder(t *testing.T) {
	db, svc := setupOrderServiceTest(t, "order_confirm_empty_cart")
	const userID = 5
	_, contact := seedOrderFixtures(t, db, userID)

	order, err := svc.ConfirmOrder(ConfirmOrderInput{UserID: userID, CartID: userID, ContactID: contact.ID})
	if err != nil {
		t.Fatalf("ConfirmOrder error: %v", err)
	}
	if len(order.Items) != 0 {
		t.Fatalf("expected zero-item order, got %d items", len(order.Items))
	}
	if order.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", order.Status)
	}
}

func TestConfirmOrderRollsBackOnDanglingProduct(t *testing.T) {
	db, svc := setupOrderServiceTest(t, "order_confirm_rollback")
	const userID = 3
	product, contact := seedOrderFixtures(t, db, userID)

	if err := db.Create(&models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 1}).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	// 指向不存在商品的购物车项应导致整单回滚
	if err := db.Create(&models.CartItem{UserID: userID, ProductID: 9999, Quantity: 2}).Error; err != nil {
		t.Fatalf("create dangling cart item failed: %v", err)
	}

	_, err := svc.ConfirmOrder(ConfirmOrderInput{UserID: userID, CartID: userID, ContactID: contact.ID})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected product not found, got: %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no order after rollback, got %d", orderCount)
	}

	var cartCount int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart items failed: %v", err)
	}
	if cartCount != 2 {
		t.Fatalf("expected cart untouched after rollback, got %d items", cartCount)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db, svc := setupOrderServiceTest(t, "order_status_unknown")
	order := models.Order{UserID: 1, Status: constants.OrderStatusConfirmed}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	_, err := svc.UpdateStatus(order.ID, 1, "refunded")
	if !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected status invalid, got: %v", err)
	}
}

func TestUpdateStatusNormalizesAndPersists(t *testing.T) {
	db, svc, notifier := setupOrderServiceTestWithNotifier(t, "order_status_update")
	order := models.Order{UserID: 1, Status: constants.OrderStatusConfirmed}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	updated, err := svc.UpdateStatus(order.ID, 1, "  Shipped ")
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", updated.Status)
	}

	var persisted models.Order
	if err := db.First(&persisted, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if persisted.Status != constants.OrderStatusShipped {
		t.Fatalf("status not persisted, got %s", persisted.Status)
	}

	if len(notifier.statusPayloads) != 1 {
		t.Fatalf("expected 1 status email task, got %d", len(notifier.statusPayloads))
	}
	if p := notifier.statusPayloads[0]; p.OrderID != order.ID || p.Status != constants.OrderStatusShipped {
		t.Fatalf("unexpected status payload: %+v", p)
	}
}

func TestUpdateStatusHidesForeignOrder(t *testing.T) {
	db, svc := setupOrderServiceTest(t, "order_status_foreign")
	order := models.Order{UserID: 7, Status: constants.OrderStatusConfirmed}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	_, err := svc.UpdateStatus(order.ID, 8, constants.OrderStatusShipped)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected order not found, got: %v", err)
	}
}

func TestListOrdersByUserFiltersStatus(t *testing.T) {
	db, svc := setupOrderServiceTest(t, "order_list_filter")
	for _, status := range []string{
		constants.OrderStatusConfirmed,
		constants.OrderStatusConfirmed,
		constants.OrderStatusShipped,
	} {
		if err := db.Create(&models.Order{UserID: 1, Status: status}).Error; err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}
	if err := db.Create(&models.Order{UserID: 2, Status: constants.OrderStatusConfirmed}).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	orders, total, err := svc.ListOrdersByUser(repository.OrderListFilter{UserID: 1, Status: constants.OrderStatusConfirmed})
	if err != nil {
		t.Fatalf("ListOrdersByUser error: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("expected 2 confirmed orders, got total=%d len=%d", total, len(orders))
	}
	for _, o := range orders {
		if o.UserID != 1 || o.Status != constants.OrderStatusConfirmed {
			t.Fatalf("unexpected order in result: %+v", o)
		}
	}
}
