package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func TestOrderRepositoryCreateAssignsItems(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	order := models.Order{UserID: 1, Status: constants.OrderStatusConfirmed}
	items := []models.OrderItem{
		{ProductID: 10, Quantity: 2, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(9.90))},
		{ProductID: 11, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(4.50))},
	}
	if err := repo.Create(&order, items); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("expected order id assigned")
	}

	var stored []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Find(&stored).Error; err != nil {
		t.Fatalf("load items failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 items, got %d", len(stored))
	}
	for _, item := range stored {
		if item.OrderID != order.ID {
			t.Fatalf("item not linked to order: %+v", item)
		}
	}
}

func TestOrderRepositoryResolveReceiverEmailPrefersContact(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	user := models.User{Email: "buyer@example.com", PasswordHash: "hash", Status: constants.UserStatusActive}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	contact := models.Contact{UserID: user.ID, FirstName: "一", LastName: "钱", Email: "receiver@example.com"}
	if err := db.Create(&contact).Error; err != nil {
		t.Fatalf("create contact failed: %v", err)
	}
	order := models.Order{UserID: user.ID, ContactID: &contact.ID, Status: constants.OrderStatusConfirmed}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	email, err := repo.ResolveReceiverEmailByOrderID(order.ID)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if email != "receiver@example.com" {
		t.Fatalf("expected contact email, got %q", email)
	}
}

func TestOrderRepositoryResolveReceiverEmailFallsBackToUser(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	user := models.User{Email: "fallback@example.com", PasswordHash: "hash", Status: constants.UserStatusActive}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	// 未关联联系人的订单回退到买家邮箱
	order := models.Order{UserID: user.ID, Status: constants.OrderStatusConfirmed}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	email, err := repo.ResolveReceiverEmailByOrderID(order.ID)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if email != "fallback@example.com" {
		t.Fatalf("expected user email fallback, got %q", email)
	}
}

func TestOrderRepositoryClearContactRef(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	contact := models.Contact{UserID: 1, FirstName: "三", LastName: "吴", Email: "wu@example.com"}
	if err := db.Create(&contact).Error; err != nil {
		t.Fatalf("create contact failed: %v", err)
	}
	order := models.Order{UserID: 1, ContactID: &contact.ID, Status: constants.OrderStatusConfirmed}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := repo.ClearContactRef(contact.ID); err != nil {
		t.Fatalf("ClearContactRef error: %v", err)
	}
	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if reloaded.ContactID != nil {
		t.Fatalf("expected contact ref cleared")
	}
}

func TestOrderRepositoryListByUserPaginates(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)

	for i := 0; i < 5; i++ {
		if err := db.Create(&models.Order{UserID: 1, Status: constants.OrderStatusConfirmed}).Error; err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	orders, total, err := repo.ListByUser(OrderListFilter{UserID: 1, Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(orders) != 2 {
		t.Fatalf("expected page of 2, got %d", len(orders))
	}
}
