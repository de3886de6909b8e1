package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/eshop-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Supplier{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartRepository(db), db
}

func seedCartRepoProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	supplier := models.Supplier{Name: "仓库测试供应商", IsActive: true}
	if err := db.Create(&supplier).Error; err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	product := models.Product{
		SupplierID: supplier.ID,
		Title:      "仓库测试商品",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		Quantity:   5,
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartRepositoryUpsertKeepsSingleRow(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := seedCartRepoProduct(t, db)

	first := models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1}
	if err := repo.Upsert(&first); err != nil {
		t.Fatalf("first upsert error: %v", err)
	}
	second := models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 7}
	if err := repo.Upsert(&second); err != nil {
		t.Fatalf("second upsert error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected existing row reused, got %d vs %d", second.ID, first.ID)
	}

	var items []models.CartItem
	if err := db.Where("user_id = ?", 1).Find(&items).Error; err != nil {
		t.Fatalf("load items failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 7 {
		t.Fatalf("expected single row with quantity 7, got %+v", items)
	}
}

func TestCartRepositoryListByUserPreloadsProduct(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := seedCartRepoProduct(t, db)

	if err := db.Create(&models.CartItem{UserID: 2, ProductID: product.ID, Quantity: 3}).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	items, err := repo.ListByUser(2)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Product == nil || items[0].Product.ID != product.ID {
		t.Fatalf("expected product preloaded, got %+v", items[0].Product)
	}
}

func TestCartRepositoryClearByUserScopes(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := seedCartRepoProduct(t, db)

	if err := db.Create(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1}).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	if err := db.Create(&models.CartItem{UserID: 2, ProductID: product.ID, Quantity: 2}).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	if err := repo.ClearByUser(1); err != nil {
		t.Fatalf("ClearByUser error: %v", err)
	}

	var user1Count, user2Count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&user1Count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", 2).Count(&user2Count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if user1Count != 0 || user2Count != 1 {
		t.Fatalf("expected only user 1 cart cleared, got %d/%d", user1Count, user2Count)
	}
}
