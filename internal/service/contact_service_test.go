package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupContactServiceTest(t *testing.T, name string) (*gorm.DB, *ContactService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Contact{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	svc := NewContactService(repository.NewContactRepository(db), repository.NewOrderRepository(db))
	return db, svc
}

func TestCreateContactValidatesInput(t *testing.T) {
	_, svc := setupContactServiceTest(t, "contact_create_validate")

	cases := []struct {
		name  string
		input ContactInput
		want  error
	}{
		{
			name:  "missing first name",
			input: ContactInput{UserID: 1, LastName: "王", Email: "wang@example.com"},
			want:  ErrInvalidInput,
		},
		{
			name:  "missing last name",
			input: ContactInput{UserID: 1, FirstName: "五", Email: "wang@example.com"},
			want:  ErrInvalidInput,
		},
		{
			name:  "bad email",
			input: ContactInput{UserID: 1, FirstName: "五", LastName: "王", Email: "not-an-email"},
			want:  ErrInvalidEmail,
		},
	}
	for _, tc := range cases {
		if _, err := svc.Create(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestCreateContactTrimsFields(t *testing.T) {
	_, svc := setupContactServiceTest(t, "contact_create_trim")

	contact, err := svc.Create(ContactInput{
		UserID:    1,
		FirstName: " 四 ",
		LastName:  " 李 ",
		Email:     " lisi@example.com ",
		Phone:     " 13800000000 ",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if contact.FirstName != "四" || contact.LastName != "李" {
		t.Fatalf("expected trimmed names, got %q %q", contact.FirstName, contact.LastName)
	}
	if contact.Email != "lisi@example.com" {
		t.Fatalf("expected trimmed email, got %q", contact.Email)
	}
}

func TestUpdateContactEnforcesOwnership(t *testing.T) {
	db, svc := setupContactServiceTest(t, "contact_update_ownership")
	contact := models.Contact{UserID: 1, FirstName: "六", LastName: "赵", Email: "zhao@example.com"}
	if err := db.Create(&contact).Error; err != nil {
		t.Fatalf("create contact failed: %v", err)
	}

	_, err := svc.Update(contact.ID, ContactInput{
		UserID:    2,
		FirstName: "改",
		LastName:  "名",
		Email:     "other@example.com",
	})
	if !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected contact not found for foreign user, got: %v", err)
	}
}

func TestDeleteContactClearsOrderRef(t *testing.T) {
	db, svc := setupContactServiceTest(t, "contact_delete_clear_ref")
	contact := models.Contact{UserID: 1, FirstName: "七", LastName: "孙", Email: "sun@example.com"}
	if err := db.Create(&contact).Error; err != nil {
		t.Fatalf("create contact failed: %v", err)
	}
	order := models.Order{UserID: 1, ContactID: &contact.ID, Status: constants.OrderStatusConfirmed}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := svc.Delete(1, contact.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if reloaded.ContactID != nil {
		t.Fatalf("expected order contact ref cleared, got %v", *reloaded.ContactID)
	}
	if reloaded.Status != constants.OrderStatusConfirmed {
		t.Fatalf("order status should survive contact delete, got %s", reloaded.Status)
	}
}

func TestDeleteContactForeignUser(t *testing.T) {
	db, svc := setupContactServiceTest(t, "contact_delete_foreign")
	contact := models.Contact{UserID: 1, FirstName: "八", LastName: "周", Email: "zhou@example.com"}
	if err := db.Create(&contact).Error; err != nil {
		t.Fatalf("create contact failed: %v", err)
	}

	if err := svc.Delete(2, contact.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected contact not found, got: %v", err)
	}
	var count int64
	if err := db.Model(&models.Contact{}).Where("id = ?", contact.ID).Count(&count).Error; err != nil {
		t.Fatalf("count contacts failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("contact should survive foreign delete attempt")
	}
}
