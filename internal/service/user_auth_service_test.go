package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserAuthTest(t *testing.T, name string) (*gorm.DB, *UserAuthService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret-key-for-user-auth-cases"
	cfg.UserJWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 8}

	svc := NewUserAuthService(cfg, repository.NewUserRepository(db))
	return db, svc
}

func TestRegisterNormalizesEmailAndIssuesToken(t *testing.T) {
	_, svc := setupUserAuthTest(t, "user_auth_register")

	user, token, expiresAt, err := svc.Register(RegisterInput{
		Email:    " Alice@Example.COM ",
		Password: "strongpass123",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.DisplayName != "alice" {
		t.Fatalf("expected nickname derived from email, got %q", user.DisplayName)
	}
	if user.Status != constants.UserStatusActive {
		t.Fatalf("expected active status, got %q", user.Status)
	}
	if token == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("expected usable token, got token=%q expires=%v", token, expiresAt)
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("ParseUserJWT error: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	_, svc := setupUserAuthTest(t, "user_auth_duplicate")

	if _, _, _, err := svc.Register(RegisterInput{Email: "bob@example.com", Password: "strongpass123"}); err != nil {
		t.Fatalf("first register error: %v", err)
	}
	// 大小写不同视为同一邮箱
	_, _, _, err := svc.Register(RegisterInput{Email: "BOB@example.com", Password: "strongpass123"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email taken, got: %v", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	_, svc := setupUserAuthTest(t, "user_auth_weak_password")

	_, _, _, err := svc.Register(RegisterInput{Email: "carol@example.com", Password: "short"})
	if !errors.Is(err, ErrPasswordTooWeak) {
		t.Fatalf("expected password too weak, got: %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	_, svc := setupUserAuthTest(t, "user_auth_wrong_password")

	if _, _, _, err := svc.Register(RegisterInput{Email: "dave@example.com", Password: "strongpass123"}); err != nil {
		t.Fatalf("register error: %v", err)
	}
	_, _, _, err := svc.Login("dave@example.com", "wrongpass456", false)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got: %v", err)
	}
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	db, svc := setupUserAuthTest(t, "user_auth_disabled")

	user, _, _, err := svc.Register(RegisterInput{Email: "eve@example.com", Password: "strongpass123"})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("status", constants.UserStatusDisabled).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	_, _, _, err = svc.Login("eve@example.com", "strongpass123", false)
	if !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected user disabled, got: %v", err)
	}
}

func TestLoginRecordsLastLogin(t *testing.T) {
	db, svc := setupUserAuthTest(t, "user_auth_last_login")

	registered, _, _, err := svc.Register(RegisterInput{Email: "frank@example.com", Password: "strongpass123"})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	user, token, _, err := svc.Login("frank@example.com", "strongpass123", false)
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.LastLoginAt == nil {
		t.Fatalf("expected last login recorded")
	}

	var persisted models.User
	if err := db.First(&persisted, registered.ID).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if persisted.LastLoginAt == nil {
		t.Fatalf("last login not persisted")
	}
}

func TestLoginRememberMeExtendsExpiry(t *testing.T) {
	_, svc := setupUserAuthTest(t, "user_auth_remember_me")

	if _, _, _, err := svc.Register(RegisterInput{Email: "grace@example.com", Password: "strongpass123"}); err != nil {
		t.Fatalf("register error: %v", err)
	}

	_, _, normalExpiry, err := svc.Login("grace@example.com", "strongpass123", false)
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	_, _, rememberExpiry, err := svc.Login("grace@example.com", "strongpass123", true)
	if err != nil {
		t.Fatalf("remember-me login error: %v", err)
	}
	if !rememberExpiry.After(normalExpiry.Add(time.Hour)) {
		t.Fatalf("expected remember-me expiry beyond normal expiry: normal=%v remember=%v", normalExpiry, rememberExpiry)
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:     10,
		RequireUpper:  true,
		RequireNumber: true,
	}
	if err := ValidatePassword("Abcdefgh12", policy); err != nil {
		t.Fatalf("expected password accepted, got: %v", err)
	}
	for _, pw := range []string{"Short1", "abcdefghij1", "Abcdefghijk"} {
		if err := ValidatePassword(pw, policy); !errors.Is(err, ErrPasswordTooWeak) {
			t.Fatalf("password %q: expected too weak, got: %v", pw, err)
		}
	}
}
