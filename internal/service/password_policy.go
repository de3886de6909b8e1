package service

import (
	"unicode"

	"github.com/eshop-next/internal/config"
)

// ValidatePassword 按安全策略校验密码强度
func ValidatePassword(password string, policy config.PasswordPolicyConfig) error {
	minLength := policy.MinLength
	if minLength <= 0 {
		minLength = 8
	}
	if len(password) < minLength {
		return ErrPasswordTooWeak
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return ErrPasswordTooWeak
	}
	if policy.RequireLower && !hasLower {
		return ErrPasswordTooWeak
	}
	if policy.RequireNumber && !hasNumber {
		return ErrPasswordTooWeak
	}
	if policy.RequireSpecial && !hasSpecial {
		return ErrPasswordTooWeak
	}
	return nil
}
