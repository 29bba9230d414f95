// Package validation checks administrative input before it reaches the store
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// LicenseKeyPattern определяет допустимый формат ключа продукта:
// печатные ASCII символы без пробелов, 1-256 символов
var LicenseKeyPattern = regexp.MustCompile(`^[\x21-\x7E]{1,256}$`)

const (
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateEmail проверяет идентификатор пользователя. Формат адреса не требуется:
// логин принимает любую непустую строку, в том числе через поля username и user
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if err := validate.Var(email, fmt.Sprintf("max=%d", MaxEmailLen)); err != nil {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if strings.TrimSpace(email) != email {
		return fmt.Errorf("email must not start or end with whitespace")
	}

	if strings.ContainsFunc(email, unicode.IsControl) {
		return fmt.Errorf("email must not contain control characters")
	}

	return nil
}

// ValidatePassword проверяет, что пароль непустой.
// Сервер принимает любой непустой пароль
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}

// ValidateLicenseKey проверяет формат ключа продукта
func ValidateLicenseKey(key string) error {
	if key == "" {
		return fmt.Errorf("license key cannot be empty")
	}

	if !LicenseKeyPattern.MatchString(key) {
		return fmt.Errorf("license key can only contain printable ASCII characters without spaces (max 256)")
	}

	return nil
}
