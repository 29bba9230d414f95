package crypto

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher хеширует и проверяет пароли пользователей
type PasswordHasher interface {
	// Hash возвращает дайджест пароля для сохранения в хранилище
	Hash(password string) (string, error)
	// Verify сообщает, соответствует ли пароль сохраненному дайджесту
	Verify(digest, password string) bool
}

// BcryptHasher создает новые дайджесты через bcrypt и проверяет как bcrypt,
// так и legacy дайджесты werkzeug (pbkdf2:..., scrypt:...)
type BcryptHasher struct {
	cost int
}

// Compile-time check that BcryptHasher implements PasswordHasher
var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the given bcrypt cost.
// Cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash хеширует пароль с использованием bcrypt
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Verify проверяет пароль против bcrypt или werkzeug дайджеста
func (h *BcryptHasher) Verify(digest, password string) bool {
	if digest == "" || password == "" {
		return false
	}

	if strings.HasPrefix(digest, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	}

	// Дайджесты, созданные оригинальным сервером
	ok, err := verifyWerkzeug(digest, password)
	if err != nil {
		return false
	}
	return ok
}
