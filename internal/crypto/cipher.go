package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// NonceSize - размер nonce для AES-GCM (12 bytes стандартный размер)
	NonceSize = 12
	// KeySize - размер ключа AES-256
	KeySize = 32
)

// ErrDecrypt is returned when sealed data fails authentication:
// wrong key, wrong associated data or corrupted ciphertext
var ErrDecrypt = errors.New("failed to decrypt: authentication failed or corrupted data")

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM, nil
}

// Seal шифрует plaintext с использованием AES-256-GCM.
// additionalData привязывает шифротекст к контексту (например, имени поля)
// и должна совпадать при расшифровке.
// Формат результата: nonce (12 bytes) + ciphertext + auth_tag (16 bytes)
func Seal(plaintext, key, additionalData []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+aesGCM.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal дописывает шифротекст и tag после nonce
	return aesGCM.Seal(nonce, nonce, plaintext, additionalData), nil
}

// Open расшифровывает данные, зашифрованные Seal
func Open(sealed, key, additionalData []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(sealed) < NonceSize+aesGCM.Overhead() {
		return nil, fmt.Errorf("%w: sealed data too short", ErrDecrypt)
	}

	plaintext, err := aesGCM.Open(nil, sealed[:NonceSize], sealed[NonceSize:], additionalData)
	if err != nil {
		return nil, ErrDecrypt
	}

	return plaintext, nil
}

// SealString шифрует строку и возвращает результат в Base64
func SealString(plaintext string, key []byte, additionalData string) (string, error) {
	sealed, err := Seal([]byte(plaintext), key, []byte(additionalData))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenString расшифровывает строку, зашифрованную SealString
func OpenString(sealedBase64 string, key []byte, additionalData string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(sealedBase64)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	plaintext, err := Open(sealed, key, []byte(additionalData))
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
