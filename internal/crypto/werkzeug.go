package crypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Defaults applied by werkzeug when a method omits its parameters
const (
	werkzeugScryptN = 1 << 15
	werkzeugScryptR = 8
	werkzeugScryptP = 1
	// werkzeug uses hashlib.scrypt default dklen
	werkzeugScryptKeyLen = 64
)

// verifyWerkzeug checks digests of the form "<method>$<salt>$<hex>" where method is
// "pbkdf2:<hash>:<iterations>" or "scrypt:<n>:<r>:<p>".
func verifyWerkzeug(digest, password string) (bool, error) {
	parts := strings.SplitN(digest, "$", 3)
	if len(parts) != 3 {
		return false, fmt.Errorf("unsupported digest format")
	}
	method, salt, expectedHex := parts[0], parts[1], parts[2]

	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		return false, fmt.Errorf("failed to decode digest: %w", err)
	}

	var computed []byte
	params := strings.Split(method, ":")
	switch params[0] {
	case "pbkdf2":
		computed, err = werkzeugPBKDF2(params[1:], []byte(salt), []byte(password))
	case "scrypt":
		computed, err = werkzeugScrypt(params[1:], []byte(salt), []byte(password))
	default:
		return false, fmt.Errorf("unsupported digest method %q", params[0])
	}
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

func werkzeugPBKDF2(params []string, salt, password []byte) ([]byte, error) {
	// werkzeug всегда записывает итерации в метод: pbkdf2:sha256:600000
	if len(params) != 2 {
		return nil, fmt.Errorf("pbkdf2 digest must specify hash and iterations")
	}

	var newHash func() hash.Hash
	switch params[0] {
	case "sha1":
		newHash = sha1.New
	case "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	default:
		return nil, fmt.Errorf("unsupported pbkdf2 hash %q", params[0])
	}

	iterations, err := strconv.Atoi(params[1])
	if err != nil || iterations <= 0 {
		return nil, fmt.Errorf("invalid pbkdf2 iterations %q", params[1])
	}

	return pbkdf2.Key(password, salt, iterations, newHash().Size(), newHash), nil
}

func werkzeugScrypt(params []string, salt, password []byte) ([]byte, error) {
	n, r, p := werkzeugScryptN, werkzeugScryptR, werkzeugScryptP
	if len(params) != 0 && len(params) != 3 {
		return nil, fmt.Errorf("scrypt digest must specify n, r and p")
	}
	if len(params) == 3 {
		values := make([]int, 3)
		for i, raw := range params {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("invalid scrypt parameter %q", raw)
			}
			values[i] = v
		}
		n, r, p = values[0], values[1], values[2]
	}

	key, err := scrypt.Key(password, salt, n, r, p, werkzeugScryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt failed: %w", err)
	}
	return key, nil
}
