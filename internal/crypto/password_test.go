package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Дайджесты, сгенерированные werkzeug-совместимым способом (hashlib) для пароля "pw1"
const (
	legacyPBKDF2Digest = "pbkdf2:sha256:1000$abcdefgh12345678$7b5176462fd71edd96b34c5ef8bd0d12cac3475743b29f5cf02ca552427a910e"
	legacyScryptDigest = "scrypt:1024:8:1$abcdefgh12345678$993639bbe997677ecde30f9fa9fa89f6b641dc5e5d62b9ac95e05107eee48eee9811ceed99e40802725babc1934ac7e9a89054478b33dd0dd8dc682522ab0a79"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$2"), "bcrypt digest expected")
	assert.NotEqual(t, "pw1", digest)
	assert.True(t, h.Verify(digest, "pw1"))
	assert.False(t, h.Verify(digest, "pw2"))
}

func TestBcryptHasher_HashEmptyPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
	assert.Empty(t, digest)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	d1, err := h.Hash("same")
	require.NoError(t, err)
	d2, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(100).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}

func TestBcryptHasher_VerifyLegacy(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name     string
		digest   string
		password string
		want     bool
	}{
		{name: "pbkdf2 correct", digest: legacyPBKDF2Digest, password: "pw1", want: true},
		{name: "pbkdf2 wrong", digest: legacyPBKDF2Digest, password: "pw2", want: false},
		{name: "scrypt correct", digest: legacyScryptDigest, password: "pw1", want: true},
		{name: "scrypt wrong", digest: legacyScryptDigest, password: "nope", want: false},
		{name: "empty digest", digest: "", password: "pw1", want: false},
		{name: "empty password", digest: legacyPBKDF2Digest, password: "", want: false},
		{name: "plain text digest", digest: "pw1", password: "pw1", want: false},
		{name: "unknown method", digest: "md5$salt$abcd", password: "pw1", want: false},
		{name: "pbkdf2 without iterations", digest: "pbkdf2:sha256$salt$abcd", password: "pw1", want: false},
		{name: "pbkdf2 unknown hash", digest: "pbkdf2:md5:10$salt$abcd", password: "pw1", want: false},
		{name: "bad hex", digest: "pbkdf2:sha256:10$salt$zz", password: "pw1", want: false},
		{name: "scrypt bad params", digest: "scrypt:x:8:1$salt$abcd", password: "pw1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.digest, tt.password))
		})
	}
}
