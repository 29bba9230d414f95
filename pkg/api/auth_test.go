package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_Identity(t *testing.T) {
	tests := []struct {
		name string
		req  LoginRequest
		want string
	}{
		{name: "email", req: LoginRequest{Email: "a@x.com", Username: "b", User: "c"}, want: "a@x.com"},
		{name: "username fallback", req: LoginRequest{Username: "b@x.com", User: "c"}, want: "b@x.com"},
		{name: "user fallback", req: LoginRequest{User: "c@x.com"}, want: "c@x.com"},
		{name: "none", req: LoginRequest{Password: "pw"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Identity())
		})
	}
}

func TestProductKeyRequest_ProductKeyValue(t *testing.T) {
	assert.Equal(t, "A", ProductKeyRequest{ProductKey: "A", Key: "B"}.ProductKeyValue())
	assert.Equal(t, "B", ProductKeyRequest{Key: "B"}.ProductKeyValue())
	assert.Equal(t, "", ProductKeyRequest{}.ProductKeyValue())
}
