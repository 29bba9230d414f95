package models

import "time"

// AccessClaims содержит данные, извлеченные из access token
type AccessClaims struct {
	ExpiresAt time.Time
	UserID    int64
}
