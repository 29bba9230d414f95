package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no cached session exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrCacheKeyNotFound indicates that the cache has no key salt yet
	ErrCacheKeyNotFound = errors.New("cache key salt not found")
)
