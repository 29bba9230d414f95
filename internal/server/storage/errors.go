package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrLicenseNotFound indicates that no license matches the lookup
	ErrLicenseNotFound = errors.New("license not found")

	// ErrCorruptSnapshot indicates that persisted state cannot be decoded
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrPersist indicates that a mutation was applied in memory but not saved
	ErrPersist = errors.New("failed to persist store")
)
