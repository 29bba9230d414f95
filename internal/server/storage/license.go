package storage

import (
	"context"

	"github.com/iudanet/licauth/internal/models"
)

// LicenseStorage defines read access to license records
type LicenseStorage interface {
	// GetLicenseByKey retrieves license by its key
	// Returns ErrLicenseNotFound if key is unknown
	GetLicenseByKey(ctx context.Context, key string) (*models.License, error)

	// GetLicenseByOwnerEmail retrieves the first license (by insertion order) owned by email.
	// A user may own several licenses; only the earliest one is ever returned.
	// Returns ErrLicenseNotFound if the email owns nothing
	GetLicenseByOwnerEmail(ctx context.Context, email string) (*models.License, error)
}

// LicenseAdmin defines license mutations available to administrative tooling
type LicenseAdmin interface {
	LicenseStorage

	// CreateLicense maps key to ownerEmail. Re-issuing an existing key overwrites
	// its owner and keeps its original position.
	CreateLicense(ctx context.Context, key, ownerEmail string) error

	// ListLicenses returns all licenses in insertion order
	ListLicenses(ctx context.Context) ([]models.License, error)
}
