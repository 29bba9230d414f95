// Package driver opens the persister selected by configuration
package driver

import (
	"context"
	"fmt"

	"github.com/iudanet/licauth/internal/config"
	"github.com/iudanet/licauth/internal/server/storage"
	"github.com/iudanet/licauth/internal/server/storage/boltdb"
	"github.com/iudanet/licauth/internal/server/storage/jsonfile"
	"github.com/iudanet/licauth/internal/server/storage/sqlite"
)

// Open returns the persister for cfg.Driver at cfg.Path
func Open(ctx context.Context, cfg config.StorageConfig) (storage.Persister, error) {
	switch cfg.Driver {
	case config.DriverJSON, "":
		return jsonfile.New(cfg.Path), nil
	case config.DriverBolt:
		p, err := boltdb.New(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.DriverSQLite:
		s, err := sqlite.New(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
