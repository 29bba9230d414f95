package storage

import (
	"context"
	"encoding/json"

	"github.com/iudanet/licauth/internal/models"
)

// FirstUserID is the ID assigned to the first user of an empty store
const FirstUserID int64 = 1

// Snapshot is the whole persisted state of the credential store.
// Users and Licenses keep insertion order, which license lookups by owner depend on.
type Snapshot struct {
	// Extra holds unknown top-level fields of a JSON document so they survive a rewrite
	Extra      map[string]json.RawMessage
	Users      []models.User
	Licenses   []models.License
	NextUserID int64
}

// NewSnapshot returns an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{NextUserID: FirstUserID}
}

//go:generate moq -out persister_mock.go . Persister

// Persister loads and saves whole snapshots.
// Save must be atomic: a failed or interrupted save leaves the previous snapshot intact.
type Persister interface {
	// Load returns the stored snapshot, or an empty one if nothing was saved yet
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the stored snapshot
	Save(ctx context.Context, snapshot *Snapshot) error

	// Close releases underlying resources
	Close() error
}
