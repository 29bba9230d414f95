package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/licauth/internal/models"
	"github.com/iudanet/licauth/internal/server/storage"
)

var (
	// BoltDB bucket names
	bucketUsers    = []byte("users")
	bucketLicenses = []byte("licenses")
	bucketMeta     = []byte("meta")
	bucketExtra    = []byte("extra")

	keyNextUserID = []byte("next_user_id")
)

// openTimeout limits waiting for the file lock held by another process
const openTimeout = time.Second

// Persister stores the snapshot in a BoltDB file.
// Users and licenses are keyed by their position, so bucket order is insertion order.
//
// The file is opened only for the duration of Load or Save: bbolt locks it
// exclusively while open, and the admin tool must be able to write the store
// while the server is running.
type Persister struct {
	path string
}

// Compile-time check that Persister implements storage.Persister
var _ storage.Persister = (*Persister)(nil)

// New creates the BoltDB file at dbPath if needed and prepares its buckets
func New(ctx context.Context, dbPath string) (*Persister, error) {
	p := &Persister{path: dbPath}

	err := p.withDB(false, func(db *bbolt.DB) error {
		if err := initBuckets(db); err != nil {
			return fmt.Errorf("failed to initialize buckets: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Close is a no-op; the file is not held open between calls
func (p *Persister) Close() error {
	return nil
}

// withDB открывает файл на время fn. readOnly берет разделяемую блокировку
func (p *Persister) withDB(readOnly bool, fn func(db *bbolt.DB) error) error {
	db, err := bbolt.Open(p.path, 0600, &bbolt.Options{Timeout: openTimeout, ReadOnly: readOnly})
	if err != nil {
		return fmt.Errorf("failed to open boltdb: %w", err)
	}

	if err := fn(db); err != nil {
		_ = db.Close()
		return err
	}

	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close boltdb: %w", err)
	}
	return nil
}

// initBuckets создает необходимые buckets если они не существуют
func initBuckets(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketUsers, bucketLicenses, bucketMeta, bucketExtra} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// Load reads the whole snapshot in one read transaction
func (p *Persister) Load(ctx context.Context) (*storage.Snapshot, error) {
	snapshot := storage.NewSnapshot()

	err := p.withDB(true, func(db *bbolt.DB) error {
		return db.View(func(tx *bbolt.Tx) error {
			return readSnapshot(tx, snapshot)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return snapshot, nil
}

// readSnapshot заполняет snapshot из buckets. Отсутствующий bucket считается пустым
func readSnapshot(tx *bbolt.Tx, snapshot *storage.Snapshot) error {
	if err := forEach(tx, bucketUsers, func(k, v []byte) error {
		var user models.User
		if err := json.Unmarshal(v, &user); err != nil {
			return fmt.Errorf("%w: user: %w", storage.ErrCorruptSnapshot, err)
		}
		snapshot.Users = append(snapshot.Users, user)
		return nil
	}); err != nil {
		return err
	}

	if err := forEach(tx, bucketLicenses, func(k, v []byte) error {
		var license models.License
		if err := json.Unmarshal(v, &license); err != nil {
			return fmt.Errorf("%w: license: %w", storage.ErrCorruptSnapshot, err)
		}
		snapshot.Licenses = append(snapshot.Licenses, license)
		return nil
	}); err != nil {
		return err
	}

	if meta := tx.Bucket(bucketMeta); meta != nil {
		if raw := meta.Get(keyNextUserID); raw != nil {
			if len(raw) != 8 {
				return fmt.Errorf("%w: next_user_id has %d bytes", storage.ErrCorruptSnapshot, len(raw))
			}
			snapshot.NextUserID = int64(binary.BigEndian.Uint64(raw))
		}
	}

	return forEach(tx, bucketExtra, func(k, v []byte) error {
		if snapshot.Extra == nil {
			snapshot.Extra = make(map[string]json.RawMessage)
		}
		snapshot.Extra[string(k)] = append(json.RawMessage(nil), v...)
		return nil
	})
}

func forEach(tx *bbolt.Tx, name []byte, fn func(k, v []byte) error) error {
	bucket := tx.Bucket(name)
	if bucket == nil {
		return nil
	}
	return bucket.ForEach(fn)
}

// Save replaces all buckets in a single write transaction
func (p *Persister) Save(ctx context.Context, snapshot *storage.Snapshot) error {
	err := p.withDB(false, func(db *bbolt.DB) error {
		return db.Update(func(tx *bbolt.Tx) error {
			return writeSnapshot(tx, snapshot)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// writeSnapshot пересоздает buckets целиком: транзакция атомарна
func writeSnapshot(tx *bbolt.Tx, snapshot *storage.Snapshot) error {
	for _, name := range [][]byte{bucketUsers, bucketLicenses, bucketExtra} {
		if tx.Bucket(name) != nil {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to drop %s bucket: %w", name, err)
			}
		}
		if _, err := tx.CreateBucket(name); err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", name, err)
		}
	}

	users := tx.Bucket(bucketUsers)
	for i, user := range snapshot.Users {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}
		if err := users.Put(positionKey(i), data); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
	}

	licenses := tx.Bucket(bucketLicenses)
	for i, license := range snapshot.Licenses {
		data, err := json.Marshal(license)
		if err != nil {
			return fmt.Errorf("failed to marshal license: %w", err)
		}
		if err := licenses.Put(positionKey(i), data); err != nil {
			return fmt.Errorf("failed to save license: %w", err)
		}
	}

	extra := tx.Bucket(bucketExtra)
	for k, v := range snapshot.Extra {
		if err := extra.Put([]byte(k), v); err != nil {
			return fmt.Errorf("failed to save extra field: %w", err)
		}
	}

	meta, err := tx.CreateBucketIfNotExists(bucketMeta)
	if err != nil {
		return fmt.Errorf("failed to create %s bucket: %w", bucketMeta, err)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, uint64(snapshot.NextUserID))
	return meta.Put(keyNextUserID, next)
}

// positionKey кодирует индекс в big-endian, чтобы порядок ключей совпадал с порядком вставки
func positionKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}
