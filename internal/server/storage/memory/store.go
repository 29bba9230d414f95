package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/licauth/internal/crypto"
	"github.com/iudanet/licauth/internal/models"
	"github.com/iudanet/licauth/internal/server/storage"
)

// Store is the in-memory credential store backed by a Persister.
//
// Reads share mu; every mutation takes it exclusively, so readers see either the
// state before or after a mutation. Saving happens after mu is released and is
// serialized by saveMu; a snapshot older than the last saved one is never written.
//
// A failed save does not undo the in-memory change. The mutation returns an error
// wrapping storage.ErrPersist, and durable state lags memory until the next
// successful save.
type Store struct {
	persister storage.Persister
	hasher    crypto.PasswordHasher
	logger    *slog.Logger

	usersByEmail map[string]int // email -> index in users
	usersByID    map[int64]int  // id -> index in users (first wins)
	licenseIndex map[string]int // key -> index in licenses
	extra        map[string]json.RawMessage
	users        []models.User
	licenses     []models.License
	nextUserID   int64
	version      uint64

	savedVersion uint64

	mu     sync.RWMutex
	saveMu sync.Mutex
}

// Compile-time checks
var (
	_ storage.UserAdmin    = (*Store)(nil)
	_ storage.LicenseAdmin = (*Store)(nil)
)

// New loads the snapshot from persister and returns a ready store
func New(ctx context.Context, persister storage.Persister, hasher crypto.PasswordHasher, logger *slog.Logger) (*Store, error) {
	s := &Store{
		persister: persister,
		hasher:    hasher,
		logger:    logger,
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Reload replaces in-memory state with the persisted snapshot
func (s *Store) Reload(ctx context.Context) error {
	snapshot, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	s.mu.Lock()
	s.applyLocked(snapshot)
	// Загруженное состояние уже сохранено, повторно писать его не нужно
	s.version++
	loaded := s.version
	s.mu.Unlock()

	s.saveMu.Lock()
	if loaded > s.savedVersion {
		s.savedVersion = loaded
	}
	s.saveMu.Unlock()

	s.logger.InfoContext(ctx, "store loaded",
		slog.Int("users", len(snapshot.Users)),
		slog.Int("licenses", len(snapshot.Licenses)))

	return nil
}

// Replace swaps the whole state for snapshot and persists it
func (s *Store) Replace(ctx context.Context, snapshot *storage.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	s.mu.Lock()
	s.applyLocked(snapshot)
	s.version++
	snap, version := s.snapshotLocked()
	s.mu.Unlock()

	return s.persist(ctx, snap, version)
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot(ctx context.Context) *storage.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, _ := s.snapshotLocked()
	return snap
}

// GetUserByEmail retrieves user by email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.usersByEmail[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}

	user := s.users[idx]
	return &user, nil
}

// GetUserByID retrieves user by numeric ID
func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.usersByID[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}

	user := s.users[idx]
	return &user, nil
}

// CreateUser hashes password and stores a new user with the next free ID
func (s *Store) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	// Дешевая проверка до bcrypt, окончательная ниже под блокировкой
	if _, err := s.GetUserByEmail(ctx, email); err == nil {
		return nil, storage.ErrUserAlreadyExists
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	if _, exists := s.usersByEmail[email]; exists {
		s.mu.Unlock()
		return nil, storage.ErrUserAlreadyExists
	}

	user := models.User{
		ID:           s.nextUserID,
		Email:        email,
		PasswordHash: digest,
	}
	s.users = append(s.users, user)
	s.usersByEmail[email] = len(s.users) - 1
	if _, taken := s.usersByID[user.ID]; !taken {
		s.usersByID[user.ID] = len(s.users) - 1
	}
	s.nextUserID++
	s.version++

	snap, version := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "user created",
		slog.String("email", email),
		slog.Int64("user_id", user.ID))

	// Пользователь уже создан в памяти и возвращается вместе с ошибкой сохранения
	return &user, s.persist(ctx, snap, version)
}

// ListUsers returns all users in insertion order
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.User(nil), s.users...), nil
}

// GetLicenseByKey retrieves license by its key
func (s *Store) GetLicenseByKey(ctx context.Context, key string) (*models.License, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.licenseIndex[key]
	if !ok {
		return nil, storage.ErrLicenseNotFound
	}

	license := s.licenses[idx]
	return &license, nil
}

// GetLicenseByOwnerEmail retrieves the first license owned by email
func (s *Store) GetLicenseByOwnerEmail(ctx context.Context, email string) (*models.License, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, license := range s.licenses {
		if license.OwnerEmail == email {
			found := license
			return &found, nil
		}
	}

	return nil, storage.ErrLicenseNotFound
}

// CreateLicense maps key to ownerEmail, overwriting the owner of an existing key in place
func (s *Store) CreateLicense(ctx context.Context, key, ownerEmail string) error {
	s.mu.Lock()
	if idx, exists := s.licenseIndex[key]; exists {
		s.licenses[idx].OwnerEmail = ownerEmail
	} else {
		s.licenses = append(s.licenses, models.License{Key: key, OwnerEmail: ownerEmail})
		s.licenseIndex[key] = len(s.licenses) - 1
	}
	s.version++

	snap, version := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "license created",
		slog.String("key", key),
		slog.String("email", ownerEmail))

	return s.persist(ctx, snap, version)
}

// ListLicenses returns all licenses in insertion order
func (s *Store) ListLicenses(ctx context.Context) ([]models.License, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.License(nil), s.licenses...), nil
}

// Close closes the underlying persister
func (s *Store) Close() error {
	return s.persister.Close()
}

// applyLocked rebuilds state and indexes from snapshot. Caller holds mu.
func (s *Store) applyLocked(snapshot *storage.Snapshot) {
	s.users = append([]models.User(nil), snapshot.Users...)
	s.licenses = make([]models.License, 0, len(snapshot.Licenses))
	s.usersByEmail = make(map[string]int, len(s.users))
	s.usersByID = make(map[int64]int, len(s.users))
	s.licenseIndex = make(map[string]int, len(snapshot.Licenses))

	for i, user := range s.users {
		s.usersByEmail[user.Email] = i
		if _, taken := s.usersByID[user.ID]; !taken {
			s.usersByID[user.ID] = i
		}
	}

	// Повторяющийся ключ перезаписывает владельца, сохраняя первую позицию
	for _, license := range snapshot.Licenses {
		if idx, exists := s.licenseIndex[license.Key]; exists {
			s.licenses[idx].OwnerEmail = license.OwnerEmail
			continue
		}
		s.licenses = append(s.licenses, license)
		s.licenseIndex[license.Key] = len(s.licenses) - 1
	}

	s.nextUserID = snapshot.NextUserID
	if s.nextUserID < storage.FirstUserID {
		s.nextUserID = storage.FirstUserID
	}

	s.extra = make(map[string]json.RawMessage, len(snapshot.Extra))
	for k, v := range snapshot.Extra {
		s.extra[k] = append(json.RawMessage(nil), v...)
	}
}

// snapshotLocked copies current state and returns it with its version. Caller holds mu.
func (s *Store) snapshotLocked() (*storage.Snapshot, uint64) {
	snap := &storage.Snapshot{
		Users:      append([]models.User(nil), s.users...),
		Licenses:   append([]models.License(nil), s.licenses...),
		NextUserID: s.nextUserID,
	}
	if len(s.extra) > 0 {
		snap.Extra = make(map[string]json.RawMessage, len(s.extra))
		for k, v := range s.extra {
			snap.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}

	return snap, s.version
}

// persist saves snap unless a newer snapshot was already saved
func (s *Store) persist(ctx context.Context, snap *storage.Snapshot, version uint64) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if version <= s.savedVersion {
		return nil
	}

	if err := s.persister.Save(ctx, snap); err != nil {
		// Изменение в памяти остается в силе, на диске предыдущая версия
		s.logger.ErrorContext(ctx, "failed to save store", slog.Any("error", err))
		return fmt.Errorf("%w: %w", storage.ErrPersist, err)
	}

	s.savedVersion = version
	return nil
}
