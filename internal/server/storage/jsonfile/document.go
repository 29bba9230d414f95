package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/iudanet/licauth/internal/models"
	"github.com/iudanet/licauth/internal/server/storage"
)

// Top-level keys of the document
const (
	keyUsers      = "users"
	keyLicenses   = "licenses"
	keyNextUserID = "next_user_id"
)

type userEntry struct {
	PasswordHash string `json:"password_hash"`
	ID           int64  `json:"id"`
}

type licenseEntry struct {
	Email string `json:"email"`
}

// Encode writes snapshot as an indented JSON document:
//
//	{"users": {email: {password_hash, id}}, "licenses": {key: {email}}, "next_user_id": n}
//
// Users and licenses keep snapshot order; unknown top-level fields follow, sorted by key.
func Encode(w io.Writer, snapshot *storage.Snapshot) error {
	var buf bytes.Buffer

	buf.WriteByte('{')

	writeKey(&buf, keyUsers, true)
	buf.WriteByte('{')
	for i, user := range snapshot.Users {
		writeKey(&buf, user.Email, i == 0)
		if err := writeValue(&buf, userEntry{PasswordHash: user.PasswordHash, ID: user.ID}); err != nil {
			return err
		}
	}
	buf.WriteByte('}')

	writeKey(&buf, keyLicenses, false)
	buf.WriteByte('{')
	for i, license := range snapshot.Licenses {
		writeKey(&buf, license.Key, i == 0)
		if err := writeValue(&buf, licenseEntry{Email: license.OwnerEmail}); err != nil {
			return err
		}
	}
	buf.WriteByte('}')

	writeKey(&buf, keyNextUserID, false)
	if err := writeValue(&buf, snapshot.NextUserID); err != nil {
		return err
	}

	extraKeys := make([]string, 0, len(snapshot.Extra))
	for k := range snapshot.Extra {
		if k == keyUsers || k == keyLicenses || k == keyNextUserID {
			continue
		}
		extraKeys = append(extraKeys, k)
	}
	slices.Sort(extraKeys)
	for _, k := range extraKeys {
		writeKey(&buf, k, false)
		buf.Write(snapshot.Extra[k])
	}

	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("failed to indent document: %w", err)
	}
	out.WriteByte('\n')

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Decode reads a JSON document written by Encode or by the legacy Flask server.
// Object key order is preserved; a repeated key keeps its first position and its
// last value. A missing next_user_id defaults to 1.
func Decode(r io.Reader) (*storage.Snapshot, error) {
	snapshot := storage.NewSnapshot()
	dec := json.NewDecoder(r)

	err := decodeObject(dec, func(key string) error {
		switch key {
		case keyUsers:
			seen := make(map[string]int)
			return decodeObject(dec, func(email string) error {
				var entry userEntry
				if err := dec.Decode(&entry); err != nil {
					return fmt.Errorf("user %q: %w", email, err)
				}
				user := models.User{
					Email:        email,
					PasswordHash: entry.PasswordHash,
					ID:           entry.ID,
				}
				// Повторный email заменяет запись на ее прежнем месте
				if idx, ok := seen[email]; ok {
					snapshot.Users[idx] = user
					return nil
				}
				seen[email] = len(snapshot.Users)
				snapshot.Users = append(snapshot.Users, user)
				return nil
			})
		case keyLicenses:
			return decodeObject(dec, func(licenseKey string) error {
				var entry licenseEntry
				if err := dec.Decode(&entry); err != nil {
					return fmt.Errorf("license %q: %w", licenseKey, err)
				}
				snapshot.Licenses = append(snapshot.Licenses, models.License{
					Key:        licenseKey,
					OwnerEmail: entry.Email,
				})
				return nil
			})
		case keyNextUserID:
			var next *int64
			if err := dec.Decode(&next); err != nil {
				return fmt.Errorf("next_user_id: %w", err)
			}
			if next != nil {
				snapshot.NextUserID = *next
			}
			return nil
		default:
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			if snapshot.Extra == nil {
				snapshot.Extra = make(map[string]json.RawMessage)
			}
			snapshot.Extra[key] = raw
			return nil
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrCorruptSnapshot, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after document", storage.ErrCorruptSnapshot)
	}

	return snapshot, nil
}

// decodeObject walks a JSON object calling fn for each key; fn must consume the value.
// A null value is treated as an empty object.
func decodeObject(dec *json.Decoder, fn func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("expected JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return errors.New("expected object key")
		}
		if err := fn(key); err != nil {
			return err
		}
	}

	// Закрывающая скобка объекта
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func writeKey(buf *bytes.Buffer, key string, first bool) {
	if !first {
		buf.WriteByte(',')
	}
	encoded, _ := json.Marshal(key)
	buf.Write(encoded)
	buf.WriteByte(':')
}

func writeValue(buf *bytes.Buffer, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	buf.Write(encoded)
	return nil
}
