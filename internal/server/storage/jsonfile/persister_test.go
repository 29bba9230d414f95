package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/licauth/internal/models"
	"github.com/iudanet/licauth/internal/server/storage"
)

// документ в формате прежнего Flask сервера (json.dump с indent=2)
const legacyDocument = `{
  "users": {
    "zed@x.com": {
      "password_hash": "scrypt:32768:8:1$salt$abcd",
      "id": 2
    },
    "a@x.com": {
      "password_hash": "pbkdf2:sha256:600000$salt$beef",
      "id": 1
    }
  },
  "licenses": {
    "KEY-B": {
      "email": "a@x.com"
    },
    "KEY-A": {
      "email": "a@x.com"
    }
  },
  "next_user_id": 3,
  "schema": {"version": 2}
}`

func TestDecode_PreservesOrder(t *testing.T) {
	snapshot, err := Decode(strings.NewReader(legacyDocument))
	require.NoError(t, err)

	require.Len(t, snapshot.Users, 2)
	assert.Equal(t, "zed@x.com", snapshot.Users[0].Email)
	assert.Equal(t, int64(2), snapshot.Users[0].ID)
	assert.Equal(t, "a@x.com", snapshot.Users[1].Email)
	assert.Equal(t, "pbkdf2:sha256:600000$salt$beef", snapshot.Users[1].PasswordHash)

	require.Len(t, snapshot.Licenses, 2)
	assert.Equal(t, "KEY-B", snapshot.Licenses[0].Key)
	assert.Equal(t, "KEY-A", snapshot.Licenses[1].Key)
	assert.Equal(t, "a@x.com", snapshot.Licenses[0].OwnerEmail)

	assert.Equal(t, int64(3), snapshot.NextUserID)
	assert.JSONEq(t, `{"version": 2}`, string(snapshot.Extra["schema"]))
}

func TestDecode_Defaults(t *testing.T) {
	snapshot, err := Decode(strings.NewReader(`{"users": {}, "licenses": null}`))
	require.NoError(t, err)

	assert.Empty(t, snapshot.Users)
	assert.Empty(t, snapshot.Licenses)
	assert.Equal(t, storage.FirstUserID, snapshot.NextUserID)
}

func TestDecode_DuplicateUserKeepsLast(t *testing.T) {
	doc := `{
  "users": {
    "a@x.com": {"password_hash": "old", "id": 1},
    "b@x.com": {"password_hash": "hb", "id": 2},
    "a@x.com": {"password_hash": "new", "id": 3}
  },
  "next_user_id": 4
}
`
	snapshot, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, snapshot.Users, 2)
	assert.Equal(t, models.User{Email: "a@x.com", PasswordHash: "new", ID: 3}, snapshot.Users[0])
	assert.Equal(t, "b@x.com", snapshot.Users[1].Email)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, snapshot))
	assert.Equal(t, 1, strings.Count(buf.String(), `"a@x.com"`))
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{ this is not valid json`},
		{name: "array at top", doc: `[1, 2]`},
		{name: "user is string", doc: `{"users": {"a@x.com": "oops"}}`},
		{name: "id is string", doc: `{"users": {"a@x.com": {"id": "1"}}}`},
		{name: "next id not number", doc: `{"next_user_id": "two"}`},
		{name: "trailing garbage", doc: `{"users": {}} garbage`},
		{name: "second document", doc: `{"users": {}}{"users": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, storage.ErrCorruptSnapshot)
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	snapshot := &storage.Snapshot{
		Users: []models.User{
			{Email: "b@x.com", PasswordHash: "h2", ID: 2},
			{Email: "a@x.com", PasswordHash: "h1", ID: 1},
		},
		Licenses: []models.License{
			{Key: "KEY-1", OwnerEmail: "a@x.com"},
		},
		NextUserID: 3,
		Extra: map[string]json.RawMessage{
			"comment": json.RawMessage(`"kept"`),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, snapshot))

	assert.JSONEq(t, `{
		"users": {
			"b@x.com": {"password_hash": "h2", "id": 2},
			"a@x.com": {"password_hash": "h1", "id": 1}
		},
		"licenses": {"KEY-1": {"email": "a@x.com"}},
		"next_user_id": 3,
		"comment": "kept"
	}`, buf.String())

	// Порядок ключей сохраняется в тексте документа
	out := buf.String()
	assert.Less(t, strings.Index(out, "b@x.com"), strings.Index(out, "a@x.com"))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Users, decoded.Users)
	assert.Equal(t, snapshot.Licenses, decoded.Licenses)
}

func TestPersister_LoadMissingFile(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "server_data.json"))

	snapshot, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Users)
	assert.Equal(t, storage.FirstUserID, snapshot.NextUserID)
}

func TestPersister_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server_data.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	snapshot, err := New(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Licenses)
}

func TestPersister_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := New(path).Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrCorruptSnapshot)
}

func TestPersister_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "server_data.json")
	p := New(path)

	first := &storage.Snapshot{
		Users:      []models.User{{Email: "a@x.com", PasswordHash: "h1", ID: 1}},
		NextUserID: 2,
	}
	require.NoError(t, p.Save(ctx, first))

	second := &storage.Snapshot{
		Users:      []models.User{{Email: "a@x.com", PasswordHash: "h1", ID: 1}},
		Licenses:   []models.License{{Key: "KEY-1", OwnerEmail: "a@x.com"}},
		NextUserID: 2,
	}
	require.NoError(t, p.Save(ctx, second))

	loaded, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Users, loaded.Users)
	assert.Equal(t, second.Licenses, loaded.Licenses)
	assert.Equal(t, int64(2), loaded.NextUserID)

	// Временные файлы не остаются после успешного сохранения
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "server_data.json", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPersister_SaveFailureKeepsPreviousDocument(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "server_data.json")
	require.NoError(t, os.WriteFile(path, []byte(legacyDocument), 0o600))

	// Каталог для временного файла не существует, rename не происходит
	p := &Persister{path: filepath.Join(dir, "missing", "server_data.json")}
	err := p.Save(ctx, storage.NewSnapshot())
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, legacyDocument, string(data))
}
