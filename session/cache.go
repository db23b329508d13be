package session

import (
	"encoding/json"
	"eventbook-client/codec"
	"eventbook-client/model"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Cache mirrors the last known user record so the UI can render
// immediately on the next start while verification is still in flight.
// It is an optimistic placeholder only; the session manager is the
// authority on who is logged in.
type Cache interface {
	Load() (*model.User, error)
	Store(user *model.User) error
	Clear() error
}

// FileCache stores the user record as a single file, AES-encrypted at
// rest when a secret is configured.
type FileCache struct {
	path string
	key  []byte
}

// NewFileCache builds a file-backed cache. An empty secret stores plain
// JSON.
func NewFileCache(path, secret string) *FileCache {
	fc := &FileCache{path: path}
	if secret != "" {
		fc.key = codec.DeriveKey(secret)
	}
	return fc
}

func (fc *FileCache) Load() (*model.User, error) {
	raw, err := os.ReadFile(fc.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: reading cache: %w", err)
	}

	if fc.key != nil {
		raw, err = codec.Decrypt(fc.key, string(raw))
		if err != nil {
			return nil, fmt.Errorf("session: decrypting cache: %w", err)
		}
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("session: unmarshalling cache: %w", err)
	}
	if user.UserID == "" {
		return nil, nil
	}
	return &user, nil
}

func (fc *FileCache) Store(user *model.User) error {
	if user == nil {
		return fc.Clear()
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: marshalling cache: %w", err)
	}

	if fc.key != nil {
		encrypted, err := codec.Encrypt(fc.key, raw)
		if err != nil {
			return fmt.Errorf("session: encrypting cache: %w", err)
		}
		raw = []byte(encrypted)
	}

	if err := os.MkdirAll(filepath.Dir(fc.path), 0o700); err != nil {
		return fmt.Errorf("session: creating cache dir: %w", err)
	}
	if err := os.WriteFile(fc.path, raw, 0o600); err != nil {
		return fmt.Errorf("session: writing cache: %w", err)
	}
	return nil
}

func (fc *FileCache) Clear() error {
	err := os.Remove(fc.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: clearing cache: %w", err)
	}
	return nil
}

// MemoryCache is for tests.
type MemoryCache struct {
	mu   sync.Mutex
	user *model.User
}

func (mc *MemoryCache) Load() (*model.User, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if mc.user == nil {
		return nil, nil
	}
	copied := *mc.user
	return &copied, nil
}

func (mc *MemoryCache) Store(user *model.User) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if user == nil {
		mc.user = nil
		return nil
	}
	copied := *user
	mc.user = &copied
	return nil
}

func (mc *MemoryCache) Clear() error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.user = nil
	return nil
}

// NopCache disables the optimistic placeholder entirely.
type NopCache struct{}

func (NopCache) Load() (*model.User, error)  { return nil, nil }
func (NopCache) Store(*model.User) error     { return nil }
func (NopCache) Clear() error                { return nil }
