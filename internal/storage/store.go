package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"vastra-store/internal/logger"

	"go.uber.org/zap"
)

// Store is the durable key-value surface the storefront persists into.
// It mirrors the shape of browser local storage: string keys, string
// values, presence checks instead of errors on read.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

var ErrStoreUnavailable = errors.New("durable storage unavailable")

// FileStore keeps one file per key under a profile directory. A store
// whose directory cannot be created behaves as empty: every Get misses
// and every Set fails with ErrStoreUnavailable.
type FileStore struct {
	dir         string
	unavailable bool
}

func NewFileStore(dir string) *FileStore {
	fs := &FileStore{dir: dir}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		logger.L().Warn("storage directory unavailable",
			zap.String("dir", dir), zap.Error(err))
		fs.unavailable = true
	}
	return fs
}

func (fs *FileStore) Get(key string) (string, bool) {
	if fs.unavailable {
		return "", false
	}
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (fs *FileStore) Set(key, value string) error {
	if fs.unavailable {
		return ErrStoreUnavailable
	}
	return os.WriteFile(fs.path(key), []byte(value), 0o600)
}

func (fs *FileStore) Delete(key string) error {
	if fs.unavailable {
		return ErrStoreUnavailable
	}
	err := os.Remove(fs.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (fs *FileStore) path(key string) string {
	// Keys are fixed identifiers ("shopping-cart", "access_token"); the
	// replacement only guards against a stray separator.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(fs.dir, safe)
}
