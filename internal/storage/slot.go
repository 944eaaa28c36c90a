// Package storage provides the persistent key-value slots the journal
// serializes its whole collection into: a local JSON file, a SQLite table,
// an S3 object, or process memory.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Slot is a whole-value key-value store. Get returns (nil, nil) when the key
// has never been written. Set replaces any prior value.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Backuper is implemented by slots that can preserve an unreadable value
// before it is overwritten.
type Backuper interface {
	Backup(ctx context.Context, key string) error
}

// Closer is implemented by slots holding an open connection.
type Closer interface {
	Close() error
}

// Backend names accepted by configuration and the --backend flag.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendS3     = "s3"
	BackendMemory = "memory"
)

// BaseDir returns the root data directory (~/.tgj).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tgj"), nil
}
