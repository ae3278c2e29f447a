package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Backend is the key-value substrate a Store writes table blobs to.
// Load returns nil with no error for a key that has never been saved.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// MemoryBackend keeps table blobs in process memory. The default for
// tests and the development server.
type MemoryBackend struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	blob, ok := b.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (b *MemoryBackend) Save(_ context.Context, key string, blob []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	b.blobs[key] = stored
	return nil
}

func (b *MemoryBackend) Ping(context.Context) error { return nil }

func (b *MemoryBackend) Close() error { return nil }

// FileBackend writes each table blob to its own JSON file under a data
// directory. Writes go through a temp file plus rename so a crashed
// write never leaves a half-serialized table behind.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(b.dir, name)
}

func (b *FileBackend) Load(_ context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (b *FileBackend) Save(_ context.Context, key string, blob []byte) error {
	path := b.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (b *FileBackend) Ping(context.Context) error {
	_, err := os.Stat(b.dir)
	return err
}

func (b *FileBackend) Close() error { return nil }
