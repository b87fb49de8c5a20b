package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"inkwell/internal/filex"
)

// FileBackend stores each collection as a JSON document in a data directory.
// Writes go to a temp file first and are renamed into place, so a crashed
// write never leaves a truncated document behind.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileBackend{dir: abs}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return data, nil
}

func (b *FileBackend) Write(ctx context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, key+"-*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, b.path(key)); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
