package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBlob stores the snapshot in a single local JSON file. Writes go
// through a temp file and rename so a crash never leaves a half-written
// snapshot behind.
type FileBlob struct {
	path string
}

func NewFileBlob(path string) *FileBlob {
	return &FileBlob{path: path}
}

func (b *FileBlob) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("snapshot read: %w", err)
	}
	return data, nil
}

func (b *FileBlob) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return fmt.Errorf("snapshot write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("snapshot write: %w", err)
	}
	if err := os.Rename(name, b.path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("snapshot write: %w", err)
	}
	return nil
}
