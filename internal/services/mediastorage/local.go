package mediastorage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const defaultUploadDir = "uploads"

// Local writes media bytes to a directory on disk.
type Local struct {
	dir string
}

// NewLocal creates the upload directory if it does not exist.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		dir = defaultUploadDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %q: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Persist writes the bytes under a timestamp-plus-uuid name so repeated
// deliveries of the same media never collide.
func (l *Local) Persist(_ context.Context, data []byte, mimeType string) (Object, error) {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), extensionForMime(mimeType))
	path := filepath.Join(l.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Object{}, fmt.Errorf("failed to write media file %q: %w", path, err)
	}

	return Object{Reference: path, ID: name}, nil
}
