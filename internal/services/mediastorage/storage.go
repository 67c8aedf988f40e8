// Package mediastorage persists raw media bytes and hands back a stable
// reference. Exactly one strategy is active per deployment, chosen from
// settings at startup.
package mediastorage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Ujjwal-John/MetaWhatsapp/internal/config"
)

const (
	DriverLocal      = "local"
	DriverCloudinary = "cloudinary"
)

// Object is the result of persisting media bytes: a human-readable
// reference (relative path or public URL) and the storage-layer identifier.
type Object struct {
	Reference string
	ID        string
}

type Storage interface {
	Persist(ctx context.Context, data []byte, mimeType string) (Object, error)
}

// NewFromSettings selects the active storage strategy. An empty driver
// defaults to local disk.
func NewFromSettings(settings *config.Settings, client *http.Client) (Storage, error) {
	switch settings.StorageDriver {
	case DriverLocal, "":
		return NewLocal(settings.UploadDir)
	case DriverCloudinary:
		return NewCloudinary(settings, client), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", settings.StorageDriver)
	}
}

func extensionForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".bin"
	}
}
