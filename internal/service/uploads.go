package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mindease/internal/models"

	"github.com/google/uuid"
)

// FileUpload carries the raw bytes of an uploaded file.
type FileUpload struct {
	Filename string
	Content  []byte
}

const maxUploadSizeBytes = 10 * 1024 * 1024

// UploadStore writes uploaded files under a base directory and derives their
// public URLs. Files are served statically at /uploads.
type UploadStore struct {
	dir string
}

// NewUploadStore ensures the upload directory exists and returns the store.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &UploadStore{dir: dir}, nil
}

// Save stores the upload under a collision-free name built from the given
// prefix and returns the public URL path.
func (u *UploadStore) Save(prefix string, upload *FileUpload) (string, error) {
	if upload == nil || len(upload.Content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(upload.Content)) > maxUploadSizeBytes {
		return "", models.NewValidationError(
			fmt.Sprintf("File too large (max %dMB)", maxUploadSizeBytes/(1024*1024)))
	}

	ext := filepath.Ext(upload.Filename)
	name := fmt.Sprintf("%s%d_%s%s", prefix, time.Now().Unix(), uuid.New().String()[:8], ext)
	if err := os.WriteFile(filepath.Join(u.dir, name), upload.Content, 0o644); err != nil {
		return "", models.NewInternalError(err)
	}
	return "/uploads/" + name, nil
}

// Dir returns the base directory uploads are written to.
func (u *UploadStore) Dir() string {
	return u.dir
}
