// Package storage persists uploaded images on local disk and hands back
// the public relative path recorded on the item.
package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

type ImageStore struct {
	root string
}

// NewImageStore ensures the upload directory exists.
func NewImageStore(root string) (*ImageStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &ImageStore{root: root}, nil
}

// Save writes the uploaded file under a collision-resistant name and
// returns its path relative to the public directory, e.g. "uploads/....jpg".
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	name := "image-" + uuid.NewString() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path.Join(filepath.Base(s.root), name), nil
}
