// Package media stores product images uploaded through the admin API.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/config"
)

var allowedExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Store persists uploaded images and returns the public reference that is
// saved on the product.
type Store interface {
	Save(ctx context.Context, contentType string, size int64, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

// LocalStore keeps images on local disk and serves them under PublicURL.
type LocalStore struct {
	dir       string
	publicURL string
	maxBytes  int64
}

func NewLocalStore(cfg config.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: cfg.Dir, publicURL: cfg.PublicURL, maxBytes: cfg.MaxBytes}, nil
}

func (s *LocalStore) MaxBytes() int64 {
	return s.maxBytes
}

func (s *LocalStore) Save(_ context.Context, contentType string, size int64, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperr.Validation("image", "Only image files are allowed")
	}
	ext, ok := allowedExtensions[contentType]
	if !ok {
		return "", apperr.Validation("image", "Unsupported image format; use jpg, png, webp or gif")
	}
	if size > s.maxBytes {
		return "", apperr.Validation("image", fmt.Sprintf("File too large. Maximum size is %dMB", s.maxBytes/(1024*1024)))
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(r, s.maxBytes+1))
	if err == nil && written > s.maxBytes {
		err = apperr.Validation("image", fmt.Sprintf("File too large. Maximum size is %dMB", s.maxBytes/(1024*1024)))
	}
	if err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}

	return s.publicURL + "/" + name, nil
}

// Delete removes a previously saved image. References that were not
// produced by this store are ignored.
func (s *LocalStore) Delete(_ context.Context, ref string) error {
	if ref == "" || !strings.HasPrefix(ref, s.publicURL+"/") {
		return nil
	}
	name := path.Base(ref)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
