package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	tmpDir    = "tmp"
	housesDir = "houses"
	urlPrefix = "/uploads/"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ErrUnsupportedImageType is returned for uploads outside the extension allow-list.
var ErrUnsupportedImageType = fmt.Errorf("unsupported image type")

// ImageStore persists uploaded listing images on disk. New uploads land in a
// provisional directory because the listing id is unknown until the record is
// inserted; Relocate moves them into the listing-scoped directory afterwards.
type ImageStore struct {
	root string
}

// NewImageStore creates a store rooted at dir, creating the provisional
// directory eagerly.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, tmpDir), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{root: dir}, nil
}

// SaveUpload stores one multipart file under the provisional directory and
// returns its canonical URL path.
func (s *ImageStore) SaveUpload(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedImageType
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.root, tmpDir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return urlPrefix + tmpDir + "/" + name, nil
}

// Relocate moves provisional paths into the listing-scoped directory and
// returns the final paths. Paths already outside the provisional directory
// pass through untouched, so update flows can reuse existing images. The
// second return reports whether anything actually moved.
func (s *ImageStore) Relocate(paths []string, houseID uint) ([]string, bool, error) {
	if len(paths) == 0 {
		return paths, false, nil
	}

	houseDir := fmt.Sprintf("%s/%d", housesDir, houseID)
	moved := false
	final := make([]string, 0, len(paths))
	for _, p := range paths {
		if !strings.HasPrefix(p, urlPrefix+tmpDir+"/") {
			final = append(final, p)
			continue
		}
		name := path.Base(p)
		if err := os.MkdirAll(filepath.Join(s.root, housesDir, fmt.Sprint(houseID)), 0o755); err != nil {
			return final, moved, fmt.Errorf("create house dir: %w", err)
		}
		oldPath := filepath.Join(s.root, tmpDir, name)
		newPath := filepath.Join(s.root, housesDir, fmt.Sprint(houseID), name)
		if err := os.Rename(oldPath, newPath); err != nil {
			return final, moved, fmt.Errorf("relocate image %s: %w", name, err)
		}
		final = append(final, urlPrefix+houseDir+"/"+name)
		moved = true
	}
	return final, moved, nil
}

// RemoveHouseDir deletes the listing's image directory. Callers treat a
// failure as a warning, not a fatal error.
func (s *ImageStore) RemoveHouseDir(houseID uint) error {
	return os.RemoveAll(filepath.Join(s.root, housesDir, fmt.Sprint(houseID)))
}
