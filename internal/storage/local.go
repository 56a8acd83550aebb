package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mochwana/aesi-web/internal/models"
)

// LocalStore persists assets on disk under <staticDir>/images/<category>/
// and serves them through the static file route.
type LocalStore struct {
	staticDir string
	maxSize   int64
}

// NewLocalStore returns a disk-backed asset store.
func NewLocalStore(staticDir string, maxSize int64) *LocalStore {
	return &LocalStore{staticDir: staticDir, maxSize: maxSize}
}

// Store saves the payload under a timestamped name derived from the hint.
func (s *LocalStore) Store(ctx context.Context, category models.ImageCategory, filenameHint string, data []byte) (*Object, error) {
	if err := ValidateUpload(filenameHint, int64(len(data)), s.maxSize); err != nil {
		return nil, err
	}
	filename := TimestampedFilename(category, filenameHint, time.Now())
	return s.save(category, filename, data)
}

// StoreAs saves the payload under an exact filename, overwriting a
// previous file of the same name.
func (s *LocalStore) StoreAs(ctx context.Context, category models.ImageCategory, filename string, data []byte) (*Object, error) {
	if err := ValidateUpload(filename, int64(len(data)), s.maxSize); err != nil {
		return nil, err
	}
	return s.save(category, SanitizeFilename(filename), data)
}

// Replace stores the payload under a fresh timestamped name, then removes
// the previous file. A failed write leaves the old file in place.
func (s *LocalStore) Replace(ctx context.Context, category models.ImageCategory, oldFilename, filenameHint string, data []byte) (*Object, error) {
	obj, err := s.Store(ctx, category, filenameHint, data)
	if err != nil {
		return nil, err
	}
	if obj.Filename != SanitizeFilename(oldFilename) {
		if _, err := s.Delete(ctx, category, oldFilename); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// Delete removes a stored file, reporting whether it existed.
func (s *LocalStore) Delete(ctx context.Context, category models.ImageCategory, filename string) (bool, error) {
	path := filepath.Join(s.categoryDir(category), SanitizeFilename(filename))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete asset: %w", err)
	}
	return true, nil
}

// List scans the category directory, filtered by the extension allowlist
// and sorted by modification time descending.
func (s *LocalStore) List(ctx context.Context, category models.ImageCategory) ([]ObjectInfo, error) {
	dir := s.categoryDir(category)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ObjectInfo{}, nil
		}
		return nil, fmt.Errorf("list assets: %w", err)
	}
	infos := []ObjectInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !AllowedFilename(entry.Name()) {
			continue
		}
		stat, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat asset: %w", err)
		}
		infos = append(infos, ObjectInfo{
			Filename: entry.Name(),
			URL:      s.publicURL(category, entry.Name()),
			Size:     stat.Size(),
			Modified: stat.ModTime(),
		})
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Modified.After(infos[j].Modified)
	})
	return infos, nil
}

func (s *LocalStore) save(category models.ImageCategory, filename string, data []byte) (*Object, error) {
	dir := s.categoryDir(category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare asset directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return nil, fmt.Errorf("write asset: %w", err)
	}
	return &Object{
		Filename: filename,
		URL:      s.publicURL(category, filename),
		Size:     int64(len(data)),
	}, nil
}

func (s *LocalStore) categoryDir(category models.ImageCategory) string {
	return filepath.Join(s.staticDir, "images", string(category))
}

func (s *LocalStore) publicURL(category models.ImageCategory, filename string) string {
	return fmt.Sprintf("/static/images/%s/%s", category, filename)
}
