// Package storage holds the binary asset backends. Records reference
// assets by URL only; metadata lives in the record store.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// Object describes a stored asset.
type Object struct {
	Filename string
	URL      string
	Size     int64
}

// ObjectInfo describes a listed asset.
type ObjectInfo struct {
	Filename string
	URL      string
	Size     int64
	Modified time.Time
}

// AssetStore abstracts binary file storage, local disk or remote object
// store.
type AssetStore interface {
	// Store saves the payload under a unique timestamped name derived
	// from the hint and returns the public object.
	Store(ctx context.Context, category models.ImageCategory, filenameHint string, data []byte) (*Object, error)
	// StoreAs saves the payload under an exact filename, overwriting any
	// previous object of the same name.
	StoreAs(ctx context.Context, category models.ImageCategory, filename string, data []byte) (*Object, error)
	// Replace deletes the previous object and stores the payload under a
	// fresh timestamped name.
	Replace(ctx context.Context, category models.ImageCategory, oldFilename, filenameHint string, data []byte) (*Object, error)
	// Delete removes an object, reporting whether it existed.
	Delete(ctx context.Context, category models.ImageCategory, filename string) (bool, error)
	// List enumerates the stored objects of a category, newest first.
	List(ctx context.Context, category models.ImageCategory) ([]ObjectInfo, error)
}

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// AllowedFilename reports whether the filename carries an accepted image
// extension, case-insensitively.
func AllowedFilename(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(path.Ext(filename))]
	return ok
}

// Ext returns the lower-cased extension without the leading dot.
func Ext(filename string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
}

// SanitizeFilename strips path components and anything outside a
// conservative character set, so client-supplied names are safe to join
// into storage paths.
func SanitizeFilename(filename string) string {
	filename = path.Base(strings.ReplaceAll(filename, "\\", "/"))
	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// TimestampedFilename derives the unique stored name for an upload:
// category tag, timestamp, then the sanitized client name.
func TimestampedFilename(category models.ImageCategory, hint string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s", category, now.Format("20060102_150405"), SanitizeFilename(hint))
}

// ValidateUpload rejects disallowed extensions and oversized payloads
// before any storage I/O happens.
func ValidateUpload(filename string, size int64, maxSize int64) error {
	if !AllowedFilename(filename) {
		return appErrors.ErrInvalidExtension
	}
	if maxSize > 0 && size > maxSize {
		return appErrors.ErrPayloadTooLarge
	}
	return nil
}

// ContentTypeByExt maps the accepted extensions to their MIME types.
func ContentTypeByExt(filename string) string {
	switch Ext(filename) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
