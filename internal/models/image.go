package models

import "time"

// ImageCategory names a page-scoped image bucket.
type ImageCategory string

const (
	CategoryHero     ImageCategory = "hero"
	CategoryAbout    ImageCategory = "about"
	CategoryPrograms ImageCategory = "programs"
	CategoryUploads  ImageCategory = "uploads"
)

// Valid reports whether the category is one of the known buckets.
func (c ImageCategory) Valid() bool {
	switch c {
	case CategoryHero, CategoryAbout, CategoryPrograms, CategoryUploads:
		return true
	}
	return false
}

// ImageRecord is the metadata row for an uploaded image. The record
// store, not a directory scan, is the source of truth for listings; the
// asset store holds only the bytes.
type ImageRecord struct {
	ID         string        `db:"id" json:"id"`
	Filename   string        `db:"filename" json:"filename"`
	URL        string        `db:"url" json:"url"`
	Category   ImageCategory `db:"category" json:"category"`
	Size       int64         `db:"size" json:"size"`
	UploadedAt time.Time     `db:"uploaded_at" json:"uploaded_at"`
}
