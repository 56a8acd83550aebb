package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/storage"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// Upload carries one file read from a multipart form.
type Upload struct {
	Filename string
	Size     int64
	Data     []byte
}

// ImageStore abstracts persistence for image metadata records.
type ImageStore interface {
	ListByCategory(ctx context.Context, category models.ImageCategory) ([]models.ImageRecord, error)
	Get(ctx context.Context, id string) (*models.ImageRecord, error)
	GetByFilename(ctx context.Context, category models.ImageCategory, filename string) (*models.ImageRecord, error)
	Create(ctx context.Context, image *models.ImageRecord) error
	Delete(ctx context.Context, id string) (bool, error)
}

// ImageService owns the upload pipeline: blobs go to the asset store,
// metadata goes to the record store, and listings run against the
// metadata only.
type ImageService struct {
	repo    ImageStore
	assets  storage.AssetStore
	metrics *MetricsService
	logger  *zap.Logger
}

// NewImageService constructs an image service.
func NewImageService(repo ImageStore, assets storage.AssetStore, metrics *MetricsService, logger *zap.Logger) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageService{repo: repo, assets: assets, metrics: metrics, logger: logger}
}

// List returns the image records of a category, newest first.
func (s *ImageService) List(ctx context.Context, category models.ImageCategory) ([]models.ImageRecord, error) {
	return s.repo.ListByCategory(ctx, category)
}

// Get returns one image record or reports absence.
func (s *ImageService) Get(ctx context.Context, id string) (*models.ImageRecord, error) {
	return s.repo.Get(ctx, id)
}

// Upload stores the payload and records its metadata.
func (s *ImageService) Upload(ctx context.Context, category models.ImageCategory, up *Upload) (*models.ImageRecord, error) {
	obj, err := s.assets.Store(ctx, category, up.Filename, up.Data)
	if err != nil {
		s.recordOutcome(category, "rejected")
		return nil, err
	}

	record := &models.ImageRecord{
		Filename: obj.Filename,
		URL:      obj.URL,
		Category: category,
		Size:     obj.Size,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	s.recordOutcome(category, "accepted")
	return record, nil
}

// Replace swaps an existing object for a fresh upload, keeping metadata
// in step with the blobs.
func (s *ImageService) Replace(ctx context.Context, category models.ImageCategory, oldFilename string, up *Upload) (*models.ImageRecord, error) {
	obj, err := s.assets.Replace(ctx, category, oldFilename, up.Filename, up.Data)
	if err != nil {
		s.recordOutcome(category, "rejected")
		return nil, err
	}

	if old, err := s.repo.GetByFilename(ctx, category, oldFilename); err == nil {
		if _, err := s.repo.Delete(ctx, old.ID); err != nil {
			s.logger.Warn("failed to drop replaced image record",
				zap.String("filename", oldFilename), zap.Error(err))
		}
	}

	record := &models.ImageRecord{
		Filename: obj.Filename,
		URL:      obj.URL,
		Category: category,
		Size:     obj.Size,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	s.recordOutcome(category, "accepted")
	return record, nil
}

// Delete removes an image record and its blob. Blob removal is
// best-effort: a failed remote delete leaves an orphan object behind
// rather than keeping the record alive.
func (s *ImageService) Delete(ctx context.Context, id string) (bool, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if _, err := s.assets.Delete(ctx, record.Category, record.Filename); err != nil {
		s.logger.Warn("asset delete failed, leaving orphan blob",
			zap.String("filename", record.Filename), zap.Error(err))
	}

	return s.repo.Delete(ctx, id)
}

func (s *ImageService) recordOutcome(category models.ImageCategory, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordUpload(string(category), outcome)
	}
}
