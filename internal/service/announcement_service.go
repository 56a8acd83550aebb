package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// DefaultAnnouncementImage is the fallback when no image is uploaded.
const DefaultAnnouncementImage = "/static/images/announcements/default.jpg"

// AnnouncementStore abstracts persistence for announcements.
type AnnouncementStore interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Get(ctx context.Context, id models.RecordID) (*models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id models.RecordID) (bool, error)
}

// AnnouncementService provides announcement use cases.
type AnnouncementService struct {
	repo      AnnouncementStore
	images    *ImageService
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService constructs an announcement service.
func NewAnnouncementService(repo AnnouncementStore, images *ImageService, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{repo: repo, images: images, cache: cache, validator: validate, logger: logger}
}

// List returns all announcements, newest first, through the cache when
// enabled.
func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	var cached []models.Announcement
	if s.cache.Get(ctx, CacheKeyAnnouncements, &cached) {
		return cached, nil
	}
	announcements, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, CacheKeyAnnouncements, announcements)
	return announcements, nil
}

// Get returns one announcement or reports absence.
func (s *AnnouncementService) Get(ctx context.Context, id models.RecordID) (*models.Announcement, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the form, stores an optional image, and persists the
// new announcement with the next free id.
func (s *AnnouncementService) Create(ctx context.Context, form models.AnnouncementForm, up *Upload) (*models.Announcement, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement form")
	}

	imageURL := DefaultAnnouncementImage
	if up != nil && up.Filename != "" {
		record, err := s.images.Upload(ctx, models.CategoryUploads, up)
		if err != nil {
			return nil, err
		}
		imageURL = record.URL
	}

	announcement := &models.Announcement{
		Title:    form.Title,
		Excerpt:  form.Excerpt,
		Category: form.Category,
		Date:     time.Now().UTC(),
		ImageURL: imageURL,
		Featured: form.Featured,
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, CacheKeyAnnouncements)
	return announcement, nil
}

// Update mutates an existing announcement in place. An uploaded file
// replaces the image URL; omitting one keeps the current image.
func (s *AnnouncementService) Update(ctx context.Context, id models.RecordID, form models.AnnouncementForm, up *Upload) (*models.Announcement, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement form")
	}

	announcement, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if up != nil && up.Filename != "" {
		record, err := s.images.Upload(ctx, models.CategoryUploads, up)
		if err != nil {
			return nil, err
		}
		announcement.ImageURL = record.URL
	}

	announcement.Title = form.Title
	announcement.Excerpt = form.Excerpt
	announcement.Category = form.Category
	announcement.Featured = form.Featured

	if err := s.repo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, CacheKeyAnnouncements)
	return announcement, nil
}

// Delete removes an announcement, reporting whether it existed.
func (s *AnnouncementService) Delete(ctx context.Context, id models.RecordID) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.cache.Invalidate(ctx, CacheKeyAnnouncements)
	}
	return removed, nil
}
