package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/storage"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// ProgramStore abstracts persistence for the seeded program set.
type ProgramStore interface {
	List(ctx context.Context) ([]models.Program, error)
	Get(ctx context.Context, id string) (*models.Program, error)
	UpdateImage(ctx context.Context, id, imageURL string) error
}

// ProgramService provides access to the fixed offerings and their image
// replacement flow. Programs themselves are never created or deleted.
type ProgramService struct {
	repo   ProgramStore
	assets storage.AssetStore
	images ImageStore
	cache  *CacheService
	logger *zap.Logger
}

// NewProgramService constructs a program service.
func NewProgramService(repo ProgramStore, assets storage.AssetStore, images ImageStore, cache *CacheService, logger *zap.Logger) *ProgramService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgramService{repo: repo, assets: assets, images: images, cache: cache, logger: logger}
}

// List returns the programs in seed order, through the cache when
// enabled.
func (s *ProgramService) List(ctx context.Context) ([]models.Program, error) {
	var cached []models.Program
	if s.cache.Get(ctx, CacheKeyPrograms, &cached) {
		return cached, nil
	}
	programs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, CacheKeyPrograms, programs)
	return programs, nil
}

// Get returns one program or reports absence.
func (s *ProgramService) Get(ctx context.Context, id string) (*models.Program, error) {
	return s.repo.Get(ctx, id)
}

// UpdateImage replaces a program's image. The stored filename is derived
// from the program name, so re-uploads overwrite in place; the previous
// file is deleted only when its name actually differs.
func (s *ProgramService) UpdateImage(ctx context.Context, id string, up *Upload) (*models.Program, error) {
	program, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !storage.AllowedFilename(up.Filename) {
		return nil, appErrors.ErrInvalidExtension
	}
	filename := fmt.Sprintf("%s.%s", program.ImageBasename(), storage.Ext(up.Filename))

	if old := path.Base(program.ImageURL); program.ImageURL != "" && old != filename {
		if _, err := s.assets.Delete(ctx, models.CategoryPrograms, old); err != nil {
			s.logger.Warn("failed to delete previous program image",
				zap.String("filename", old), zap.Error(err))
		}
		if record, err := s.images.GetByFilename(ctx, models.CategoryPrograms, old); err == nil {
			if _, err := s.images.Delete(ctx, record.ID); err != nil {
				s.logger.Warn("failed to drop previous program image record",
					zap.String("filename", old), zap.Error(err))
			}
		}
	}

	obj, err := s.assets.StoreAs(ctx, models.CategoryPrograms, filename, up.Data)
	if err != nil {
		return nil, err
	}

	if _, err := s.images.GetByFilename(ctx, models.CategoryPrograms, obj.Filename); err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			record := &models.ImageRecord{
				Filename: obj.Filename,
				URL:      obj.URL,
				Category: models.CategoryPrograms,
				Size:     obj.Size,
			}
			if err := s.images.Create(ctx, record); err != nil {
				s.logger.Warn("failed to record program image metadata",
					zap.String("filename", obj.Filename), zap.Error(err))
			}
		}
	}

	if err := s.repo.UpdateImage(ctx, id, obj.URL); err != nil {
		return nil, err
	}
	program.ImageURL = obj.URL
	s.cache.Invalidate(ctx, CacheKeyPrograms)
	return program, nil
}
