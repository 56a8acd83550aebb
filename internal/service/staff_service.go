package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/models"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
	"github.com/mochwana/aesi-web/pkg/export"
)

// DefaultStaffImage is the fallback when no portrait is uploaded.
const DefaultStaffImage = "/static/images/staff/default.jpg"

// StaffStore abstracts persistence for staff members.
type StaffStore interface {
	List(ctx context.Context) ([]models.StaffMember, error)
	Get(ctx context.Context, id models.RecordID) (*models.StaffMember, error)
	Create(ctx context.Context, member *models.StaffMember) error
	Update(ctx context.Context, member *models.StaffMember) error
	Delete(ctx context.Context, id models.RecordID) (bool, error)
}

// StaffService provides staff management use cases.
type StaffService struct {
	repo      StaffStore
	images    *ImageService
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStaffService constructs a staff service.
func NewStaffService(repo StaffStore, images *ImageService, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *StaffService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{repo: repo, images: images, cache: cache, validator: validate, logger: logger}
}

// List returns all staff members in insertion order, through the cache
// when enabled.
func (s *StaffService) List(ctx context.Context) ([]models.StaffMember, error) {
	var cached []models.StaffMember
	if s.cache.Get(ctx, CacheKeyStaff, &cached) {
		return cached, nil
	}
	staff, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, CacheKeyStaff, staff)
	return staff, nil
}

// Get returns one staff member or reports absence.
func (s *StaffService) Get(ctx context.Context, id models.RecordID) (*models.StaffMember, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the form, stores an optional portrait, and persists
// the new member with the next free id.
func (s *StaffService) Create(ctx context.Context, form models.StaffForm, up *Upload) (*models.StaffMember, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid staff form")
	}

	imageURL := DefaultStaffImage
	if up != nil && up.Filename != "" {
		record, err := s.images.Upload(ctx, models.CategoryUploads, up)
		if err != nil {
			return nil, err
		}
		imageURL = record.URL
	}

	member := &models.StaffMember{
		Name:        form.Name,
		Title:       form.Title,
		Bio:         form.Bio,
		Role:        models.StaffRole(form.Role),
		Email:       form.Email,
		LinkedInURL: form.LinkedInURL,
		ImageURL:    imageURL,
		Department:  departmentFor(form),
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, CacheKeyStaff)
	return member, nil
}

// Update mutates an existing member in place. An uploaded file replaces
// the portrait; omitting one keeps the current image.
func (s *StaffService) Update(ctx context.Context, id models.RecordID, form models.StaffForm, up *Upload) (*models.StaffMember, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid staff form")
	}

	member, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if up != nil && up.Filename != "" {
		record, err := s.images.Upload(ctx, models.CategoryUploads, up)
		if err != nil {
			return nil, err
		}
		member.ImageURL = record.URL
	}

	member.Name = form.Name
	member.Title = form.Title
	member.Bio = form.Bio
	member.Role = models.StaffRole(form.Role)
	member.Email = form.Email
	member.LinkedInURL = form.LinkedInURL
	member.Department = departmentFor(form)

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, CacheKeyStaff)
	return member, nil
}

// Delete removes a staff member, reporting whether it existed.
func (s *StaffService) Delete(ctx context.Context, id models.RecordID) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.cache.Invalidate(ctx, CacheKeyStaff)
	}
	return removed, nil
}

// ExportDirectory renders the staff directory as "pdf" or "csv".
func (s *StaffService) ExportDirectory(ctx context.Context, format string) ([]byte, string, error) {
	staff, err := s.repo.List(ctx)
	if err != nil {
		return nil, "", err
	}

	table := export.Table{
		Title: "Staff Directory",
		Columns: []export.Column{
			{Header: "Name", Weight: 1.4},
			{Header: "Title", Weight: 1.4},
			{Header: "Role", Weight: 0.9},
			{Header: "Department", Weight: 1.1},
			{Header: "Email", Weight: 1.7},
		},
	}
	for _, m := range staff {
		department := ""
		if m.Department != nil {
			department = *m.Department
		}
		table.Rows = append(table.Rows, []string{m.Name, m.Title, string(m.Role), department, m.Email})
	}

	switch format {
	case "pdf":
		data, err := export.NewPDFExporter().Render(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render staff pdf")
		}
		return data, "application/pdf", nil
	case "csv":
		data, err := export.NewCSVExporter().Render(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render staff csv")
		}
		return data, "text/csv", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}

func departmentFor(form models.StaffForm) *string {
	if models.StaffRole(form.Role) == models.RoleProgramStaff && form.Department != "" {
		department := form.Department
		return &department
	}
	return nil
}
