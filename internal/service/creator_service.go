package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/psycheverse/creator-admin-api/internal/dto"
	"github.com/psycheverse/creator-admin-api/internal/models"
	"github.com/psycheverse/creator-admin-api/internal/repository"
	appErrors "github.com/psycheverse/creator-admin-api/pkg/errors"
)

const statsCachePattern = "stats:*"

type creatorRepository interface {
	Create(ctx context.Context, creator *models.Creator) error
	FindByID(ctx context.Context, id int64) (*models.Creator, error)
	List(ctx context.Context) ([]models.Creator, error)
	UpdateFields(ctx context.Context, id int64, update repository.CreatorUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type avatarStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
	Delete(filename string) error
}

type statsInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}

// CreatorServiceConfig tunes upload handling and URL construction.
type CreatorServiceConfig struct {
	AvatarPublicPath string
	MaxAvatarBytes   int64
	AllowedMIMEs     []string
}

// CreatorService orchestrates the creator catalog workflows.
type CreatorService struct {
	repo      creatorRepository
	storage   avatarStorage
	cache     statsInvalidator
	validator *validator.Validate
	logger    *zap.Logger
	cfg       CreatorServiceConfig
}

// NewCreatorService constructs a CreatorService.
func NewCreatorService(repo creatorRepository, storage avatarStorage, cache statsInvalidator, validate *validator.Validate, logger *zap.Logger, cfg CreatorServiceConfig) *CreatorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.AvatarPublicPath == "" {
		cfg.AvatarPublicPath = "/uploads"
	}
	if cfg.MaxAvatarBytes <= 0 {
		cfg.MaxAvatarBytes = 5 << 20
	}
	return &CreatorService{
		repo:      repo,
		storage:   storage,
		cache:     cache,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// List returns the full catalog, newest first.
func (s *CreatorService) List(ctx context.Context) ([]models.Creator, error) {
	creators, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to list creators")
	}
	if creators == nil {
		creators = []models.Creator{}
	}
	return creators, nil
}

// Get fetches a single creator by id.
func (s *CreatorService) Get(ctx context.Context, id int64) (*models.Creator, error) {
	creator, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "creator not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to get creator")
	}
	return creator, nil
}

// Create registers a new creator, filling catalog defaults for absent fields.
func (s *CreatorService) Create(ctx context.Context, req dto.CreateCreatorRequest) (*models.Creator, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid creator payload")
	}

	creator := &models.Creator{
		DisplayName: strings.TrimSpace(req.DisplayName),
		Description: req.Description,
		AvatarURL:   req.AvatarURL,
		Status:      models.CreatorStatusActive,
		Platforms:   models.PlatformList{},
	}
	if req.Status != nil {
		creator.Status = *req.Status
	}
	if req.Viewers != nil {
		creator.Viewers = *req.Viewers
	}
	if req.IsFeatured != nil {
		creator.IsFeatured = req.IsFeatured.Bool()
	}
	if req.FeaturedPriority != nil {
		creator.FeaturedPriority = *req.FeaturedPriority
	}
	if req.IsPaidMember != nil {
		creator.IsPaidMember = req.IsPaidMember.Bool()
	}
	if req.Platforms != nil {
		creator.Platforms = models.PlatformList(req.Platforms)
	}

	if err := s.repo.Create(ctx, creator); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to create creator")
	}

	s.invalidateStats(ctx)
	return creator, nil
}

// Update applies a partial update. An empty payload is rejected before any
// store access; a missing record is detected from the write itself.
func (s *CreatorService) Update(ctx context.Context, id int64, req dto.UpdateCreatorRequest) (*models.Creator, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid update payload")
	}

	update := buildCreatorUpdate(req)
	if update.Empty() {
		return nil, appErrors.Clone(appErrors.ErrNoFieldsProvided, "no fields provided for update")
	}

	affected, err := s.repo.UpdateFields(ctx, id, update)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to update creator")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "creator not found")
	}

	s.invalidateStats(ctx)
	return s.Get(ctx, id)
}

// Delete removes a creator and cleans up its stored avatar best effort.
func (s *CreatorService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load creator")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to delete creator")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "creator not found")
	}

	if existing != nil {
		s.removeStoredAvatar(existing.AvatarURL)
	}
	s.invalidateStats(ctx)
	return nil
}

// SetAvatar stores the uploaded image and points the record at it. The file
// is written before the record update so a failed write never leaves the
// record referencing a missing file; on update failure the fresh file is
// removed again.
func (s *CreatorService) SetAvatar(ctx context.Context, id int64, filename, contentType string, size int64, r io.Reader) (*dto.AvatarUploadResponse, error) {
	if size > s.cfg.MaxAvatarBytes {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("avatar exceeds %d bytes", s.cfg.MaxAvatarBytes))
	}
	if err := s.checkAvatarType(filename, contentType); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "creator not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load creator")
	}

	stored := path.Join("avatars", uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
	if _, err := s.storage.SaveStream(stored, r); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store avatar")
	}

	avatarURL := s.cfg.AvatarPublicPath + "/" + stored
	update := repository.CreatorUpdate{AvatarURL: &avatarURL}
	affected, err := s.repo.UpdateFields(ctx, id, update)
	if err != nil || affected == 0 {
		if cleanupErr := s.storage.Delete(stored); cleanupErr != nil {
			s.logger.Warn("failed to remove orphaned avatar", zap.String("file", stored), zap.Error(cleanupErr))
		}
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to update avatar")
		}
		return nil, appErrors.Clone(appErrors.ErrNotFound, "creator not found")
	}

	s.removeStoredAvatar(existing.AvatarURL)
	return &dto.AvatarUploadResponse{AvatarURL: avatarURL}, nil
}

func (s *CreatorService) checkAvatarType(filename, contentType string) error {
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filename))
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	if len(s.cfg.AllowedMIMEs) == 0 {
		return nil
	}
	for _, allowed := range s.cfg.AllowedMIMEs {
		if strings.EqualFold(allowed, contentType) {
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported avatar type %q", contentType))
}

// removeStoredAvatar deletes a previously stored avatar file when the URL
// points into the public upload path. External URLs are left alone.
func (s *CreatorService) removeStoredAvatar(avatarURL *string) {
	if avatarURL == nil || *avatarURL == "" {
		return
	}
	prefix := s.cfg.AvatarPublicPath + "/"
	if !strings.HasPrefix(*avatarURL, prefix) {
		return
	}
	stored := strings.TrimPrefix(*avatarURL, prefix)
	if err := s.storage.Delete(stored); err != nil {
		s.logger.Warn("failed to remove previous avatar", zap.String("file", stored), zap.Error(err))
	}
}

func (s *CreatorService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, statsCachePattern); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}
}

func buildCreatorUpdate(req dto.UpdateCreatorRequest) repository.CreatorUpdate {
	update := repository.CreatorUpdate{
		DisplayName:      req.DisplayName,
		Description:      req.Description,
		AvatarURL:        req.AvatarURL,
		Status:           req.Status,
		Viewers:          req.Viewers,
		FeaturedPriority: req.FeaturedPriority,
	}
	if req.IsFeatured != nil {
		value := req.IsFeatured.Bool()
		update.IsFeatured = &value
	}
	if req.IsPaidMember != nil {
		value := req.IsPaidMember.Bool()
		update.IsPaidMember = &value
	}
	if req.Platforms != nil {
		platforms := models.PlatformList(*req.Platforms)
		update.Platforms = &platforms
	}
	return update
}
