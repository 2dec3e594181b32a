package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/psycheverse/creator-admin-api/internal/dto"
	"github.com/psycheverse/creator-admin-api/internal/models"
	appErrors "github.com/psycheverse/creator-admin-api/pkg/errors"
)

type settingRepository interface {
	GetAll(ctx context.Context) ([]models.Setting, error)
	SetMany(ctx context.Context, values map[string]string) error
}

// SettingService manages the flat key/value settings store.
type SettingService struct {
	repo      settingRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingService constructs a SettingService.
func NewSettingService(repo settingRepository, validate *validator.Validate, logger *zap.Logger) *SettingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingService{repo: repo, validator: validate, logger: logger}
}

// List returns every stored setting as a flat key/value object. An empty
// store yields an empty object, not an error.
func (s *SettingService) List(ctx context.Context) (dto.SettingsResponse, error) {
	settings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to list settings")
	}
	result := make(dto.SettingsResponse, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}

// Update upserts the supplied key/value pairs and returns the full store
// afterwards. Keys not present in the request are left untouched.
func (s *SettingService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid settings payload")
	}
	if err := s.repo.SetMany(ctx, req.Settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to update settings")
	}
	return s.List(ctx)
}
