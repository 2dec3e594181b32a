package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psycheverse/creator-admin-api/internal/dto"
	"github.com/psycheverse/creator-admin-api/internal/models"
	appErrors "github.com/psycheverse/creator-admin-api/pkg/errors"
)

type settingRepoStub struct {
	values  map[string]string
	listErr error
	setErr  error
}

func (s *settingRepoStub) GetAll(ctx context.Context) ([]models.Setting, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	result := make([]models.Setting, 0, len(s.values))
	for key, value := range s.values {
		result = append(result, models.Setting{Key: key, Value: value, UpdatedAt: time.Now()})
	}
	return result, nil
}

func (s *settingRepoStub) SetMany(ctx context.Context, values map[string]string) error {
	if s.setErr != nil {
		return s.setErr
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	for key, value := range values {
		s.values[key] = value
	}
	return nil
}

func TestSettingServiceListEmptyStore(t *testing.T) {
	svc := NewSettingService(&settingRepoStub{}, validator.New(), nil)
	settings, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, settings)
	assert.Empty(t, settings)
}

func TestSettingServiceUpdateMergesKeys(t *testing.T) {
	repo := &settingRepoStub{values: map[string]string{"site_title": "Old", "tagline": "keep me"}}
	svc := NewSettingService(repo, validator.New(), nil)

	settings, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{
		Settings: map[string]string{"site_title": "Psycheverse"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Psycheverse", settings["site_title"])
	assert.Equal(t, "keep me", settings["tagline"])
}

func TestSettingServiceUpdateRejectsEmptyPayload(t *testing.T) {
	svc := NewSettingService(&settingRepoStub{}, validator.New(), nil)
	_, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSettingServiceStoreFailure(t *testing.T) {
	repo := &settingRepoStub{listErr: errors.New("connection refused")}
	svc := NewSettingService(repo, validator.New(), nil)
	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStoreUnavailable.Code, appErrors.FromError(err).Code)
}
