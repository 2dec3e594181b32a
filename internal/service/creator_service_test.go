package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psycheverse/creator-admin-api/internal/dto"
	"github.com/psycheverse/creator-admin-api/internal/models"
	"github.com/psycheverse/creator-admin-api/internal/repository"
	appErrors "github.com/psycheverse/creator-admin-api/pkg/errors"
)

type creatorRepoStub struct {
	creators      map[int64]*models.Creator
	createErr     error
	updateErr     error
	updateCalls   int
	updateRows    int64
	lastUpdate    repository.CreatorUpdate
	deleteErr     error
	deleteMissing bool
}

func (s *creatorRepoStub) Create(ctx context.Context, creator *models.Creator) error {
	if s.createErr != nil {
		return s.createErr
	}
	creator.ID = 1
	return nil
}

func (s *creatorRepoStub) FindByID(ctx context.Context, id int64) (*models.Creator, error) {
	if creator, ok := s.creators[id]; ok {
		copied := *creator
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (s *creatorRepoStub) List(ctx context.Context) ([]models.Creator, error) {
	result := make([]models.Creator, 0, len(s.creators))
	for _, creator := range s.creators {
		result = append(result, *creator)
	}
	return result, nil
}

func (s *creatorRepoStub) UpdateFields(ctx context.Context, id int64, update repository.CreatorUpdate) (int64, error) {
	s.updateCalls++
	s.lastUpdate = update
	if s.updateErr != nil {
		return 0, s.updateErr
	}
	return s.updateRows, nil
}

func (s *creatorRepoStub) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteErr != nil {
		return false, s.deleteErr
	}
	return !s.deleteMissing, nil
}

type storageStub struct {
	saved   []string
	deleted []string
	saveErr error
}

func (s *storageStub) SaveStream(filename string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = append(s.saved, filename)
	return filename, nil
}

func (s *storageStub) Delete(filename string) error {
	s.deleted = append(s.deleted, filename)
	return nil
}

type invalidatorStub struct {
	patterns []string
}

func (s *invalidatorStub) Invalidate(ctx context.Context, pattern string) error {
	s.patterns = append(s.patterns, pattern)
	return nil
}

func newCreatorService(repo *creatorRepoStub, store *storageStub, cache *invalidatorStub) *CreatorService {
	return NewCreatorService(repo, store, cache, validator.New(), nil, CreatorServiceConfig{
		AvatarPublicPath: "/uploads",
		MaxAvatarBytes:   1 << 20,
		AllowedMIMEs:     []string{"image/png", "image/jpeg"},
	})
}

func TestCreatorServiceCreateDefaults(t *testing.T) {
	repo := &creatorRepoStub{}
	cache := &invalidatorStub{}
	svc := newCreatorService(repo, &storageStub{}, cache)

	creator, err := svc.Create(context.Background(), dto.CreateCreatorRequest{DisplayName: "  Nova "})
	require.NoError(t, err)
	assert.Equal(t, "Nova", creator.DisplayName)
	assert.Equal(t, models.CreatorStatusActive, creator.Status)
	assert.Zero(t, creator.Viewers)
	assert.False(t, creator.IsFeatured)
	assert.Equal(t, models.PlatformList{}, creator.Platforms)
	assert.Equal(t, []string{"stats:*"}, cache.patterns)
}

func TestCreatorServiceCreateRequiresName(t *testing.T) {
	svc := newCreatorService(&creatorRepoStub{}, &storageStub{}, &invalidatorStub{})
	_, err := svc.Create(context.Background(), dto.CreateCreatorRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreatorServiceUpdateEmptyPayloadSkipsStore(t *testing.T) {
	repo := &creatorRepoStub{updateRows: 1}
	svc := newCreatorService(repo, &storageStub{}, &invalidatorStub{})

	_, err := svc.Update(context.Background(), 1, dto.UpdateCreatorRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNoFieldsProvided.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.updateCalls)
}

func TestCreatorServiceUpdateMissingCreator(t *testing.T) {
	repo := &creatorRepoStub{updateRows: 0}
	svc := newCreatorService(repo, &storageStub{}, &invalidatorStub{})

	name := "Vega"
	_, err := svc.Update(context.Background(), 42, dto.UpdateCreatorRequest{DisplayName: &name})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestCreatorServiceUpdateCoercesBooleans(t *testing.T) {
	repo := &creatorRepoStub{
		updateRows: 1,
		creators:   map[int64]*models.Creator{1: {ID: 1, DisplayName: "Nova"}},
	}
	svc := newCreatorService(repo, &storageStub{}, &invalidatorStub{})

	featured := dto.BoolValue(true)
	zero := int64(0)
	_, err := svc.Update(context.Background(), 1, dto.UpdateCreatorRequest{
		IsFeatured: &featured,
		Viewers:    &zero,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastUpdate.IsFeatured)
	assert.True(t, *repo.lastUpdate.IsFeatured)
	require.NotNil(t, repo.lastUpdate.Viewers)
	assert.Zero(t, *repo.lastUpdate.Viewers)
	assert.Nil(t, repo.lastUpdate.DisplayName)
}

func TestCreatorServiceDeleteMissing(t *testing.T) {
	repo := &creatorRepoStub{deleteMissing: true}
	svc := newCreatorService(repo, &storageStub{}, &invalidatorStub{})

	err := svc.Delete(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCreatorServiceDeleteRemovesStoredAvatar(t *testing.T) {
	avatar := "/uploads/avatars/old.png"
	repo := &creatorRepoStub{
		creators: map[int64]*models.Creator{1: {ID: 1, AvatarURL: &avatar}},
	}
	store := &storageStub{}
	svc := newCreatorService(repo, store, &invalidatorStub{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []string{"avatars/old.png"}, store.deleted)
}

func TestCreatorServiceSetAvatarReplacesPrevious(t *testing.T) {
	previous := "/uploads/avatars/old.png"
	repo := &creatorRepoStub{
		updateRows: 1,
		creators:   map[int64]*models.Creator{1: {ID: 1, AvatarURL: &previous}},
	}
	store := &storageStub{}
	svc := newCreatorService(repo, store, &invalidatorStub{})

	result, err := svc.SetAvatar(context.Background(), 1, "new.png", "image/png", 128, bytes.NewReader([]byte("img")))
	require.NoError(t, err)
	require.Len(t, store.saved, 1)
	assert.True(t, strings.HasPrefix(store.saved[0], "avatars/"))
	assert.Equal(t, "/uploads/"+store.saved[0], result.AvatarURL)
	assert.Equal(t, []string{"avatars/old.png"}, store.deleted)
}

func TestCreatorServiceSetAvatarCleansUpOnUpdateFailure(t *testing.T) {
	repo := &creatorRepoStub{
		updateErr: errors.New("connection reset"),
		creators:  map[int64]*models.Creator{1: {ID: 1}},
	}
	store := &storageStub{}
	svc := newCreatorService(repo, store, &invalidatorStub{})

	_, err := svc.SetAvatar(context.Background(), 1, "new.png", "image/png", 128, bytes.NewReader([]byte("img")))
	require.Error(t, err)
	require.Len(t, store.saved, 1)
	assert.Equal(t, store.saved, store.deleted)
}

func TestCreatorServiceSetAvatarRejectsType(t *testing.T) {
	repo := &creatorRepoStub{creators: map[int64]*models.Creator{1: {ID: 1}}}
	svc := newCreatorService(repo, &storageStub{}, &invalidatorStub{})

	_, err := svc.SetAvatar(context.Background(), 1, "payload.exe", "application/octet-stream", 128, bytes.NewReader(nil))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreatorServiceSetAvatarRejectsOversize(t *testing.T) {
	svc := newCreatorService(&creatorRepoStub{}, &storageStub{}, &invalidatorStub{})

	_, err := svc.SetAvatar(context.Background(), 1, "big.png", "image/png", 10<<20, bytes.NewReader(nil))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreatorServiceGetMissing(t *testing.T) {
	svc := newCreatorService(&creatorRepoStub{}, &storageStub{}, &invalidatorStub{})
	_, err := svc.Get(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
