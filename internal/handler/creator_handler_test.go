package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psycheverse/creator-admin-api/internal/dto"
	"github.com/psycheverse/creator-admin-api/internal/models"
	appErrors "github.com/psycheverse/creator-admin-api/pkg/errors"
)

type creatorServiceMock struct {
	listResp  []models.Creator
	getResp   *models.Creator
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	lastID    int64
}

func (m *creatorServiceMock) List(ctx context.Context) ([]models.Creator, error) {
	return m.listResp, nil
}

func (m *creatorServiceMock) Get(ctx context.Context, id int64) (*models.Creator, error) {
	m.lastID = id
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResp, nil
}

func (m *creatorServiceMock) Create(ctx context.Context, req dto.CreateCreatorRequest) (*models.Creator, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.Creator{ID: 1, DisplayName: req.DisplayName, Status: models.CreatorStatusActive}, nil
}

func (m *creatorServiceMock) Update(ctx context.Context, id int64, req dto.UpdateCreatorRequest) (*models.Creator, error) {
	m.lastID = id
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return &models.Creator{ID: id}, nil
}

func (m *creatorServiceMock) Delete(ctx context.Context, id int64) error {
	m.lastID = id
	return m.deleteErr
}

func (m *creatorServiceMock) SetAvatar(ctx context.Context, id int64, filename, contentType string, size int64, r io.Reader) (*dto.AvatarUploadResponse, error) {
	return &dto.AvatarUploadResponse{AvatarURL: "/uploads/avatars/test.png"}, nil
}

func newCreatorTestContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestCreatorHandlerCreate(t *testing.T) {
	mock := &creatorServiceMock{}
	h := NewCreatorHandler(mock)

	body, _ := json.Marshal(dto.CreateCreatorRequest{DisplayName: "Nova"})
	c, w := newCreatorTestContext(t, http.MethodPost, "/creators", body)

	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data models.Creator `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Nova", envelope.Data.DisplayName)
}

func TestCreatorHandlerCreateInvalidBody(t *testing.T) {
	h := NewCreatorHandler(&creatorServiceMock{})
	c, w := newCreatorTestContext(t, http.MethodPost, "/creators", []byte(`{invalid`))

	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatorHandlerUpdateInvalidID(t *testing.T) {
	mock := &creatorServiceMock{}
	h := NewCreatorHandler(mock)
	c, w := newCreatorTestContext(t, http.MethodPatch, "/creators/abc", []byte(`{}`))
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.Update(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, mock.lastID)
}

func TestCreatorHandlerUpdateNotFound(t *testing.T) {
	mock := &creatorServiceMock{updateErr: appErrors.Clone(appErrors.ErrNotFound, "creator not found")}
	h := NewCreatorHandler(mock)

	body, _ := json.Marshal(map[string]string{"display_name": "Vega"})
	c, w := newCreatorTestContext(t, http.MethodPatch, "/creators/42", body)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	h.Update(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(42), mock.lastID)
}

func TestCreatorHandlerUpdateNoFields(t *testing.T) {
	mock := &creatorServiceMock{updateErr: appErrors.ErrNoFieldsProvided}
	h := NewCreatorHandler(mock)

	c, w := newCreatorTestContext(t, http.MethodPatch, "/creators/1", []byte(`{}`))
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	h.Update(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope struct {
		Error *appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrNoFieldsProvided.Code, envelope.Error.Code)
}

func TestCreatorHandlerDelete(t *testing.T) {
	mock := &creatorServiceMock{}
	h := NewCreatorHandler(mock)
	c, w := newCreatorTestContext(t, http.MethodDelete, "/creators/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	h.Delete(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(5), mock.lastID)
}

func TestCreatorHandlerGetNotFound(t *testing.T) {
	mock := &creatorServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "creator not found")}
	h := NewCreatorHandler(mock)
	c, w := newCreatorTestContext(t, http.MethodGet, "/creators/404", nil)
	c.Params = gin.Params{{Key: "id", Value: "404"}}

	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatorHandlerUploadAvatarRequiresFile(t *testing.T) {
	h := NewCreatorHandler(&creatorServiceMock{})
	c, w := newCreatorTestContext(t, http.MethodPost, "/creators/1/avatar", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	h.UploadAvatar(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
