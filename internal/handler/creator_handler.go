package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/psycheverse/creator-admin-api/internal/dto"
	"github.com/psycheverse/creator-admin-api/internal/models"
	appErrors "github.com/psycheverse/creator-admin-api/pkg/errors"
	"github.com/psycheverse/creator-admin-api/pkg/response"
)

type creatorService interface {
	List(ctx context.Context) ([]models.Creator, error)
	Get(ctx context.Context, id int64) (*models.Creator, error)
	Create(ctx context.Context, req dto.CreateCreatorRequest) (*models.Creator, error)
	Update(ctx context.Context, id int64, req dto.UpdateCreatorRequest) (*models.Creator, error)
	Delete(ctx context.Context, id int64) error
	SetAvatar(ctx context.Context, id int64, filename, contentType string, size int64, r io.Reader) (*dto.AvatarUploadResponse, error)
}

// CreatorHandler exposes the creator catalog endpoints.
type CreatorHandler struct {
	service creatorService
}

// NewCreatorHandler builds a new handler.
func NewCreatorHandler(service creatorService) *CreatorHandler {
	return &CreatorHandler{service: service}
}

// List godoc
// @Summary List creators
// @Tags Creators
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /creators [get]
func (h *CreatorHandler) List(c *gin.Context) {
	creators, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, creators, nil)
}

// Get godoc
// @Summary Get creator by id
// @Tags Creators
// @Produce json
// @Param id path int true "Creator ID"
// @Success 200 {object} response.Envelope
// @Router /creators/{id} [get]
func (h *CreatorHandler) Get(c *gin.Context) {
	id, err := creatorID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	creator, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, creator, nil)
}

// Create godoc
// @Summary Register a new creator
// @Tags Creators
// @Accept json
// @Produce json
// @Param payload body dto.CreateCreatorRequest true "Creator payload"
// @Success 201 {object} response.Envelope
// @Router /creators [post]
func (h *CreatorHandler) Create(c *gin.Context) {
	var req dto.CreateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid creator payload"))
		return
	}
	creator, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, creator)
}

// Update godoc
// @Summary Partially update a creator
// @Tags Creators
// @Accept json
// @Produce json
// @Param id path int true "Creator ID"
// @Param payload body dto.UpdateCreatorRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Router /creators/{id} [patch]
func (h *CreatorHandler) Update(c *gin.Context) {
	id, err := creatorID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid update payload"))
		return
	}
	creator, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, creator, nil)
}

// Delete godoc
// @Summary Delete a creator
// @Tags Creators
// @Produce json
// @Param id path int true "Creator ID"
// @Success 204
// @Router /creators/{id} [delete]
func (h *CreatorHandler) Delete(c *gin.Context) {
	id, err := creatorID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UploadAvatar godoc
// @Summary Upload a creator avatar
// @Tags Creators
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Creator ID"
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} response.Envelope
// @Router /creators/{id}/avatar [post]
func (h *CreatorHandler) UploadAvatar(c *gin.Context) {
	id, err := creatorID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "avatar file is required"))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open avatar file"))
		return
	}
	defer src.Close() //nolint:errcheck

	result, err := h.service.SetAvatar(c.Request.Context(), id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, src)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

func creatorID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid creator id")
	}
	return id, nil
}
