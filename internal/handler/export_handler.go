package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/psycheverse/creator-admin-api/internal/dto"
	appErrors "github.com/psycheverse/creator-admin-api/pkg/errors"
	"github.com/psycheverse/creator-admin-api/pkg/response"
)

const exportDownloadName = "psycheverse-creators.json"

type exportService interface {
	CreatorsJSON(ctx context.Context) (*dto.CreatorExport, error)
	GenerateFile(ctx context.Context, format string) (*dto.ExportFileResponse, error)
	Download(ctx context.Context, token string) (*os.File, string, error)
}

// ExportHandler exposes the catalog export endpoints.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// CreatorsJSON godoc
// @Summary Export the catalog as a JSON attachment
// @Tags Exports
// @Produce json
// @Success 200 {object} dto.CreatorExport
// @Router /export/creators [get]
func (h *ExportHandler) CreatorsJSON(c *gin.Context) {
	payload, err := h.service.CreatorsJSON(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode export"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportDownloadName))
	c.Data(http.StatusOK, "application/json", body)
}

// GenerateFile godoc
// @Summary Generate a CSV or PDF export file
// @Tags Exports
// @Produce json
// @Param format query string true "Export format (csv or pdf)"
// @Success 201 {object} response.Envelope
// @Router /export/creators [post]
func (h *ExportHandler) GenerateFile(c *gin.Context) {
	format := c.Query("format")
	if format == "" {
		format = c.PostForm("format")
	}
	result, err := h.service.GenerateFile(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Download godoc
// @Summary Download a generated export via signed token
// @Tags Exports
// @Produce octet-stream
// @Param token query string true "Signed token"
// @Success 200 {file} binary
// @Router /export/creators/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token is required"))
		return
	}
	file, filename, err := h.service.Download(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stat export file"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, info.Size(), contentTypeFor(filename), file, nil)
}

func contentTypeFor(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".csv"):
		return "text/csv"
	case strings.HasSuffix(filename, ".pdf"):
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
