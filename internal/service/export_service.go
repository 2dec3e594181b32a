package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/psycheverse/creator-admin-api/internal/dto"
	"github.com/psycheverse/creator-admin-api/internal/models"
	appErrors "github.com/psycheverse/creator-admin-api/pkg/errors"
	"github.com/psycheverse/creator-admin-api/pkg/export"
)

// ExportFormatCSV and ExportFormatPDF are the supported file export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var exportHeaders = []string{"ID", "Display Name", "Status", "Viewers", "Featured", "Paid Member", "Platforms", "Created At"}

type exportCreatorSource interface {
	ListFeaturedFirst(ctx context.Context) ([]models.Creator, error)
}

type exportStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type downloadSigner interface {
	Generate(exportID, relPath string) (string, time.Time, error)
	Parse(token string, allowExpired bool) (string, string, time.Time, error)
}

// ExportServiceConfig tunes export behaviour. PruneAfter is the retention
// window for generated files; files whose signed links have expired get
// removed on the next generation.
type ExportServiceConfig struct {
	DownloadBasePath string
	PruneAfter       time.Duration
}

// ExportService produces catalog exports: an inline JSON document plus
// generated CSV/PDF files served through signed download links.
type ExportService struct {
	creators exportCreatorSource
	storage  exportStorage
	signer   downloadSigner
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
	cfg      ExportServiceConfig
}

// NewExportService constructs an ExportService.
func NewExportService(creators exportCreatorSource, storage exportStorage, signer downloadSigner, logger *zap.Logger, cfg ExportServiceConfig) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DownloadBasePath == "" {
		cfg.DownloadBasePath = "/api/v1/export/creators/download"
	}
	if cfg.PruneAfter <= 0 {
		cfg.PruneAfter = 24 * time.Hour
	}
	return &ExportService{
		creators: creators,
		storage:  storage,
		signer:   signer,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
		cfg:      cfg,
	}
}

// CreatorsJSON builds the inline JSON export payload, featured creators
// first, stamped with the generation time.
func (s *ExportService) CreatorsJSON(ctx context.Context) (*dto.CreatorExport, error) {
	creators, err := s.creators.ListFeaturedFirst(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load creators for export")
	}
	if creators == nil {
		creators = []models.Creator{}
	}
	return &dto.CreatorExport{
		GeneratedAt: time.Now().UTC(),
		Creators:    creators,
	}, nil
}

// GenerateFile renders the catalog into a CSV or PDF file and returns a
// signed download link for it.
func (s *ExportService) GenerateFile(ctx context.Context, format string) (*dto.ExportFileResponse, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	creators, err := s.creators.ListFeaturedFirst(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, appErrors.ErrStoreUnavailable.Status, "failed to load creators for export")
	}

	dataset := buildExportDataset(creators)
	var payload []byte
	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, "Creator Directory")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.pruneExpired()

	exportID := uuid.NewString()
	filename := path.Join("creators", fmt.Sprintf("%s.%s", exportID, format))
	if _, err := s.storage.Save(filename, payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store export file")
	}

	token, expiresAt, err := s.signer.Generate(exportID, filename)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign export download")
	}

	s.logger.Info("export generated",
		zap.String("export_id", exportID),
		zap.String("format", format),
		zap.Int("creators", len(creators)),
	)

	return &dto.ExportFileResponse{
		Format:      format,
		DownloadURL: s.cfg.DownloadBasePath + "?token=" + url.QueryEscape(token),
		ExpiresAt:   expiresAt,
	}, nil
}

// Download validates the signed token and opens the referenced export file.
// The returned name is the client-facing download filename.
func (s *ExportService) Download(ctx context.Context, token string) (*os.File, string, error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid download token")
	}
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export file not found")
	}
	return file, "psycheverse-" + path.Base(relPath), nil
}

// pruneExpired drops export files older than the retention window. Their
// download tokens have expired, so they can never be served again. Failures
// only get logged; generation must not depend on cleanup.
func (s *ExportService) pruneExpired() {
	removed, err := s.storage.CleanupOlderThan(s.cfg.PruneAfter)
	if err != nil {
		s.logger.Warn("export cleanup failed", zap.Error(err))
		return
	}
	if len(removed) > 0 {
		s.logger.Info("expired export files removed", zap.Int("count", len(removed)))
	}
}

func buildExportDataset(creators []models.Creator) export.Dataset {
	rows := make([]map[string]string, 0, len(creators))
	for _, creator := range creators {
		rows = append(rows, map[string]string{
			"ID":           strconv.FormatInt(creator.ID, 10),
			"Display Name": creator.DisplayName,
			"Status":       creator.Status,
			"Viewers":      strconv.FormatInt(creator.Viewers, 10),
			"Featured":     strconv.FormatBool(creator.IsFeatured),
			"Paid Member":  strconv.FormatBool(creator.IsPaidMember),
			"Platforms":    strings.Join(creator.Platforms, ", "),
			"Created At":   creator.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return export.Dataset{Headers: exportHeaders, Rows: rows}
}
