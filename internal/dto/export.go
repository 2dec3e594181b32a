package dto

import (
	"time"

	"github.com/psycheverse/creator-admin-api/internal/models"
)

// CreatorExport is the inline JSON export payload: the featured-first
// creator list plus the moment it was generated.
type CreatorExport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Creators    []models.Creator `json:"creators"`
}

// ExportFileResponse describes a generated export file and its signed
// download link.
type ExportFileResponse struct {
	Format      string    `json:"format"`
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}
