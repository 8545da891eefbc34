package models

import (
	"time"

	"github.com/gocql/gocql"
)

var DownloadCategories = []string{"mobile-app", "pc-software", "manual", "firmware", "guide", "other"}

// Download is a download-center record (apps, manuals, firmware) backed by an
// uploaded file in object storage.
type Download struct {
	ID            gocql.UUID `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Category      string     `json:"category"`
	FileURL       string     `json:"fileUrl"`
	FileName      string     `json:"fileName"`
	FileSize      string     `json:"fileSize"`
	FileType      string     `json:"fileType,omitempty"`
	DownloadCount int        `json:"downloadCount"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
