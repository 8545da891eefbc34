package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	qrcode "github.com/skip2/go-qrcode"

	"karthika_back_end/internal/models"
	"karthika_back_end/internal/repository"
	"karthika_back_end/internal/services"
)

// DownloadsHandler serves the download center: apps, manuals and firmware
// files with a public listing and admin-managed records.
type DownloadsHandler struct {
	downloads *repository.Downloads
	storage   *services.Storage
}

func NewDownloadsHandler(downloads *repository.Downloads, storage *services.Storage) *DownloadsHandler {
	return &DownloadsHandler{downloads: downloads, storage: storage}
}

// humanSize renders a byte count the way the download page displays it.
func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func validDownloadCategory(c string) bool {
	return models.ValidStatus(models.DownloadCategories, c)
}

// GET /api/downloads?category=&isActive=
func (h *DownloadsHandler) List(c *gin.Context) {
	rows, err := h.downloads.List()
	if err != nil {
		respondServerError(c, "Error fetching downloads", err)
		return
	}

	category := c.Query("category")
	isActive := c.Query("isActive")
	filtered := rows[:0]
	for _, d := range rows {
		if category != "" && d.Category != category {
			continue
		}
		if isActive == "true" && !d.IsActive {
			continue
		}
		if isActive == "false" && d.IsActive {
			continue
		}
		filtered = append(filtered, d)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	respondList(c, len(filtered), filtered)
}

// GET /api/downloads/:id
func (h *DownloadsHandler) Get(c *gin.Context) {
	d, ok := h.find(c)
	if !ok {
		return
	}
	respondData(c, http.StatusOK, d)
}

// POST /api/downloads (admin, multipart with a "file" part)
func (h *DownloadsHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	category := c.PostForm("category")
	if name == "" || category == "" {
		respondError(c, http.StatusBadRequest, "Please provide name and category")
		return
	}
	if !validDownloadCategory(category) {
		respondError(c, http.StatusBadRequest, "Invalid download category")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Please upload a file")
		return
	}
	if err := services.ValidateDocument(fh); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	path, err := h.storage.Put(c.Request.Context(), "downloads", fh, services.ObjectName("download", fh.Filename))
	if err != nil {
		respondServerError(c, "Error uploading file", err)
		return
	}

	now := time.Now()
	d := models.Download{
		ID:          gocql.TimeUUID(),
		Name:        name,
		Description: c.PostForm("description"),
		Category:    category,
		FileURL:     path,
		FileName:    fh.Filename,
		FileSize:    humanSize(fh.Size),
		FileType:    strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), "."),
		IsActive:    c.PostForm("isActive") != "false",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.downloads.Save(&d); err != nil {
		_ = h.storage.Remove(c.Request.Context(), path)
		respondServerError(c, "Error creating download", err)
		return
	}
	respondData(c, http.StatusCreated, d)
}

// PUT /api/downloads/:id (admin). A new file replaces the stored one and the
// old object is removed best effort.
func (h *DownloadsHandler) Update(c *gin.Context) {
	d, ok := h.find(c)
	if !ok {
		return
	}

	if v := c.PostForm("name"); v != "" {
		d.Name = v
	}
	if v := c.PostForm("description"); v != "" {
		d.Description = v
	}
	if v := c.PostForm("category"); v != "" {
		if !validDownloadCategory(v) {
			respondError(c, http.StatusBadRequest, "Invalid download category")
			return
		}
		d.Category = v
	}
	if v := c.PostForm("isActive"); v != "" {
		d.IsActive = v == "true"
	}

	if fh, err := c.FormFile("file"); err == nil {
		if err := services.ValidateDocument(fh); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		path, err := h.storage.Put(c.Request.Context(), "downloads", fh, services.ObjectName("download", fh.Filename))
		if err != nil {
			respondServerError(c, "Error uploading file", err)
			return
		}
		old := d.FileURL
		d.FileURL = path
		d.FileName = fh.Filename
		d.FileSize = humanSize(fh.Size)
		d.FileType = strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
		if old != "" {
			_ = h.storage.Remove(c.Request.Context(), old)
		}
	}

	d.UpdatedAt = time.Now()
	if err := h.downloads.Save(d); err != nil {
		respondServerError(c, "Error updating download", err)
		return
	}
	respondData(c, http.StatusOK, d)
}

// DELETE /api/downloads/:id (admin)
func (h *DownloadsHandler) Delete(c *gin.Context) {
	d, ok := h.find(c)
	if !ok {
		return
	}

	if d.FileURL != "" {
		_ = h.storage.Remove(c.Request.Context(), d.FileURL)
	}
	if err := h.downloads.Delete(d.ID); err != nil {
		respondServerError(c, "Error deleting download", err)
		return
	}
	respondMessage(c, http.StatusOK, "Download deleted successfully")
}

// PUT /api/downloads/:id/increment bumps the counter when a user grabs the file.
func (h *DownloadsHandler) Increment(c *gin.Context) {
	d, ok := h.find(c)
	if !ok {
		return
	}

	d.DownloadCount++
	d.UpdatedAt = time.Now()
	if err := h.downloads.Save(d); err != nil {
		respondServerError(c, "Error updating download count", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "downloadCount": d.DownloadCount})
}

// GET /api/downloads/:id/qr renders a QR code pointing at the file URL, for
// the in-store poster next to the demo wall.
func (h *DownloadsHandler) QR(c *gin.Context) {
	d, ok := h.find(c)
	if !ok {
		return
	}

	target := d.FileURL
	if base := strings.TrimSuffix(c.Query("base"), "/"); base != "" {
		target = base + d.FileURL
	}

	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		respondServerError(c, "Error generating QR code", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *DownloadsHandler) find(c *gin.Context) (*models.Download, bool) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Download not found")
		return nil, false
	}
	d, err := h.downloads.Get(id)
	if err == gocql.ErrNotFound {
		respondError(c, http.StatusNotFound, "Download not found")
		return nil, false
	}
	if err != nil {
		respondServerError(c, "Error fetching download", err)
		return nil, false
	}
	return d, true
}
