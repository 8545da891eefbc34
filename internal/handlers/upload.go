package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"karthika_back_end/internal/services"
)

const maxMultipleUploads = 5

// UploadHandler exposes the standalone upload endpoints used by the admin
// dashboard's rich-text editor, plus the public /uploads proxy.
type UploadHandler struct {
	storage *services.Storage
}

func NewUploadHandler(storage *services.Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// POST /api/upload (admin, single "image" part)
func (h *UploadHandler) Single(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Please upload an image")
		return
	}
	if err := services.ValidateImage(fh); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	path, err := h.storage.Put(c.Request.Context(), "misc", fh, services.ObjectName("upload", fh.Filename))
	if err != nil {
		respondServerError(c, "Error uploading image", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "imageUrl": path})
}

// POST /api/upload/multiple (admin, up to 5 "images" parts)
func (h *UploadHandler) Multiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Please upload images")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		respondError(c, http.StatusBadRequest, "Please upload images")
		return
	}
	if len(files) > maxMultipleUploads {
		respondError(c, http.StatusBadRequest, "Maximum 5 images per upload")
		return
	}

	for _, fh := range files {
		if err := services.ValidateImage(fh); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	var paths []string
	for _, fh := range files {
		path, err := h.storage.Put(c.Request.Context(), "misc", fh, services.ObjectName("upload", fh.Filename))
		if err != nil {
			h.storage.RemoveAll(c.Request.Context(), paths)
			respondServerError(c, "Error uploading images", err)
			return
		}
		paths = append(paths, path)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(paths), "imageUrls": paths})
}

// DELETE /api/upload/:filename (admin). Standalone uploads all live under
// the misc/ prefix, so only the object name is accepted here.
func (h *UploadHandler) Delete(c *gin.Context) {
	key := "misc/" + c.Param("filename")
	if !h.storage.Exists(c.Request.Context(), key) {
		respondError(c, http.StatusNotFound, "File not found")
		return
	}
	if err := h.storage.Remove(c.Request.Context(), "/uploads/"+key); err != nil {
		respondServerError(c, "Error deleting file", err)
		return
	}
	respondMessage(c, http.StatusOK, "File deleted successfully")
}

// GET /uploads/*filepath streams objects straight out of the bucket, filling
// the role of a static file directory.
func (h *UploadHandler) Serve(c *gin.Context) {
	key := c.Param("filepath")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}

	obj, info, err := h.storage.Open(c.Request.Context(), key)
	if err != nil {
		respondError(c, http.StatusNotFound, "File not found")
		return
	}
	defer obj.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Length", strconv.FormatInt(info.Size, 10))
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, obj)
}
