package services

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidateImageAllowsCommonFormats(t *testing.T) {
	for _, name := range []string{"cam.jpg", "cam.jpeg", "cam.png", "cam.gif", "cam.webp"} {
		assert.NoError(t, ValidateImage(header(name, "", 1024)), name)
	}
}

func TestValidateImageRejectsExecutables(t *testing.T) {
	err := ValidateImage(header("setup.exe", "application/octet-stream", 1024))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestValidateImageRejectsOversize(t *testing.T) {
	err := ValidateImage(header("big.jpg", "image/jpeg", MaxUploadSize+1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "5MB")
}

func TestValidateImageRejectsMimeMismatch(t *testing.T) {
	err := ValidateImage(header("fake.png", "application/pdf", 1024))
	assert.Error(t, err)
}

func TestValidateImageAcceptsJpgMimeVariant(t *testing.T) {
	// some browsers still declare image/jpg
	assert.NoError(t, ValidateImage(header("cam.jpg", "image/jpg", 1024)))
}

func TestValidateDocumentCoversDownloadCenter(t *testing.T) {
	assert.NoError(t, ValidateDocument(header("manual.pdf", "application/pdf", 1024)))
	assert.NoError(t, ValidateDocument(header("viewer.apk", "application/vnd.android.package-archive", 1024)))
	assert.Error(t, ValidateDocument(header("photo.jpg", "image/jpeg", 1024)))
}

func TestObjectNameShape(t *testing.T) {
	name := ObjectName("camera", "Front Door.JPG")

	assert.True(t, strings.HasPrefix(name, "camera-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"), "extension is lowercased: %s", name)

	// two calls never collide
	assert.NotEqual(t, name, ObjectName("camera", "Front Door.JPG"))
}
