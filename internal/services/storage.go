package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// MaxUploadSize is the per-file ceiling for every multipart upload.
const MaxUploadSize = 5 << 20 // 5 MB

// imageTypes maps the allowed image extensions to their declared MIME types.
var imageTypes = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// documentTypes covers the download center (manuals, apps, firmware bundles).
var documentTypes = map[string]string{
	".pdf": "application/pdf",
	".apk": "application/vnd.android.package-archive",
	".zip": "application/zip",
	".exe": "application/octet-stream",
}

// Storage wraps the MinIO bucket that holds every uploaded file. Objects are
// namespaced by prefix (one per product kind, "downloads" for the download
// center, "misc" for the standalone endpoints) and exposed under /uploads/.
type Storage struct {
	client *minio.Client
	bucket string
}

func NewStorage(client *minio.Client, bucket string) *Storage {
	return &Storage{client: client, bucket: bucket}
}

// ValidateImage checks one multipart part against the image allow-list and
// the size ceiling before anything touches the bucket.
func ValidateImage(fh *multipart.FileHeader) error {
	return validate(fh, imageTypes)
}

// ValidateDocument does the same for download-center files.
func ValidateDocument(fh *multipart.FileHeader) error {
	return validate(fh, documentTypes)
}

func validate(fh *multipart.FileHeader, allowed map[string]string) error {
	if fh.Size > MaxUploadSize {
		return fmt.Errorf("file %s exceeds the 5MB limit", fh.Filename)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	want, ok := allowed[ext]
	if !ok {
		return fmt.Errorf("file type %s is not allowed", ext)
	}
	declared := fh.Header.Get("Content-Type")
	if declared != "" && declared != want && !equivalentMime(ext, declared) {
		return fmt.Errorf("mime type %s does not match %s", declared, ext)
	}
	return nil
}

func equivalentMime(ext, declared string) bool {
	// jpg/jpeg and the odd image/jpg variant some browsers still send
	if ext == ".jpg" || ext == ".jpeg" {
		return declared == "image/jpeg" || declared == "image/jpg"
	}
	if ext == ".zip" {
		return declared == "application/x-zip-compressed"
	}
	return false
}

// ObjectName builds a collision-resistant name: prefix, millisecond
// timestamp and a random component, keeping the original extension.
func ObjectName(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// Put streams one validated part into the bucket under dir/ and returns the
// public /uploads path stored on the record.
func (s *Storage) Put(ctx context.Context, dir string, fh *multipart.FileHeader, objectName string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := dir + "/" + objectName
	_, err = s.client.PutObject(ctx, s.bucket, key, f, fh.Size, minio.PutObjectOptions{
		ContentType: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}

// Remove deletes the object behind an /uploads path. Callers treat failures
// as best effort: the error is logged here and returned for tests only.
func (s *Storage) Remove(ctx context.Context, uploadPath string) error {
	key := strings.TrimPrefix(uploadPath, "/uploads/")
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		log.Printf("⚠️ Could not delete object %s: %v", key, err)
		return err
	}
	return nil
}

// RemoveAll attempts every path and never stops on failure.
func (s *Storage) RemoveAll(ctx context.Context, uploadPaths []string) {
	for _, p := range uploadPaths {
		_ = s.Remove(ctx, p)
	}
}

// Open streams an object back out for the read-only /uploads/* route.
func (s *Storage) Open(ctx context.Context, key string) (*minio.Object, minio.ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, err
	}
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, minio.ObjectInfo{}, err
	}
	return obj, info, nil
}

// Exists reports whether an object is present (standalone delete endpoint).
func (s *Storage) Exists(ctx context.Context, key string) bool {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	return err == nil
}
