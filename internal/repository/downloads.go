package repository

import (
	"github.com/gocql/gocql"

	"karthika_back_end/internal/models"
)

// Downloads persists the download-center records in the catalog keyspace.
type Downloads struct {
	session *gocql.Session
}

func NewDownloads(session *gocql.Session) *Downloads {
	return &Downloads{session: session}
}

func (r *Downloads) List() ([]models.Download, error) {
	iter := r.session.Query(
		`SELECT download_id, name, description, category, file_url, file_name, file_size, file_type, download_count, is_active, created_at, updated_at
		 FROM downloads`,
	).Iter()

	var out []models.Download
	var d models.Download
	for iter.Scan(&d.ID, &d.Name, &d.Description, &d.Category, &d.FileURL, &d.FileName,
		&d.FileSize, &d.FileType, &d.DownloadCount, &d.IsActive, &d.CreatedAt, &d.UpdatedAt) {
		out = append(out, d)
		d = models.Download{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Downloads) Get(id gocql.UUID) (*models.Download, error) {
	var d models.Download
	d.ID = id
	err := r.session.Query(
		`SELECT name, description, category, file_url, file_name, file_size, file_type, download_count, is_active, created_at, updated_at
		 FROM downloads WHERE download_id = ?`, id,
	).Scan(&d.Name, &d.Description, &d.Category, &d.FileURL, &d.FileName,
		&d.FileSize, &d.FileType, &d.DownloadCount, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Downloads) Save(d *models.Download) error {
	return r.session.Query(
		`INSERT INTO downloads (download_id, name, description, category, file_url, file_name, file_size, file_type, download_count, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.Description, d.Category, d.FileURL, d.FileName,
		d.FileSize, d.FileType, d.DownloadCount, d.IsActive, d.CreatedAt, d.UpdatedAt,
	).Exec()
}

func (r *Downloads) Delete(id gocql.UUID) error {
	return r.session.Query(`DELETE FROM downloads WHERE download_id = ?`, id).Exec()
}
