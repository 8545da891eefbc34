package repository

import (
	"github.com/gocql/gocql"

	"karthika_back_end/internal/models"
)

// Leads persists the two lead-capture tables in the leads keyspace. Both are
// small append-mostly tables; admin listings scan and filter in memory.
type Leads struct {
	session *gocql.Session
}

func NewLeads(session *gocql.Session) *Leads {
	return &Leads{session: session}
}

// --- installation requests ---

func (r *Leads) ListInstallations() ([]models.InstallationRequest, error) {
	iter := r.session.Query(
		`SELECT request_id, name, phone, email, pincode, cameras, message, status, notes, created_at, updated_at
		 FROM installation_requests`,
	).Iter()

	var out []models.InstallationRequest
	var req models.InstallationRequest
	for iter.Scan(&req.ID, &req.Name, &req.Phone, &req.Email, &req.Pincode, &req.Cameras,
		&req.Message, &req.Status, &req.Notes, &req.CreatedAt, &req.UpdatedAt) {
		out = append(out, req)
		req = models.InstallationRequest{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Leads) GetInstallation(id gocql.UUID) (*models.InstallationRequest, error) {
	var req models.InstallationRequest
	req.ID = id
	err := r.session.Query(
		`SELECT name, phone, email, pincode, cameras, message, status, notes, created_at, updated_at
		 FROM installation_requests WHERE request_id = ?`, id,
	).Scan(&req.Name, &req.Phone, &req.Email, &req.Pincode, &req.Cameras,
		&req.Message, &req.Status, &req.Notes, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Leads) SaveInstallation(req *models.InstallationRequest) error {
	return r.session.Query(
		`INSERT INTO installation_requests (request_id, name, phone, email, pincode, cameras, message, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.Name, req.Phone, req.Email, req.Pincode, req.Cameras,
		req.Message, req.Status, req.Notes, req.CreatedAt, req.UpdatedAt,
	).Exec()
}

func (r *Leads) DeleteInstallation(id gocql.UUID) error {
	return r.session.Query(`DELETE FROM installation_requests WHERE request_id = ?`, id).Exec()
}

// --- quote requests ---

func (r *Leads) ListQuotes() ([]models.QuoteRequest, error) {
	iter := r.session.Query(
		`SELECT request_id, name, email, phone, city, property_type, num_cameras, requirements, status, notes, created_at, updated_at
		 FROM quote_requests`,
	).Iter()

	var out []models.QuoteRequest
	var req models.QuoteRequest
	for iter.Scan(&req.ID, &req.Name, &req.Email, &req.Phone, &req.City, &req.PropertyType,
		&req.NumCameras, &req.Requirements, &req.Status, &req.Notes, &req.CreatedAt, &req.UpdatedAt) {
		out = append(out, req)
		req = models.QuoteRequest{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Leads) GetQuote(id gocql.UUID) (*models.QuoteRequest, error) {
	var req models.QuoteRequest
	req.ID = id
	err := r.session.Query(
		`SELECT name, email, phone, city, property_type, num_cameras, requirements, status, notes, created_at, updated_at
		 FROM quote_requests WHERE request_id = ?`, id,
	).Scan(&req.Name, &req.Email, &req.Phone, &req.City, &req.PropertyType,
		&req.NumCameras, &req.Requirements, &req.Status, &req.Notes, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Leads) SaveQuote(req *models.QuoteRequest) error {
	return r.session.Query(
		`INSERT INTO quote_requests (request_id, name, email, phone, city, property_type, num_cameras, requirements, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.Name, req.Email, req.Phone, req.City, req.PropertyType,
		req.NumCameras, req.Requirements, req.Status, req.Notes, req.CreatedAt, req.UpdatedAt,
	).Exec()
}

func (r *Leads) DeleteQuote(id gocql.UUID) error {
	return r.session.Query(`DELETE FROM quote_requests WHERE request_id = ?`, id).Exec()
}
