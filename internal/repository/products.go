package repository

import (
	"github.com/gocql/gocql"

	"karthika_back_end/internal/models"
)

const productColumns = `kind, product_id, name, description, brand, category, model,
	price, mrp, images, features, specifications, badge, warranty, channels, cameras,
	recorder, storage_capacity, target_audience, recommended_cameras, pdf_url,
	pdf_file_name, rating, reviews, in_stock, created_at, updated_at`

// Products reads and writes the catalog_products table. Rows are partitioned
// by kind, so listing one catalog is a single-partition scan.
type Products struct {
	session *gocql.Session
}

func NewProducts(session *gocql.Session) *Products {
	return &Products{session: session}
}

func scanProduct(scan func(...interface{}) error, p *models.Product) error {
	return scan(
		&p.Kind, &p.ID, &p.Name, &p.Description, &p.Brand, &p.Category, &p.Model,
		&p.Price, &p.MRP, &p.Images, &p.Features, &p.Specifications, &p.Badge,
		&p.Warranty, &p.Channels, &p.Cameras, &p.Recorder, &p.StorageCapacity,
		&p.TargetAudience, &p.RecommendedCameras, &p.PDFURL, &p.PDFFileName,
		&p.Rating, &p.Reviews, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	)
}

// ListByKind returns every row of one catalog, unfiltered and unordered;
// filtering and sorting happen in catalog.Filter.
func (r *Products) ListByKind(kind string) ([]models.Product, error) {
	iter := r.session.Query(
		`SELECT `+productColumns+` FROM catalog_products WHERE kind = ?`, kind,
	).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(
		&p.Kind, &p.ID, &p.Name, &p.Description, &p.Brand, &p.Category, &p.Model,
		&p.Price, &p.MRP, &p.Images, &p.Features, &p.Specifications, &p.Badge,
		&p.Warranty, &p.Channels, &p.Cameras, &p.Recorder, &p.StorageCapacity,
		&p.TargetAudience, &p.RecommendedCameras, &p.PDFURL, &p.PDFFileName,
		&p.Rating, &p.Reviews, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns one product or gocql.ErrNotFound.
func (r *Products) Get(kind string, id gocql.UUID) (*models.Product, error) {
	var p models.Product
	err := scanProduct(
		r.session.Query(
			`SELECT `+productColumns+` FROM catalog_products WHERE kind = ? AND product_id = ?`,
			kind, id,
		).Scan,
		&p,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the full row; used for both insert and update (full replace).
func (r *Products) Save(p *models.Product) error {
	return r.session.Query(
		`INSERT INTO catalog_products (`+productColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Kind, p.ID, p.Name, p.Description, p.Brand, p.Category, p.Model,
		p.Price, p.MRP, p.Images, p.Features, p.Specifications, p.Badge,
		p.Warranty, p.Channels, p.Cameras, p.Recorder, p.StorageCapacity,
		p.TargetAudience, p.RecommendedCameras, p.PDFURL, p.PDFFileName,
		p.Rating, p.Reviews, p.InStock, p.CreatedAt, p.UpdatedAt,
	).Exec()
}

func (r *Products) Delete(kind string, id gocql.UUID) error {
	return r.session.Query(
		`DELETE FROM catalog_products WHERE kind = ? AND product_id = ?`, kind, id,
	).Exec()
}
