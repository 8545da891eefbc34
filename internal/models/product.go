package models

import (
	"math"
	"time"

	"github.com/gocql/gocql"
)

// Product is the single catalog entity shared by every product kind
// (cameras, recorders, systems, solutions, cables, networking, storage).
// Kind-specific fields stay zero for the kinds that don't use them; the
// per-kind rules live in catalog.Definition.
type Product struct {
	ID                 gocql.UUID        `json:"id"`
	Kind               string            `json:"-"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Brand              string            `json:"brand,omitempty"`
	Category           string            `json:"category,omitempty"`
	Model              string            `json:"model,omitempty"`
	Price              float64           `json:"price"`
	MRP                float64           `json:"mrp"`
	Discount           int               `json:"discount"`
	Images             []string          `json:"images"`
	Features           []string          `json:"features"`
	Specifications     map[string]string `json:"specifications"`
	Badge              string            `json:"badge,omitempty"`
	Warranty           string            `json:"warranty,omitempty"`
	Channels           int               `json:"channels,omitempty"`
	Cameras            int               `json:"cameras,omitempty"`
	Recorder           string            `json:"recorder,omitempty"`
	StorageCapacity    string            `json:"storageCapacity,omitempty"`
	TargetAudience     string            `json:"targetAudience,omitempty"`
	RecommendedCameras string            `json:"recommendedCameras,omitempty"`
	PDFURL             string            `json:"pdfUrl,omitempty"`
	PDFFileName        string            `json:"pdfFileName,omitempty"`
	Rating             float64           `json:"rating"`
	Reviews            int               `json:"reviews"`
	InStock            bool              `json:"inStock"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// ComputeDiscount derives the discount percentage from mrp and price.
// Never persisted: recomputed on every read.
func ComputeDiscount(mrp, price float64) int {
	if mrp <= 0 || mrp <= price {
		return 0
	}
	return int(math.Round((mrp - price) / mrp * 100))
}

// WithDiscount fills the derived Discount field before the product is serialized.
func (p *Product) WithDiscount() *Product {
	p.Discount = ComputeDiscount(p.MRP, p.Price)
	return p
}
