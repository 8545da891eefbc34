package repository

import (
	"reflect"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karthika_back_end/internal/models"
)

// fakeScan plays back one row in productColumns order.
func fakeScan(t *testing.T, values []interface{}) func(...interface{}) error {
	return func(dest ...interface{}) error {
		require.Len(t, dest, len(values))
		for i := range dest {
			reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(values[i]))
		}
		return nil
	}
}

func TestScanProductColumnOrder(t *testing.T) {
	id := gocql.TimeUUID()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	row := []interface{}{
		"camera", id, "Dome Cam", "indoor dome", "Hikvision", "dome", "DS-2CD1143",
		2500.0, 3000.0, []string{"/uploads/camera/a.jpg"}, []string{"night vision"},
		map[string]string{"resolution": "4MP"}, "Bestseller", "2 years", 8, 4,
		"NVR-8", "2TB", "home", "4x dome", "/uploads/camera/spec.pdf", "spec.pdf",
		4.5, 12, true, created, created,
	}

	var p models.Product
	require.NoError(t, scanProduct(fakeScan(t, row), &p))

	assert.Equal(t, "camera", p.Kind)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Dome Cam", p.Name)
	assert.Equal(t, "Hikvision", p.Brand)
	assert.Equal(t, "dome", p.Category)
	assert.Equal(t, 2500.0, p.Price)
	assert.Equal(t, 3000.0, p.MRP)
	assert.Equal(t, []string{"/uploads/camera/a.jpg"}, p.Images)
	assert.Equal(t, "4MP", p.Specifications["resolution"])
	assert.Equal(t, 8, p.Channels)
	assert.Equal(t, 4, p.Cameras)
	assert.Equal(t, "spec.pdf", p.PDFFileName)
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, 12, p.Reviews)
	assert.True(t, p.InStock)
	assert.Equal(t, created, p.CreatedAt)
}
