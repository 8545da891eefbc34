package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karthika_back_end/internal/models"
)

func queryFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseFilterInStockLiterals(t *testing.T) {
	def := ByKind("camera")
	require.NotNil(t, def)

	f := ParseFilter(def, queryFrom(map[string]string{"inStock": "true"}))
	require.NotNil(t, f.InStock)
	assert.True(t, *f.InStock)

	f = ParseFilter(def, queryFrom(map[string]string{"inStock": "false"}))
	require.NotNil(t, f.InStock)
	assert.False(t, *f.InStock)

	// anything else leaves the filter unset
	f = ParseFilter(def, queryFrom(map[string]string{"inStock": "yes"}))
	assert.Nil(t, f.InStock)
}

func TestParseFilterChannelsOnlyWhenEnabled(t *testing.T) {
	q := queryFrom(map[string]string{"channels": "8"})

	f := ParseFilter(ByKind("recorder"), q)
	assert.Equal(t, 8, f.Channels)

	f = ParseFilter(ByKind("camera"), q)
	assert.Zero(t, f.Channels)
}

func TestParseFilterPriceBounds(t *testing.T) {
	def := ByKind("camera")

	f := ParseFilter(def, queryFrom(map[string]string{"minPrice": "1000", "maxPrice": "5000"}))
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 1000.0, *f.MinPrice)
	assert.Equal(t, 5000.0, *f.MaxPrice)

	f = ParseFilter(def, queryFrom(map[string]string{"minPrice": "abc"}))
	assert.Nil(t, f.MinPrice)
}

func sampleCameras() []models.Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{Name: "Dome Cam", Description: "indoor dome", Category: "dome", Price: 2500, InStock: true, CreatedAt: base},
		{Name: "Bullet Cam", Description: "outdoor bullet", Category: "bullet", Price: 3500, InStock: true, CreatedAt: base.Add(time.Hour)},
		{Name: "PTZ Pro", Description: "pan tilt zoom", Category: "ptz", Price: 12000, InStock: false, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestApplyDefaultOrderIsNewestFirst(t *testing.T) {
	def := ByKind("camera")

	out := Filter{}.Apply(def, sampleCameras())

	require.Len(t, out, 3)
	assert.Equal(t, "PTZ Pro", out[0].Name)
	assert.Equal(t, "Dome Cam", out[2].Name)
}

func TestApplyPriceSort(t *testing.T) {
	def := ByKind("camera")

	out := Filter{Sort: "price"}.Apply(def, sampleCameras())
	assert.Equal(t, "Dome Cam", out[0].Name)

	out = Filter{Sort: "-price"}.Apply(def, sampleCameras())
	assert.Equal(t, "PTZ Pro", out[0].Name)

	// the legacy alias still works
	out = Filter{Sort: "price-desc"}.Apply(def, sampleCameras())
	assert.Equal(t, "PTZ Pro", out[0].Name)
}

func TestApplyCombinedFilters(t *testing.T) {
	def := ByKind("camera")
	inStock := true
	max := 4000.0

	out := Filter{InStock: &inStock, MaxPrice: &max}.Apply(def, sampleCameras())

	require.Len(t, out, 2)
	for _, p := range out {
		assert.True(t, p.InStock)
		assert.LessOrEqual(t, p.Price, max)
	}
}

func TestSearchMatchesConfiguredFieldsOnly(t *testing.T) {
	def := ByKind("camera")
	products := sampleCameras()

	out := Filter{Search: "OUTDOOR"}.Apply(def, products)
	require.Len(t, out, 1)
	assert.Equal(t, "Bullet Cam", out[0].Name)

	// camera search covers name and description, not category
	out = Filter{Search: "dome"}.Apply(def, products)
	assert.Len(t, out, 1)
}

func TestByKindUnknownIsNil(t *testing.T) {
	assert.Nil(t, ByKind("drone"))
}

func TestDefinitionsRoutesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range Definitions {
		assert.False(t, seen[def.Route], "duplicate route %s", def.Route)
		seen[def.Route] = true
	}
}
