package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karthika_back_end/internal/models"
)

func fields(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateCreateRequiresCoreFields(t *testing.T) {
	def := ByKind("camera")

	errs := Validate(def, &models.Product{}, false)

	got := fields(errs)
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "description")
	assert.Contains(t, got, "price")
	assert.Contains(t, got, "mrp")
	assert.Contains(t, got, "images")
}

func TestValidatePartialSkipsRequiredChecks(t *testing.T) {
	def := ByKind("camera")

	errs := Validate(def, &models.Product{Price: 2500, MRP: 3000}, true)

	assert.Empty(t, errs)
}

func TestValidateConstraintsApplyEvenOnPartial(t *testing.T) {
	def := ByKind("camera")

	errs := Validate(def, &models.Product{Price: -10, Rating: 7}, true)

	got := fields(errs)
	assert.Contains(t, got, "price")
	assert.Contains(t, got, "rating")
}

func TestValidateRecorderBrandEnum(t *testing.T) {
	def := ByKind("recorder")

	p := &models.Product{
		Name:        "8 Channel NVR",
		Description: "Rack mount NVR",
		Brand:       "NoName Corp",
		Category:    "Network Video Recorders",
		Price:       9000,
		MRP:         11000,
		Images:      []string{"/uploads/recorder/x.jpg"},
		Channels:    8,
	}
	errs := Validate(def, p, false)

	require.Len(t, errs, 1)
	assert.Equal(t, "brand", errs[0].Field)

	p.Brand = "Hikvision"
	assert.Empty(t, Validate(def, p, false))
}

func TestValidateSystemRequiresCameras(t *testing.T) {
	def := ByKind("system")

	p := &models.Product{
		Name:        "Home Kit",
		Description: "4 camera kit",
		Category:    "home",
		Price:       15000,
		MRP:         18000,
		Images:      []string{"/uploads/system/x.jpg"},
	}
	errs := Validate(def, p, false)

	assert.Contains(t, fields(errs), "cameras")
}

func TestValidateNameLengthBound(t *testing.T) {
	def := ByKind("camera")

	long := make([]byte, def.NameMaxLen+1)
	for i := range long {
		long[i] = 'x'
	}
	errs := Validate(def, &models.Product{Name: string(long)}, true)

	assert.Contains(t, fields(errs), "name")
}

func TestMessagesFlattens(t *testing.T) {
	msgs := Messages([]FieldError{
		{Field: "name", Message: "Please add a camera name"},
		{Field: "price", Message: "Please add a price"},
	})
	assert.Equal(t, []string{"Please add a camera name", "Please add a price"}, msgs)
}
