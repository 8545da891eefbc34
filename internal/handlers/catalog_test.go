package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"karthika_back_end/internal/models"
)

func TestPayloadApplyLeavesAbsentFieldsUntouched(t *testing.T) {
	existing := models.Product{
		Name:        "Dome Cam",
		Description: "indoor dome",
		Price:       2500,
		MRP:         3000,
		Images:      []string{"/uploads/camera/a.jpg"},
		InStock:     true,
		Rating:      4.5,
	}

	price := 1999.0
	pl := productPayload{Price: &price}
	pl.apply(&existing)

	assert.Equal(t, 1999.0, existing.Price)
	assert.Equal(t, "Dome Cam", existing.Name)
	assert.Equal(t, 3000.0, existing.MRP)
	assert.True(t, existing.InStock)
	assert.Len(t, existing.Images, 1)
}

func TestPayloadApplyExplicitFalseInStock(t *testing.T) {
	p := models.Product{InStock: true}

	f := false
	pl := productPayload{InStock: &f}
	pl.apply(&p)

	assert.False(t, p.InStock)
}

func TestPayloadApplyReplacesImagesWhenProvided(t *testing.T) {
	p := models.Product{Images: []string{"/uploads/camera/old.jpg"}}

	pl := productPayload{Images: []string{"/uploads/camera/new.jpg"}}
	pl.apply(&p)

	assert.Equal(t, []string{"/uploads/camera/new.jpg"}, p.Images)
}

func TestPayloadApplyClearsBadgeWithEmptyString(t *testing.T) {
	p := models.Product{Badge: "Bestseller"}

	empty := ""
	pl := productPayload{Badge: &empty}
	pl.apply(&p)

	assert.Empty(t, p.Badge)
}
