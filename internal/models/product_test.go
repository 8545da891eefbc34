package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name  string
		mrp   float64
		price float64
		want  int
	}{
		{"half price", 200, 100, 50},
		{"rounded up", 300, 200, 33},
		{"no mrp", 0, 100, 0},
		{"mrp equals price", 100, 100, 0},
		{"mrp below price", 90, 100, 0},
		{"small discount", 1000, 949, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDiscount(tt.mrp, tt.price))
		})
	}
}

func TestWithDiscountFillsDerivedField(t *testing.T) {
	p := Product{Price: 7500, MRP: 10000}
	assert.Equal(t, 25, p.WithDiscount().Discount)

	// recomputed on every call, never stale
	p.Price = 10000
	assert.Equal(t, 0, p.WithDiscount().Discount)
}
