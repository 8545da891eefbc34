package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(InstallationStatuses, "pending"))
	assert.True(t, ValidStatus(InstallationStatuses, "scheduled"))
	assert.False(t, ValidStatus(InstallationStatuses, "quoted"))

	assert.True(t, ValidStatus(QuoteStatuses, "quoted"))
	assert.False(t, ValidStatus(QuoteStatuses, "scheduled"))

	assert.True(t, ValidStatus(PropertyTypes, "warehouse"))
	assert.False(t, ValidStatus(PropertyTypes, "castle"))
}
