package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"karthika_back_end/internal/middleware"
)

func TestCartOwnerUserWinsOverSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(middleware.CtxUserID, "11111111-1111-1111-1111-111111111111")

	owner := cartOwner(c, "sess-abc")

	assert.Equal(t, "11111111-1111-1111-1111-111111111111", owner.UserID)
	assert.Empty(t, owner.SessionID)
	assert.Equal(t, "cart:user:11111111-1111-1111-1111-111111111111", owner.Key())
}

func TestCartOwnerAnonymousFallsBackToSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	owner := cartOwner(c, "sess-abc")

	assert.Empty(t, owner.UserID)
	assert.Equal(t, "cart:session:sess-abc", owner.Key())

	assert.False(t, cartOwner(c, "").Valid())
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512 B", humanSize(512))
	assert.Equal(t, "1.00 KB", humanSize(1024))
	assert.Equal(t, "2.50 MB", humanSize(2621440))
}

func TestMatchesLead(t *testing.T) {
	assert.True(t, matchesLead("", "anything"))
	assert.True(t, matchesLead("ram", "Ramesh Kumar", "9876543210", ""))
	assert.True(t, matchesLead("98765", "Ramesh Kumar", "9876543210", ""))
	assert.False(t, matchesLead("suresh", "Ramesh Kumar", "9876543210", "r@x.com"))
}

func TestValidDownloadCategory(t *testing.T) {
	assert.True(t, validDownloadCategory("mobile-app"))
	assert.True(t, validDownloadCategory("firmware"))
	assert.False(t, validDownloadCategory("movies"))
}
