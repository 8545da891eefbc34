package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"karthika_back_end/internal/models"
	"karthika_back_end/internal/utils"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	return c, w
}

func TestProtectWithoutCookieIs401(t *testing.T) {
	c, w := testContext(t)

	NewAuth(nil).Protect(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized")
}

func TestProtectWithGarbageTokenIs401(t *testing.T) {
	c, w := testContext(t)
	c.Request.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: "not-a-token"})

	NewAuth(nil).Protect(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalNeverRejects(t *testing.T) {
	c, w := testContext(t)

	NewAuth(nil).Optional(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
	_, ok := CurrentUser(c)
	assert.False(t, ok)
}

func TestAuthorizeRejectsUserRole(t *testing.T) {
	c, w := testContext(t)
	c.Set(CtxUser, &models.User{Role: models.RoleUser})

	Authorize(models.RoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "role 'user'")
}

func TestAuthorizePassesAdminRole(t *testing.T) {
	c, _ := testContext(t)
	c.Set(CtxUser, &models.User{Role: models.RoleAdmin})

	Authorize(models.RoleAdmin)(c)

	assert.False(t, c.IsAborted())
}
