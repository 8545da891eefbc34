package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"karthika_back_end/internal/models"
	"karthika_back_end/internal/repository"
	"karthika_back_end/internal/utils"
)

// Context keys set by Protect/Optional.
const (
	CtxUser   = "user"
	CtxUserID = "user_id"
)

// Auth holds the user repository so every protected request re-loads the
// account behind the token; a deleted user is treated as unauthorized.
type Auth struct {
	users *repository.Users
}

func NewAuth(users *repository.Users) *Auth {
	return &Auth{users: users}
}

func (a *Auth) authenticate(c *gin.Context) (*models.User, bool) {
	tokenString, err := c.Cookie(utils.AuthCookieName)
	if err != nil || tokenString == "" {
		return nil, false
	}

	claims, err := utils.ParseJWT(tokenString)
	if err != nil {
		return nil, false
	}

	userID, _ := claims["user_id"].(string)
	uid, err := gocql.ParseUUID(userID)
	if err != nil {
		return nil, false
	}

	user, err := a.users.Get(uid)
	if err != nil {
		return nil, false
	}
	return user, true
}

// Protect requires a valid cookie token whose user still exists.
func (a *Auth) Protect(c *gin.Context) {
	user, ok := a.authenticate(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Not authorized to access this route. Please login.",
		})
		return
	}
	c.Set(CtxUser, user)
	c.Set(CtxUserID, user.ID.String())
	c.Next()
}

// Optional authenticates when a valid cookie is present but never rejects;
// the cart routes use it to prefer the user identity over a session token.
func (a *Auth) Optional(c *gin.Context) {
	if user, ok := a.authenticate(c); ok {
		c.Set(CtxUser, user)
		c.Set(CtxUserID, user.ID.String())
	}
	c.Next()
}

// Authorize gates by role. It assumes Protect already ran: composition order
// is load-bearing, invoking this standalone panics on the missing user.
func Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet(CtxUser).(*models.User)
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "User role '" + user.Role + "' is not authorized to access this route",
		})
	}
}

// CurrentUser returns the authenticated user set by Protect/Optional.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
