package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/google"

	"karthika_back_end/internal/models"
	"karthika_back_end/internal/repository"
	"karthika_back_end/internal/utils"
)

// OAuthHandler signs users in through Google/Facebook and hands out the same
// JWT cookie as the local login.
type OAuthHandler struct {
	users *repository.Users
}

func NewOAuthHandler(users *repository.Users) *OAuthHandler {
	return &OAuthHandler{users: users}
}

// InitOAuth wires the gothic session store and registers the providers that
// have credentials configured. Safe to call with none configured.
func InitOAuth() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("⚠️ SESSION_SECRET missing, social login disabled")
		return
	}

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: http.SameSiteLaxMode,
	}
	gothic.Store = store

	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if provider := req.URL.Query().Get("provider"); provider != "" {
			return provider, nil
		}
		return "", errors.New("provider not found")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	var providers []goth.Provider
	if id, secret := os.Getenv("GOOGLE_CLIENT_ID"), os.Getenv("GOOGLE_CLIENT_SECRET"); id != "" && secret != "" {
		providers = append(providers, google.New(id, secret, baseURL+"/api/auth/google/callback"))
		log.Println("✅ Google OAuth enabled")
	}
	if id, secret := os.Getenv("FACEBOOK_CLIENT_ID"), os.Getenv("FACEBOOK_CLIENT_SECRET"); id != "" && secret != "" {
		providers = append(providers, facebook.New(id, secret, baseURL+"/api/auth/facebook/callback"))
		log.Println("✅ Facebook OAuth enabled")
	}

	if len(providers) == 0 {
		log.Println("⚠️ No OAuth provider configured")
		return
	}
	goth.UseProviders(providers...)
}

// GET /api/auth/:provider
func (h *OAuthHandler) Begin(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		respondError(c, http.StatusBadRequest, "No provider specified")
		return
	}

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// GET /api/auth/:provider/callback
func (h *OAuthHandler) Callback(c *gin.Context) {
	provider := c.Param("provider")
	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Social login failed")
		return
	}
	if gothUser.Email == "" {
		respondError(c, http.StatusUnauthorized, "Provider did not return an email address")
		return
	}

	user, err := h.users.GetByEmail(gothUser.Email)
	if err != nil {
		// first social login creates the account, same shape as /register
		user = &models.User{
			ID:        gocql.TimeUUID(),
			FullName:  gothUser.Name,
			Email:     gothUser.Email,
			Role:      models.RoleUser,
			Provider:  provider,
			CreatedAt: time.Now(),
		}
		if err := h.users.Insert(user); err != nil {
			respondServerError(c, "Could not create user", err)
			return
		}
		log.Println("✅ New user via", provider, ":", user.Email)
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		respondServerError(c, "Could not issue token", err)
		return
	}
	utils.SetAuthCookie(c, token)

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}
	c.Redirect(http.StatusTemporaryRedirect, clientURL)
}
