package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"karthika_back_end/internal/middleware"
	"karthika_back_end/internal/models"
	"karthika_back_end/internal/repository"
	"karthika_back_end/internal/utils"
)

type AuthHandler struct {
	users *repository.Users
}

func NewAuthHandler(users *repository.Users) *AuthHandler {
	return &AuthHandler{users: users}
}

// sendToken delivers the JWT both in the body and as the http-only cookie.
func (h *AuthHandler) sendToken(c *gin.Context, status int, user *models.User) {
	token, err := utils.GenerateJWT(*user)
	if err != nil {
		respondServerError(c, "Could not issue token", err)
		return
	}

	utils.SetAuthCookie(c, token)
	c.JSON(status, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":       user.ID.String(),
			"fullName": user.FullName,
			"email":    user.Email,
			"phone":    user.Phone,
			"role":     user.Role,
		},
	})
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		FullName string `json:"fullName" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide fullName, email and a password of at least 6 characters")
		return
	}

	if _, err := h.users.GetByEmail(input.Email); err == nil {
		respondError(c, http.StatusBadRequest, "User already exists with this email")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		respondServerError(c, "Could not create user", err)
		return
	}

	user := &models.User{
		ID:        gocql.TimeUUID(),
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  hash,
		Role:      models.RoleUser, // registration never grants admin
		Provider:  "local",
		CreatedAt: time.Now(),
	}
	if err := h.users.Insert(user); err != nil {
		respondServerError(c, "Could not create user", err)
		return
	}

	log.Println("✅ New user registered:", user.Email)
	h.sendToken(c, http.StatusCreated, user)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		respondError(c, http.StatusBadRequest, "Please provide an email and password")
		return
	}

	user, err := h.users.GetByEmail(input.Email)
	if err != nil || !utils.CheckPassword(input.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.sendToken(c, http.StatusOK, user)
}

// GET /api/auth/me (protected)
func (h *AuthHandler) Me(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":       user.ID.String(),
			"fullName": user.FullName,
			"email":    user.Email,
			"phone":    user.Phone,
			"role":     user.Role,
		},
	})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookie(c)
	respondMessage(c, http.StatusOK, "User logged out successfully")
}
