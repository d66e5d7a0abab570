package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecowaste-be/models"
	"ecowaste-be/store"
	authUtils "ecowaste-be/utils"
)

// AuthController is the identity gateway: signup, login and session
// introspection. Sessions are JWTs bound to the account's role.
type AuthController struct {
	users store.UserStore
	log   *zap.Logger
}

func NewAuthController(users store.UserStore, log *zap.Logger) *AuthController {
	return &AuthController{users: users, log: log}
}

// RegisterUser handles user registration. The role is chosen at signup and
// immutable afterwards; it defaults to citizen.
func (a *AuthController) RegisterUser(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role,omitempty"`
		Area     string `json:"area,omitempty" binding:"max=200"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.RoleCitizen
	if input.Role != "" {
		parsed, ok := models.ParseRole(input.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		role = parsed
	}

	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Role:      role,
		Area:      input.Area,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := user.HashPassword(); err != nil {
		a.log.Error("hashing password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	err := a.users.Insert(c.Request.Context(), &user)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
		return
	}
	if err != nil {
		a.log.Error("inserting user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	})
}

// LoginUser handles user login
func (a *AuthController) LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := a.users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		a.log.Error("generating token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600,
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"token":     token,
		"createdAt": user.CreatedAt,
	})
}

// GetMe retrieves the authenticated user's information
func (a *AuthController) GetMe(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := a.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"area":      user.Area,
		"createdAt": user.CreatedAt,
	})
}

// LogoutUser handles user logout by clearing the auth_token cookie
func (a *AuthController) LogoutUser(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
