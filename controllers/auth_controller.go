package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"itinerary-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthController struct {
	AuthSvc   *services.AuthService
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewAuthController(svc *services.AuthService, secret []byte) *AuthController {
	return &AuthController{
		AuthSvc:   svc,
		JWTSecret: secret,
		TokenTTL:  24 * time.Hour,
	}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login (POST /api/auth/login)
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	user, err := ctrl.AuthSvc.VerifyCredentials(username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"username":  user.Username,
		"superuser": user.IsSuperuser,
		"exp":       time.Now().Add(ctrl.TokenTTL).Unix(),
	})
	signed, err := token.SignedString(ctrl.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"email":        user.Email,
			"is_superuser": user.IsSuperuser,
		},
	})
}
