package auth

import (
	"crypto/subtle"
	"net/http"
	"time"

	"bandsite-api/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Login exchanges the configured admin credentials for a 24h HS256 token.
// The site has a single editor, so there is no user table: the admin
// identity lives in the environment.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": []string{err.Error()}})
		return
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(input.Email), []byte(config.C.AdminEmail)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(config.C.AdminPasswordHash), []byte(input.Password))
	if !emailMatch || passErr != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials", "errors": []string{"Invalid credentials"}})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": input.Email,
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.C.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"token": tokenString}, "message": "Logged in successfully"})
}
