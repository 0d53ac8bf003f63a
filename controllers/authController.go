package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const msgInvalidCredentials = "invalid password"

func generateAdminJWT() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// AdminLogin exchanges the shared admin password for a bearer token. Only
// meaningful when JWT_SECRET is set; without it the admin routes are open and
// the client keeps its login flag locally.
func AdminLogin(ctx *gin.Context) {
	var loginData struct {
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if passwordHash == "" {
		respondWithError(ctx, http.StatusInternalServerError, "Admin login is not configured", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(loginData.Password)); err != nil {
		respondWithError(ctx, http.StatusUnauthorized, msgInvalidCredentials, nil)
		return
	}

	token, err := generateAdminJWT()
	if err != nil {
		log.Println("Token generation error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "failed to generate token", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
