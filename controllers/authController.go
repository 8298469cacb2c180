package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/freshmart/freshmart-api/initializers"
	"github.com/freshmart/freshmart-api/middlewares"
	"github.com/freshmart/freshmart-api/models"
	"github.com/freshmart/freshmart-api/services"
	"github.com/freshmart/freshmart-api/session"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// Standard response messages
	msgInvalidInput        = "invalid input"
	msgEmailTaken          = "this email is already registered"
	msgInvalidCredentials  = "invalid email or password"
	msgInternalServerError = "Internal server error"
	msgAccountCreated      = "Account created successfully. You can now log in."
	msgLoggedIn            = "Logged in successfully."
	msgLoggedOut           = "Logged out."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := services.RegisterUser(initializers.DB, signUpData.Name, signUpData.Email, signUpData.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgEmailTaken)
			return
		}
		log.Println("User creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if sess := session.FromContext(ctx); sess != nil {
		sess.AddFlash("success", msgAccountCreated)
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": msgAccountCreated,
		"user":    user,
	})
}

// Login handles user authentication. On success the session carries the
// identity for browser flows and a bearer token is returned for API
// clients.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := services.VerifyCredentials(initializers.DB, loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		log.Println("Login error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tokenString, err := generateJWT(*user)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if sess := session.FromContext(ctx); sess != nil {
		sess.Set("user_id", user.ID)
		sess.AddFlash("success", msgLoggedIn)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgLoggedIn,
		"token":   tokenString,
		"user":    user,
	})
}

// Logout drops the session identity and the cart with it.
func Logout(ctx *gin.Context) {
	if _, ok := middlewares.CurrentUser(ctx); !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	if sess := session.FromContext(ctx); sess != nil {
		sess.Clear()
		sess.AddFlash("info", msgLoggedOut)
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}
