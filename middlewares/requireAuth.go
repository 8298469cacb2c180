package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/freshmart/freshmart-api/initializers"
	"github.com/freshmart/freshmart-api/models"
	"github.com/freshmart/freshmart-api/session"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAuth resolves the caller's identity: the session cookie first
// (browser flows), then an Authorization bearer token (API clients). The
// loaded user is stored on the context for handlers downstream.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if sess := session.FromContext(ctx); sess != nil {
			if userID, ok := sess.GetUint("user_id"); ok {
				var user models.User
				if err := initializers.DB.First(&user, userID).Error; err == nil {
					ctx.Set("user", user)
					ctx.Next()
					return
				}
				// Stale identity, e.g. after a database reset.
				sess.Delete("user_id")
			}
		}

		user, err := userFromBearerToken(ctx.GetHeader("Authorization"))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		ctx.Set("user", *user)
		ctx.Next()
	}
}

func userFromBearerToken(header string) (*models.User, error) {
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" || tokenString == header {
		return nil, errors.New("missing bearer token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("missing user_id claim")
	}

	var user models.User
	if err := initializers.DB.First(&user, uint(userID)).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser returns the identity RequireAuth stored on the context.
func CurrentUser(ctx *gin.Context) (models.User, bool) {
	value, exists := ctx.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
