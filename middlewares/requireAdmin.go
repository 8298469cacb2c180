package middlewares

import (
	"net/http"

	"github.com/freshmart/freshmart-api/session"
	"github.com/gin-gonic/gin"
)

// RequireAdmin blocks the request unless the authenticated user carries
// the admin flag. It gates the action only; the routes themselves stay
// visible. Runs after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		if !user.IsAdmin {
			if sess := session.FromContext(ctx); sess != nil {
				sess.AddFlash("warning", "You do not have permission to access this page.")
			}
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":  "Admin access required",
				"redirect": "/",
			})
			return
		}

		ctx.Next()
	}
}
