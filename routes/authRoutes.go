package routes

import (
	"github.com/freshmart/freshmart-api/controllers"
	"github.com/freshmart/freshmart-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", middlewares.RequireAuth(), controllers.Logout)
	}
}
