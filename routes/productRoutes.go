package routes

import (
	"github.com/freshmart/freshmart-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)
}
